package spreadsheet

import (
	"fmt"
	"unicode/utf8"
)

// NotBlank valida presença: o valor precisa existir e não ser texto vazio.
func NotBlank(row Row, header string) bool {
	v, ok := row[header]
	if !ok || v == nil {
		return false
	}
	if s, isStr := v.(string); isStr {
		return s != ""
	}
	return true
}

// IsPositiveNumber valida que o valor, quando presente, é numérico e maior
// que zero. Célula em branco passa; valor presente mas ilegível reprova.
func IsPositiveNumber(row Row, header string) bool {
	v, ok := row[header]
	if !ok || v == nil {
		return true
	}
	if s, isStr := v.(string); isStr && s == "" {
		return true
	}
	d, err := toDecimal(v)
	if err != nil {
		return false
	}
	return d.IsPositive()
}

// MaxLength valida que o texto, quando presente, fica abaixo do limite de
// runas.
func MaxLength(row Row, header string, limit int) bool {
	v, ok := row[header]
	if !ok || v == nil {
		return true
	}
	s, isStr := v.(string)
	if !isStr {
		s = fmt.Sprint(v)
	}
	if s == "" {
		return true
	}
	return utf8.RuneCountInString(s) < limit
}
