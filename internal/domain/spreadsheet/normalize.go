package spreadsheet

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize prepara um cabeçalho para comparação tolerante: remove acentos,
// apara espaços e rebaixa para minúsculas. "Preço DE *" e "preco de *"
// casam com o mesmo cabeçalho.
func Normalize(header string) string {
	out, _, err := transform.String(stripAccents, header)
	if err != nil {
		out = header
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// HeadersEqual compara dois cabeçalhos pela forma normalizada.
func HeadersEqual(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// TitleCaseFirst capitaliza apenas a primeira runa, preservando o resto.
func TitleCaseFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// DisplayName remove o marcador de obrigatoriedade do cabeçalho para uso em
// mensagens voltadas ao usuário.
func DisplayName(header string) string {
	return strings.TrimSpace(strings.TrimSuffix(header, "*"))
}
