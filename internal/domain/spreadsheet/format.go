package spreadsheet

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vendaflow/backoffice-api/internal/domain"
)

// Fuso de referência para datas informadas sem offset.
var saoPaulo = mustLoadLocation("America/Sao_Paulo")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// FormatString coage qualquer valor para texto aparado.
func FormatString(v any) (any, error) {
	if v == nil {
		return "", nil
	}
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s), nil
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), nil
	default:
		return strings.TrimSpace(fmt.Sprint(v)), nil
	}
}

// FormatPrice coage para decimal com duas casas (arredondamento half-up,
// como valores monetários exigem).
func FormatPrice(v any) (any, error) {
	d, err := toDecimal(v)
	if err != nil {
		return nil, err
	}
	return d.Round(2), nil
}

// FormatFloat coage para decimal sem arredondar.
func FormatFloat(v any) (any, error) {
	return toDecimal(v)
}

// FormatInt coage para inteiro; valores fracionários são rejeitados.
func FormatInt(v any) (any, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != float64(int64(n)) {
			return nil, fmt.Errorf("%w: valor %v não é inteiro", domain.ErrInvalidInput, v)
		}
		return int(n), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return nil, fmt.Errorf("%w: valor %q não é inteiro", domain.ErrInvalidInput, n)
		}
		return i, nil
	default:
		return nil, fmt.Errorf("%w: valor %v não é inteiro", domain.ErrInvalidInput, v)
	}
}

// FormatDateTime interpreta "2006-01-02 15:04:05" no fuso de São Paulo e
// devolve o instante com offset.
func FormatDateTime(v any) (any, error) {
	switch t := v.(type) {
	case time.Time:
		if t.Location() == time.UTC {
			return t.In(saoPaulo), nil
		}
		return t, nil
	case string:
		parsed, err := time.ParseInLocation("2006-01-02 15:04:05", strings.TrimSpace(t), saoPaulo)
		if err != nil {
			return nil, fmt.Errorf("%w: data %q fora do formato AAAA-MM-DD HH:MM:SS", domain.ErrInvalidInput, t)
		}
		return parsed, nil
	default:
		return nil, fmt.Errorf("%w: valor %v não é data", domain.ErrInvalidInput, v)
	}
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, nil
	case float64:
		return decimal.NewFromFloat(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: valor %q não é numérico", domain.ErrInvalidInput, n)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("%w: valor %v não é numérico", domain.ErrInvalidInput, v)
	}
}
