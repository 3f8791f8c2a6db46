package spreadsheet_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vendaflow/backoffice-api/internal/domain/spreadsheet"
)

func TestFormatPrice_ArredondaDuasCasas(t *testing.T) {
	got, err := spreadsheet.FormatPrice(19.996)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromFloat(20.00).Equal(got.(decimal.Decimal)))

	got, err = spreadsheet.FormatPrice("10,5")
	require.Error(t, err, "vírgula decimal não é aceita")
	assert.Nil(t, got)

	got, err = spreadsheet.FormatPrice("10.555")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromFloat(10.56).Equal(got.(decimal.Decimal)))
}

func TestFormatInt(t *testing.T) {
	got, err := spreadsheet.FormatInt(float64(7))
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	got, err = spreadsheet.FormatInt(" 12 ")
	require.NoError(t, err)
	assert.Equal(t, 12, got)

	_, err = spreadsheet.FormatInt(7.5)
	require.Error(t, err, "fracionário não é inteiro")
}

func TestFormatDateTime(t *testing.T) {
	got, err := spreadsheet.FormatDateTime("2024-03-01 14:30:00")
	require.NoError(t, err)

	parsed, ok := got.(time.Time)
	require.True(t, ok)
	assert.Equal(t, 2024, parsed.Year())
	assert.Equal(t, 14, parsed.Hour())

	_, offset := parsed.Zone()
	assert.Equal(t, -3*3600, offset, "data sem offset assume o fuso de São Paulo")

	_, err = spreadsheet.FormatDateTime("01/03/2024")
	require.Error(t, err)
}

func TestFormatString(t *testing.T) {
	got, err := spreadsheet.FormatString("  ABC-1  ")
	require.NoError(t, err)
	assert.Equal(t, "ABC-1", got)

	got, err = spreadsheet.FormatString(float64(123))
	require.NoError(t, err)
	assert.Equal(t, "123", got, "códigos numéricos não ganham notação científica")

	got, err = spreadsheet.FormatString(nil)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, spreadsheet.Normalize("Preço DE *"), spreadsheet.Normalize("preco de *"))
	assert.True(t, spreadsheet.HeadersEqual(" Opções ", "opcoes"))
	assert.False(t, spreadsheet.HeadersEqual("Canal *", "Canal"))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Código do Produto", spreadsheet.DisplayName("Código do Produto *"))
	assert.Equal(t, "Email", spreadsheet.DisplayName("Email"))
	assert.Equal(t, "quantidade do produto", spreadsheet.Normalize(spreadsheet.DisplayName("Quantidade do Produto *")))
}
