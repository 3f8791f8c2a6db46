package spreadsheet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vendaflow/backoffice-api/internal/domain"
	"github.com/vendaflow/backoffice-api/internal/domain/spreadsheet"
)

func TestColumnName(t *testing.T) {
	cases := map[int]string{
		1:  "A",
		2:  "B",
		26: "Z",
		27: "AA",
		28: "AB",
		52: "AZ",
		53: "BA",
	}
	for index, expected := range cases {
		assert.Equal(t, expected, spreadsheet.ColumnName(index), "índice %d", index)
	}
}

// TestCoordinates_Offset verifica que deslocamentos sobre colunas presentes
// movem o índice e que ausência é pegajosa: uma vez removida, a coluna não
// volta a ter posição por efeito de deslocamentos posteriores.
func TestCoordinates_Offset(t *testing.T) {
	coords := spreadsheet.NewCoordinates(map[string]int{
		"canal":  2,
		"status": 4,
		"sku":    5,
	})

	require.NoError(t, coords.Offset("status", -1))
	col, err := coords.Get("status")
	require.NoError(t, err)
	assert.Equal(t, 3, col.Index)

	coords.Drop("canal")
	require.NoError(t, coords.Offset("canal", -1), "deslocar coluna ausente é no-op")
	col, err = coords.Get("canal")
	require.NoError(t, err)
	assert.False(t, col.Valid)

	err = coords.Offset("inexistente", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownColumn)
}

func TestCoordinates_Refs(t *testing.T) {
	coords := spreadsheet.NewCoordinates(map[string]int{"sku": 5})

	cell, err := coords.CellRef("sku", 3)
	require.NoError(t, err)
	assert.Equal(t, "$E$3", cell)

	rng, err := coords.RangeRef("sku", 3, 10)
	require.NoError(t, err)
	assert.Equal(t, "$E$3:$E$10", rng)

	coords.Drop("sku")
	_, err = coords.CellRef("sku", 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownColumn)
}
