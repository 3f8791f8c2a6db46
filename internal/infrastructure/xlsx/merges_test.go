package xlsx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ──────────────────────────────────────────────────────────────────────────────
// Os planos de deslocamento de faixa são a parte pura do replanejamento de
// mesclagens: dado o índice da coluna removida ou inserida, cada faixa decide
// sozinha para onde vai. Os casos abaixo cobrem faixa à esquerda, faixa que
// cruza o ponto, faixa ancorada exatamente nele e faixa inteira à direita.
// ──────────────────────────────────────────────────────────────────────────────

func TestSpanShiftForDelete(t *testing.T) {
	cases := []struct {
		name     string
		in       span
		index    int
		expected span
	}{
		{
			name:     "faixa à esquerda não se move",
			in:       span{MinCol: 1, MaxCol: 3, Row: 1},
			index:    5,
			expected: span{MinCol: 1, MaxCol: 3, Row: 1},
		},
		{
			name:     "faixa que cruza a coluna encolhe",
			in:       span{MinCol: 2, MaxCol: 5, Row: 1},
			index:    3,
			expected: span{MinCol: 2, MaxCol: 4, Row: 1},
		},
		{
			name:     "faixa ancorada na coluna permanece ancorada",
			in:       span{MinCol: 3, MaxCol: 5, Row: 1},
			index:    3,
			expected: span{MinCol: 3, MaxCol: 4, Row: 1},
		},
		{
			name:     "faixa à direita desliza inteira",
			in:       span{MinCol: 6, MaxCol: 8, Row: 1},
			index:    3,
			expected: span{MinCol: 5, MaxCol: 7, Row: 1},
		},
		{
			name:     "célula única à direita desliza",
			in:       span{MinCol: 6, MaxCol: 6, Row: 1},
			index:    3,
			expected: span{MinCol: 5, MaxCol: 5, Row: 1},
		},
		{
			name:     "célula única na coluna removida não se move",
			in:       span{MinCol: 3, MaxCol: 3, Row: 1},
			index:    3,
			expected: span{MinCol: 3, MaxCol: 3, Row: 1},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.in.shiftForDelete(tc.index))
		})
	}
}

func TestSpanShiftForInsert(t *testing.T) {
	cases := []struct {
		name     string
		in       span
		index    int
		expected span
	}{
		{
			name:     "faixa à esquerda não se move",
			in:       span{MinCol: 1, MaxCol: 3, Row: 1},
			index:    5,
			expected: span{MinCol: 1, MaxCol: 3, Row: 1},
		},
		{
			name:     "faixa que cobre o ponto expande",
			in:       span{MinCol: 2, MaxCol: 5, Row: 1},
			index:    3,
			expected: span{MinCol: 2, MaxCol: 6, Row: 1},
		},
		{
			name:     "faixa ancorada no ponto absorve a coluna nova",
			in:       span{MinCol: 3, MaxCol: 5, Row: 1},
			index:    3,
			expected: span{MinCol: 3, MaxCol: 6, Row: 1},
		},
		{
			name:     "faixa à direita desliza inteira",
			in:       span{MinCol: 6, MaxCol: 8, Row: 1},
			index:    3,
			expected: span{MinCol: 7, MaxCol: 9, Row: 1},
		},
		{
			name:     "célula única no ponto expande para duas colunas",
			in:       span{MinCol: 3, MaxCol: 3, Row: 1},
			index:    3,
			expected: span{MinCol: 3, MaxCol: 4, Row: 1},
		},
		{
			name:     "célula única à direita desliza",
			in:       span{MinCol: 6, MaxCol: 6, Row: 1},
			index:    3,
			expected: span{MinCol: 7, MaxCol: 7, Row: 1},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.in.shiftForInsert(tc.index))
		})
	}
}

func TestSpanRef(t *testing.T) {
	assert.Equal(t, "A1:D1", span{MinCol: 1, MaxCol: 4, Row: 1}.ref())
	assert.Equal(t, "E1:E1", span{MinCol: 5, MaxCol: 5, Row: 1}.ref())
}
