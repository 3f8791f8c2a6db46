package spreadsheet

import (
	"fmt"

	"github.com/vendaflow/backoffice-api/internal/domain"
)

// Column posição 1-based de uma coluna na aba. Valid=false indica coluna
// removida da variante atual do modelo; offsets sobre coluna ausente são
// ignorados em vez de produzirem posições fantasmas.
type Column struct {
	Index int
	Valid bool
}

// Col constrói uma coluna presente.
func Col(index int) Column {
	return Column{Index: index, Valid: true}
}

// NoColumn marca uma coluna ausente nesta variante do modelo.
var NoColumn = Column{}

// ColumnName converte índice 1-based para o nome da coluna (1 -> A, 27 -> AA).
func ColumnName(index int) string {
	name := ""
	for index > 0 {
		index--
		name = string(rune('A'+index%26)) + name
		index /= 26
	}
	return name
}

// Coordinates registro central das posições de coluna que as etapas de
// mutação consultam. Cada inserção ou remoção estrutural atualiza o registro
// para que as etapas seguintes enxerguem o layout corrente.
type Coordinates struct {
	cols map[string]Column
}

// NewCoordinates inicia o registro com as posições do modelo mestre.
func NewCoordinates(initial map[string]int) *Coordinates {
	c := &Coordinates{cols: make(map[string]Column, len(initial))}
	for name, idx := range initial {
		c.cols[name] = Col(idx)
	}
	return c
}

// Get devolve a posição corrente de uma coluna rastreada.
func (c *Coordinates) Get(name string) (Column, error) {
	col, ok := c.cols[name]
	if !ok {
		return NoColumn, fmt.Errorf("%w: coluna %q não rastreada", domain.ErrUnknownColumn, name)
	}
	return col, nil
}

// Add registra uma coluna nova; registrar nome já rastreado é erro de
// programação, não de entrada.
func (c *Coordinates) Add(name string, col Column) error {
	if _, ok := c.cols[name]; ok {
		return fmt.Errorf("%w: %q", domain.ErrDuplicateKey, name)
	}
	c.cols[name] = col
	return nil
}

// Set registra (ou substitui) a posição de uma coluna.
func (c *Coordinates) Set(name string, col Column) {
	c.cols[name] = col
}

// Drop marca a coluna como ausente, mantendo o nome rastreado.
func (c *Coordinates) Drop(name string) {
	c.cols[name] = NoColumn
}

// Offset desloca a posição de uma coluna presente; ausência é pegajosa e o
// deslocamento vira no-op.
func (c *Coordinates) Offset(name string, delta int) error {
	col, ok := c.cols[name]
	if !ok {
		return fmt.Errorf("%w: coluna %q não rastreada", domain.ErrUnknownColumn, name)
	}
	if !col.Valid {
		return nil
	}
	c.cols[name] = Col(col.Index + delta)
	return nil
}

// CellRef referência absoluta de uma célula da coluna rastreada ($A$3).
func (c *Coordinates) CellRef(name string, row int) (string, error) {
	col, err := c.Get(name)
	if err != nil {
		return "", err
	}
	if !col.Valid {
		return "", fmt.Errorf("%w: coluna %q ausente nesta variante", domain.ErrUnknownColumn, name)
	}
	return fmt.Sprintf("$%s$%d", ColumnName(col.Index), row), nil
}

// RangeRef faixa da coluna rastreada entre duas linhas ($A$3:$A$10).
func (c *Coordinates) RangeRef(name string, startRow, endRow int) (string, error) {
	col, err := c.Get(name)
	if err != nil {
		return "", err
	}
	if !col.Valid {
		return "", fmt.Errorf("%w: coluna %q ausente nesta variante", domain.ErrUnknownColumn, name)
	}
	letter := ColumnName(col.Index)
	return fmt.Sprintf("$%s$%d:$%s$%d", letter, startRow, letter, endRow), nil
}
