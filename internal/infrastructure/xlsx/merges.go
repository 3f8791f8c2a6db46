package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/vendaflow/backoffice-api/internal/domain"
	"github.com/vendaflow/backoffice-api/internal/domain/spreadsheet"
)

// span faixa mesclada de linha única, em índices 1-based de coluna. Células
// soltas da primeira linha entram como spans de largura um para que a banda
// de grupos acompanhe inserções.
type span struct {
	MinCol int
	MaxCol int
	Row    int
	Merged bool
}

func (s span) touches(index int) bool {
	return s.MaxCol >= index
}

func (s span) width() int {
	return s.MaxCol - s.MinCol + 1
}

func (s span) ref() string {
	return fmt.Sprintf("%s%d:%s%d",
		spreadsheet.ColumnName(s.MinCol), s.Row,
		spreadsheet.ColumnName(s.MaxCol), s.Row)
}

// shiftForDelete devolve a faixa ajustada para a remoção da coluna index.
// Faixas que começam exatamente na coluna removida permanecem ancoradas: a
// coluna seguinte desliza para dentro da faixa encolhida.
func (s span) shiftForDelete(index int) span {
	if !s.touches(index) {
		return s
	}
	if s.width() == 1 {
		if s.MinCol != index {
			s.MinCol--
			s.MaxCol--
		}
		return s
	}
	if s.MinCol > index {
		s.MinCol--
	}
	s.MaxCol--
	return s
}

// shiftForInsert devolve a faixa ajustada para a inserção de uma coluna na
// posição index. Faixas que começam na posição inserida expandem para
// absorver a coluna nova; faixas à direita deslizam inteiras.
func (s span) shiftForInsert(index int) span {
	if !s.touches(index) {
		return s
	}
	if s.width() == 1 {
		if s.MinCol == index {
			s.MaxCol++
		} else {
			s.MinCol++
			s.MaxCol++
		}
		return s
	}
	if s.MinCol > index {
		s.MinCol++
	}
	s.MaxCol++
	return s
}

// cellSnapshot valor e estilo da célula superior-esquerda de uma faixa,
// capturados antes da operação estrutural e rematerializados depois.
type cellSnapshot struct {
	Value   string
	StyleID int
}

func takeSnapshot(f *excelize.File, sheet string, col, row int) (cellSnapshot, error) {
	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return cellSnapshot{}, err
	}
	value, err := f.GetCellValue(sheet, ref)
	if err != nil {
		return cellSnapshot{}, err
	}
	styleID, err := f.GetCellStyle(sheet, ref)
	if err != nil {
		return cellSnapshot{}, err
	}
	return cellSnapshot{Value: value, StyleID: styleID}, nil
}

func (s cellSnapshot) restore(f *excelize.File, sheet string, col, row int) error {
	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, ref, s.Value); err != nil {
		return err
	}
	return f.SetCellStyle(sheet, ref, ref, s.StyleID)
}

// captureSpans coleta as faixas mescladas da aba; mesclagens de múltiplas
// linhas não são suportadas pelo layout do modelo. Com includeFirstRow, as
// células soltas da linha de grupos entram como faixas de largura um.
func captureSpans(f *excelize.File, sheet string, includeFirstRow bool) ([]span, error) {
	merged, err := f.GetMergeCells(sheet)
	if err != nil {
		return nil, err
	}

	spans := make([]span, 0, len(merged))
	firstRowCovered := make(map[int]bool)
	for _, mc := range merged {
		minCol, minRow, err := excelize.CellNameToCoordinates(mc.GetStartAxis())
		if err != nil {
			return nil, err
		}
		maxCol, maxRow, err := excelize.CellNameToCoordinates(mc.GetEndAxis())
		if err != nil {
			return nil, err
		}
		if minRow != maxRow {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedMerge, mc.GetStartAxis())
		}
		spans = append(spans, span{MinCol: minCol, MaxCol: maxCol, Row: minRow, Merged: true})
		if minRow == spreadsheet.HeaderGroupRow {
			for col := minCol; col <= maxCol; col++ {
				firstRowCovered[col] = true
			}
		}
	}

	if includeFirstRow {
		cols, err := f.GetCols(sheet)
		if err != nil {
			return nil, err
		}
		for col := 1; col <= len(cols); col++ {
			if !firstRowCovered[col] {
				spans = append(spans, span{MinCol: col, MaxCol: col, Row: spreadsheet.HeaderGroupRow})
			}
		}
	}
	return spans, nil
}

// unmergeAll desfaz todas as mesclagens antes de remover ou inserir colunas,
// para que o ajuste automático do arquivo não concorra com o replanejamento.
func unmergeAll(f *excelize.File, sheet string, spans []span) error {
	for _, s := range spans {
		if !s.Merged {
			continue
		}
		start, err := excelize.CoordinatesToCellName(s.MinCol, s.Row)
		if err != nil {
			return err
		}
		end, err := excelize.CoordinatesToCellName(s.MaxCol, s.Row)
		if err != nil {
			return err
		}
		if err := f.UnmergeCell(sheet, start, end); err != nil {
			return err
		}
	}
	return nil
}
