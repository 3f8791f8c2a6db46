package xlsx

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/vendaflow/backoffice-api/internal/domain"
	"github.com/vendaflow/backoffice-api/internal/domain/spreadsheet"
)

// Cor dos cabeçalhos obrigatórios do modelo.
const requiredHeaderColor = "E97132"

// SheetMutator aplica operações estruturais de coluna sobre uma aba,
// preservando as faixas mescladas do cabeçalho. O fluxo é sempre o mesmo:
// capturar faixas, desfazer mesclagens, operar, rematerializar.
type SheetMutator struct {
	f     *excelize.File
	sheet string
}

func NewSheetMutator(f *excelize.File, sheet string) *SheetMutator {
	return &SheetMutator{f: f, sheet: sheet}
}

// HeaderIndex localiza a coluna pelo nome do cabeçalho na linha de colunas,
// com comparação tolerante a acentos e caixa.
func (m *SheetMutator) HeaderIndex(header string) (int, error) {
	rows, err := m.f.GetRows(m.sheet)
	if err != nil {
		return 0, err
	}
	if len(rows) < spreadsheet.HeaderColumnRow {
		return 0, fmt.Errorf("%w: %q", domain.ErrColumnNotFound, header)
	}
	for i, value := range rows[spreadsheet.HeaderColumnRow-1] {
		if spreadsheet.HeadersEqual(value, header) {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", domain.ErrColumnNotFound, header)
}

// HeaderName devolve o conteúdo do cabeçalho na posição dada.
func (m *SheetMutator) HeaderName(index int) (string, error) {
	ref, err := excelize.CoordinatesToCellName(index, spreadsheet.HeaderColumnRow)
	if err != nil {
		return "", err
	}
	return m.f.GetCellValue(m.sheet, ref)
}

// RenameHeader troca o texto do cabeçalho sem mexer na estrutura.
func (m *SheetMutator) RenameHeader(oldHeader, newHeader string) error {
	index, err := m.HeaderIndex(oldHeader)
	if err != nil {
		return err
	}
	ref, err := excelize.CoordinatesToCellName(index, spreadsheet.HeaderColumnRow)
	if err != nil {
		return err
	}
	return m.f.SetCellValue(m.sheet, ref, newHeader)
}

// DeleteColumn remove a coluna do cabeçalho informado replanejando as faixas
// mescladas: faixas à direita deslizam, faixas que cruzam a coluna encolhem e
// o conteúdo superior-esquerdo é rematerializado na posição final.
func (m *SheetMutator) DeleteColumn(header string) error {
	index, err := m.HeaderIndex(header)
	if err != nil {
		return err
	}

	spans, err := captureSpans(m.f, m.sheet, false)
	if err != nil {
		return err
	}

	snapshots := make(map[int]cellSnapshot, len(spans))
	for i, s := range spans {
		if s.touches(index) {
			snap, err := takeSnapshot(m.f, m.sheet, s.MinCol, s.Row)
			if err != nil {
				return err
			}
			snapshots[i] = snap
		}
	}

	if err := unmergeAll(m.f, m.sheet, spans); err != nil {
		return err
	}
	if err := m.f.RemoveCol(m.sheet, spreadsheet.ColumnName(index)); err != nil {
		return err
	}

	for i, s := range spans {
		moved := s.shiftForDelete(index)
		if snap, ok := snapshots[i]; ok {
			if err := snap.restore(m.f, m.sheet, moved.MinCol, moved.Row); err != nil {
				return err
			}
		}
		if err := m.remerge(moved); err != nil {
			return err
		}
	}
	return nil
}

// InsertColumnBefore insere uma coluna nova imediatamente antes do cabeçalho
// âncora. Faixas mescladas que cobrem o ponto de inserção expandem para
// absorver a coluna; as demais deslizam. O cabeçalho novo recebe o estilo
// padrão do modelo, com a cor de obrigatório quando o nome termina em "*".
func (m *SheetMutator) InsertColumnBefore(anchorHeader, newHeader string) error {
	index, err := m.HeaderIndex(anchorHeader)
	if err != nil {
		return err
	}

	spans, err := captureSpans(m.f, m.sheet, true)
	if err != nil {
		return err
	}

	snapshots := make(map[int]cellSnapshot, len(spans))
	for i, s := range spans {
		if s.touches(index) {
			snap, err := takeSnapshot(m.f, m.sheet, s.MinCol, s.Row)
			if err != nil {
				return err
			}
			snapshots[i] = snap
		}
	}

	if err := unmergeAll(m.f, m.sheet, spans); err != nil {
		return err
	}
	if err := m.f.InsertCols(m.sheet, spreadsheet.ColumnName(index), 1); err != nil {
		return err
	}
	if err := m.styleNewHeader(index, newHeader); err != nil {
		return err
	}

	for i, s := range spans {
		moved := s.shiftForInsert(index)
		if snap, ok := snapshots[i]; ok {
			if err := snap.restore(m.f, m.sheet, moved.MinCol, moved.Row); err != nil {
				return err
			}
		}
		if err := m.remerge(moved); err != nil {
			return err
		}
	}
	return nil
}

func (m *SheetMutator) remerge(s span) error {
	if s.width() == 1 {
		return nil
	}
	start, err := excelize.CoordinatesToCellName(s.MinCol, s.Row)
	if err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(s.MaxCol, s.Row)
	if err != nil {
		return err
	}
	return m.f.MergeCell(m.sheet, start, end)
}

func (m *SheetMutator) styleNewHeader(index int, value string) error {
	ref, err := excelize.CoordinatesToCellName(index, spreadsheet.HeaderColumnRow)
	if err != nil {
		return err
	}
	if err := m.f.SetCellValue(m.sheet, ref, value); err != nil {
		return err
	}

	font := &excelize.Font{Bold: true}
	if strings.HasSuffix(value, "*") {
		font.Color = requiredHeaderColor
	}
	styleID, err := m.f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border: []excelize.Border{
			{Type: "left", Style: 1},
			{Type: "right", Style: 1},
			{Type: "top", Style: 1},
			{Type: "bottom", Style: 1},
		},
		Font: font,
	})
	if err != nil {
		return err
	}
	return m.f.SetCellStyle(m.sheet, ref, ref, styleID)
}

// ApplyDateFormat aplica d/m/yyyy à coluna do cabeçalho informado e devolve
// as demais ao formato General, preservando o estilo das duas linhas de
// cabeçalho. Cabeçalho ausente na variante corrente deixa todas as colunas
// em General.
func (m *SheetMutator) ApplyDateFormat(header string) error {
	dateIndex, err := m.HeaderIndex(header)
	if err != nil {
		if !errors.Is(err, domain.ErrColumnNotFound) {
			return err
		}
		dateIndex = 0
	}

	dateFmt := "d/m/yyyy"
	dateStyle, err := m.f.NewStyle(&excelize.Style{CustomNumFmt: &dateFmt})
	if err != nil {
		return err
	}

	cols, err := m.f.GetCols(m.sheet)
	if err != nil {
		return err
	}
	for i := range cols {
		index := i + 1

		groupSnap, err := takeSnapshot(m.f, m.sheet, index, spreadsheet.HeaderGroupRow)
		if err != nil {
			return err
		}
		headerSnap, err := takeSnapshot(m.f, m.sheet, index, spreadsheet.HeaderColumnRow)
		if err != nil {
			return err
		}

		// Estilo 0 é o padrão do workbook, com formato numérico General.
		styleID := 0
		if index == dateIndex {
			styleID = dateStyle
		}
		letter := spreadsheet.ColumnName(index)
		if err := m.f.SetColStyle(m.sheet, letter, styleID); err != nil {
			return err
		}

		if err := groupSnap.restore(m.f, m.sheet, index, spreadsheet.HeaderGroupRow); err != nil {
			return err
		}
		if err := headerSnap.restore(m.f, m.sheet, index, spreadsheet.HeaderColumnRow); err != nil {
			return err
		}
	}
	return nil
}

// AdjustColumnWidths ajusta a largura de cada coluna para o maior conteúdo
// mais uma folga, como o modelo original distribui.
func (m *SheetMutator) AdjustColumnWidths() error {
	cols, err := m.f.GetCols(m.sheet)
	if err != nil {
		return err
	}
	for i, col := range cols {
		maxLength := 0
		for _, value := range col {
			if len([]rune(value)) > maxLength {
				maxLength = len([]rune(value))
			}
		}
		letter := spreadsheet.ColumnName(i + 1)
		if err := m.f.SetColWidth(m.sheet, letter, letter, float64(maxLength+2)); err != nil {
			return err
		}
	}
	return nil
}
