package xlsx

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/vendaflow/backoffice-api/internal/domain"
	"github.com/vendaflow/backoffice-api/internal/domain/spreadsheet"
)

// Colunas fixas da aba de opções: status em A, canais em C e a lista dinâmica
// de produtos em E.
const (
	optionsStatusColumn  = "A"
	optionsWebsiteColumn = "C"
	optionsProductColumn = "E"
)

// optionsData valores que alimentam a aba oculta de opções.
type optionsData struct {
	WebsiteNames     []string
	SupplierSKUSizes []string
	// SKUListColumn letra da coluna de identidade na aba de produtos que a
	// fórmula espelha ("A" ou "B", conforme a variante do modelo).
	SKUListColumn string
}

// skuListColumn decide qual coluna da aba de produtos carrega a identidade
// usada no dropdown de itens: a primeira quando a identidade colapsou, a
// segunda quando o SKU de variante sobrevive.
func skuListColumn(flags spreadsheet.FeatureFlags) string {
	if !flags.HasProductCode || flags.IsServiceSegment {
		return "A"
	}
	return "B"
}

// updateOptionsSheet preenche a aba de opções e a esconde. A lista de
// produtos combina os tamanhos já cadastrados com uma fórmula de matriz que
// espelha o que o usuário digitar na aba de produtos, linha a linha.
func updateOptionsSheet(f *excelize.File, data optionsData) error {
	for i, name := range data.WebsiteNames {
		ref := fmt.Sprintf("%s%d", optionsWebsiteColumn, spreadsheet.OptionsTableStartRow+i)
		if err := f.SetCellValue(spreadsheet.SheetOptions, ref, name); err != nil {
			return err
		}
	}

	sizes := make([]string, 0, len(data.SupplierSKUSizes))
	for _, size := range data.SupplierSKUSizes {
		if strings.TrimSpace(size) != "" {
			sizes = append(sizes, size)
		}
	}
	if len(sizes) > spreadsheet.MaxRows {
		return fmt.Errorf("%w: empresas com mais de %d produtos não são suportadas",
			domain.ErrConfiguration, spreadsheet.MaxRows)
	}

	headerRef := fmt.Sprintf("%s%d", optionsProductColumn, spreadsheet.OptionsHeaderRow)
	if err := f.SetCellValue(spreadsheet.SheetOptions, headerRef, "Produto"); err != nil {
		return err
	}
	for i, size := range sizes {
		ref := fmt.Sprintf("%s%d", optionsProductColumn, spreadsheet.OptionsTableStartRow+i)
		if err := f.SetCellValue(spreadsheet.SheetOptions, ref, size); err != nil {
			return err
		}
	}

	optionsStart := spreadsheet.OptionsTableStartRow + len(sizes)
	optionsEnd := spreadsheet.MaxRows
	skuStart := spreadsheet.TableStartRow
	skuEnd := spreadsheet.TableStartRow + (spreadsheet.MaxRows - optionsStart)
	if skuEnd > spreadsheet.MaxRows {
		diff := spreadsheet.MaxRows - skuEnd
		optionsEnd += diff
		skuEnd += diff
	}

	if optionsEnd-optionsStart != skuEnd-skuStart {
		return fmt.Errorf(
			"%w: lista de opções vai de %d a %d (%d linhas) e lista de produtos de %d a %d (%d linhas)",
			domain.ErrRangeMismatch,
			optionsStart, optionsEnd, optionsEnd-optionsStart,
			skuStart, skuEnd, skuEnd-skuStart,
		)
	}

	formulaRef := fmt.Sprintf("%s%d", optionsProductColumn, optionsStart)
	arrayRef := fmt.Sprintf("%s%d:%s%d", optionsProductColumn, optionsStart, optionsProductColumn, optionsEnd)
	skuList := fmt.Sprintf("%s!%s%d:%s%d",
		spreadsheet.SheetProduct, data.SKUListColumn, skuStart, data.SKUListColumn, skuEnd)
	formula := fmt.Sprintf(`IF(%s="", "", %s)`, skuList, skuList)

	formulaType := excelize.STCellFormulaTypeArray
	if err := f.SetCellFormula(spreadsheet.SheetOptions, formulaRef, formula,
		excelize.FormulaOpts{Ref: &arrayRef, Type: &formulaType}); err != nil {
		return err
	}

	return f.SetSheetVisible(spreadsheet.SheetOptions, false)
}

// extractColumnValues lê os valores não vazios de uma faixa vertical da aba
// de opções, para compor mensagens de erro dos dropdowns.
func extractColumnValues(f *excelize.File, sheet, column string, startRow, endRow int) ([]string, error) {
	values := make([]string, 0, endRow-startRow+1)
	for row := startRow; row <= endRow; row++ {
		value, err := f.GetCellValue(sheet, fmt.Sprintf("%s%d", column, row))
		if err != nil {
			return nil, err
		}
		if value != "" {
			values = append(values, value)
		}
	}
	return values, nil
}
