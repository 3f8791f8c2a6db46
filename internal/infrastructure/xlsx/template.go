package xlsx

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/vendaflow/backoffice-api/internal/domain/spreadsheet"
)

// headerGroup banda mesclada da primeira linha do cabeçalho.
type headerGroup struct {
	Title    string
	StartCol int
	EndCol   int
}

// Layout do modelo mestre. As posições iniciais da aba de pedidos (canal na
// B, status na D, item na E) são contrato com o registro de coordenadas da
// mutação.
var (
	productHeaders = []string{
		spreadsheet.HeaderSKU,
		spreadsheet.HeaderSKUVariant,
		spreadsheet.HeaderName,
		spreadsheet.HeaderVariant,
		spreadsheet.HeaderFullPrice,
		spreadsheet.HeaderSpecialPrice,
		spreadsheet.HeaderGrossCost,
		spreadsheet.HeaderDimension1,
		spreadsheet.HeaderDimension2,
		spreadsheet.HeaderDimension3,
		spreadsheet.HeaderAge,
		spreadsheet.HeaderColor,
		spreadsheet.HeaderSeason,
		spreadsheet.HeaderStock,
		spreadsheet.HeaderLastReceipt,
	}
	productGroups = []headerGroup{
		{"Identificação do Produto", 1, 4},
		{"Preços e Custos", 5, 7},
		{"Dimensões", 8, 10},
		{"Características", 11, 13},
		{"Estoque", 14, 15},
	}

	saleOrderHeaders = []string{
		spreadsheet.HeaderOrderNumber,
		spreadsheet.HeaderChannel,
		spreadsheet.HeaderOrderDate,
		spreadsheet.HeaderStatus,
		spreadsheet.HeaderSKUVariant,
		spreadsheet.HeaderOrderQuantity,
		spreadsheet.HeaderUnitFullPrice,
		spreadsheet.HeaderUnitSalePrice,
		spreadsheet.HeaderTotalPaidProduct,
		spreadsheet.HeaderCPFCNPJ,
		spreadsheet.HeaderEmail,
		spreadsheet.HeaderCustomerName,
		spreadsheet.HeaderPhone,
		spreadsheet.HeaderShipping,
		spreadsheet.HeaderPaymentMethod,
		spreadsheet.HeaderInstallments,
	}
	saleOrderGroups = []headerGroup{
		{"Pedido", 1, 4},
		{"Item", 5, 6},
		{"Preços", 7, 9},
		{"Cliente", 10, 13},
		{"Pagamento", 14, 16},
	}

	// Valores de exemplo da primeira linha de dados da aba de produtos; a
	// identidade daqui alimenta o valor padrão da aba de pedidos.
	productSampleRow = []any{
		"CAM001", "CAM001-P", "Camiseta Básica", "P",
		99.90, 79.90, 35.50,
		"Vestuário", "Camisetas", "Manga Curta",
		"Adulto", "Branca", "Verão 2026",
		120, "2026-01-15 10:00:00",
	}

	// Status aceitos pela importação de pedidos.
	saleOrderStatuses = []string{"Aprovado", "Cancelado", "Devolvido"}
)

// BuildMasterTemplate monta do zero o workbook mestre com as três abas no
// layout completo. As variantes por empresa partem sempre deste documento.
func BuildMasterTemplate() (*excelize.File, error) {
	f := excelize.NewFile()

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, spreadsheet.SheetProduct); err != nil {
		return nil, err
	}
	for _, sheet := range []string{spreadsheet.SheetSaleOrder, spreadsheet.SheetOptions} {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}

	if err := buildHeaderBand(f, spreadsheet.SheetProduct, productGroups, productHeaders); err != nil {
		return nil, err
	}
	if err := buildHeaderBand(f, spreadsheet.SheetSaleOrder, saleOrderGroups, saleOrderHeaders); err != nil {
		return nil, err
	}
	if err := fillProductSample(f); err != nil {
		return nil, err
	}
	if err := buildOptionsSheet(f); err != nil {
		return nil, err
	}

	index, err := f.GetSheetIndex(spreadsheet.SheetProduct)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	return f, nil
}

// WriteMasterTemplate materializa o modelo mestre em disco.
func WriteMasterTemplate(path string) error {
	f, err := BuildMasterTemplate()
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

func buildHeaderBand(f *excelize.File, sheet string, groups []headerGroup, headers []string) error {
	groupStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorders(),
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
	if err != nil {
		return err
	}

	for _, group := range groups {
		start, err := excelize.CoordinatesToCellName(group.StartCol, spreadsheet.HeaderGroupRow)
		if err != nil {
			return err
		}
		end, err := excelize.CoordinatesToCellName(group.EndCol, spreadsheet.HeaderGroupRow)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, start, group.Title); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, start, end, groupStyle); err != nil {
			return err
		}
		if group.StartCol != group.EndCol {
			if err := f.MergeCell(sheet, start, end); err != nil {
				return err
			}
		}
	}

	for i, header := range headers {
		if err := styleHeaderCell(f, sheet, i+1, header); err != nil {
			return err
		}
	}
	return nil
}

func styleHeaderCell(f *excelize.File, sheet string, col int, header string) error {
	ref, err := excelize.CoordinatesToCellName(col, spreadsheet.HeaderColumnRow)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, ref, header); err != nil {
		return err
	}

	font := &excelize.Font{Bold: true}
	if strings.HasSuffix(header, "*") {
		font.Color = requiredHeaderColor
	}
	styleID, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorders(),
		Font:      font,
	})
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, ref, ref, styleID)
}

func fillProductSample(f *excelize.File) error {
	for i, value := range productSampleRow {
		ref, err := excelize.CoordinatesToCellName(i+1, spreadsheet.TableStartRow)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(spreadsheet.SheetProduct, ref, value); err != nil {
			return err
		}
	}
	return nil
}

func buildOptionsSheet(f *excelize.File) error {
	if err := f.SetCellValue(spreadsheet.SheetOptions,
		fmt.Sprintf("%s%d", optionsStatusColumn, spreadsheet.OptionsHeaderRow), "Status"); err != nil {
		return err
	}
	for i, status := range saleOrderStatuses {
		ref := fmt.Sprintf("%s%d", optionsStatusColumn, spreadsheet.OptionsTableStartRow+i)
		if err := f.SetCellValue(spreadsheet.SheetOptions, ref, status); err != nil {
			return err
		}
	}
	return f.SetCellValue(spreadsheet.SheetOptions,
		fmt.Sprintf("%s%d", optionsWebsiteColumn, spreadsheet.OptionsHeaderRow), "Canal")
}

func thinBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Style: 1},
		{Type: "right", Style: 1},
		{Type: "top", Style: 1},
		{Type: "bottom", Style: 1},
	}
}
