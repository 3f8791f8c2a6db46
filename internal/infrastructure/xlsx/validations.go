package xlsx

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/vendaflow/backoffice-api/internal/domain/spreadsheet"
)

// customFormula configura uma validação de fórmula arbitrária. O conteúdo de
// Formula1 é serializado como XML bruto, então a fórmula precisa chegar já
// envelopada no elemento.
func customFormula(dv *excelize.DataValidation, formula string) {
	dv.Type = "custom"
	dv.Formula1 = fmt.Sprintf("<formula1>%s</formula1>", formula)
}

// listFormula configura um dropdown alimentado por uma fórmula (faixa de
// outra aba ou expressão condicional).
func listFormula(dv *excelize.DataValidation, formula string) {
	dv.Type = "list"
	dv.Formula1 = fmt.Sprintf("<formula1>%s</formula1>", formula)
}

func newStopValidation(sqref, title, message string) *excelize.DataValidation {
	dv := excelize.NewDataValidation(true)
	dv.SetSqref(sqref)
	dv.SetError(excelize.DataValidationErrorStyleStop, title, message)
	return dv
}

// websiteValidation dropdown de canais. A lista de canais só entra na
// mensagem quando o texto completo cabe no limite de 255 caracteres do
// formato.
func websiteValidation(sqref string, websiteNames []string) *excelize.DataValidation {
	message := "O canal informado não foi encontrado."
	withOptions := message + fmt.Sprintf(" Escolha um dos canais disponíveis: %s.", strings.Join(websiteNames, ", "))
	if len(withOptions) <= spreadsheet.ErrorMessageMaxLength {
		message = withOptions
	}

	dv := newStopValidation(sqref, "Canal não encontrado", message)
	listFormula(dv, fmt.Sprintf("%s!$%s$%d:$%s$%d",
		spreadsheet.SheetOptions,
		optionsWebsiteColumn, spreadsheet.OptionsTableStartRow,
		optionsWebsiteColumn, spreadsheet.OptionsHeaderRow+len(websiteNames)))
	return dv
}

// statusValidation dropdown de status do pedido, com as opções extraídas da
// própria aba de opções para a mensagem.
func statusValidation(sqref string, statusOptions []string) *excelize.DataValidation {
	statusRange := fmt.Sprintf("$%s$%d:$%s$%d",
		optionsStatusColumn, spreadsheet.OptionsTableStartRow,
		optionsStatusColumn, spreadsheet.OptionsHeaderRow+3)

	dv := newStopValidation(sqref, "Status inválido",
		fmt.Sprintf("O status informado não é válido. Escolha uma das seguintes opções: %s.",
			strings.Join(statusOptions, ", ")))
	listFormula(dv, fmt.Sprintf("%s!%s", spreadsheet.SheetOptions, statusRange))
	return dv
}

// skuListValidation dropdown simples de itens, espelhando a lista dinâmica
// de produtos da aba de opções.
func skuListValidation(sqref string) *excelize.DataValidation {
	dv := newStopValidation(sqref, "Produto não encontrado", "O produto informado não foi encontrado.")
	listFormula(dv, fmt.Sprintf("%s!$%s$%d:$%s$%d",
		spreadsheet.SheetOptions,
		optionsProductColumn, spreadsheet.OptionsTableStartRow,
		optionsProductColumn, spreadsheet.MaxRows))
	return dv
}

// serviceHeaderNames nomes de exibição usados nas mensagens das validações
// condicionais de serviço.
type serviceHeaderNames struct {
	SKU      string
	Quantity string
	Service  string
}

// conditionalSKUValidation dropdown de itens que se desabilita quando a
// coluna de serviço (duas à direita) está preenchida: a lista recua para uma
// célula sabidamente vazia da aba de opções.
func conditionalSKUValidation(sqref string, names serviceHeaderNames) *excelize.DataValidation {
	skuList := fmt.Sprintf("%s!$%s$%d:$%s$%d",
		spreadsheet.SheetOptions,
		optionsProductColumn, spreadsheet.OptionsTableStartRow,
		optionsProductColumn, spreadsheet.MaxRows)
	blankList := fmt.Sprintf("%s!$%s$%d",
		spreadsheet.SheetOptions, optionsStatusColumn, spreadsheet.MaxRows)

	lowerSKU := strings.ToLower(names.SKU)
	dv := newStopValidation(sqref,
		fmt.Sprintf("%s não permitido", spreadsheet.TitleCaseFirst(names.SKU)),
		fmt.Sprintf("O %s não é permitido. Verifique se:\n"+
			"1. O %s informado está na lista de produtos.\n"+
			"2. Cada linha contém apenas um dos dois: o %s, ou o %s e a %s correspondente.",
			lowerSKU, lowerSKU,
			strings.ToLower(names.Service), lowerSKU, strings.ToLower(names.Quantity)))
	listFormula(dv, fmt.Sprintf(
		"IF(ISBLANK(INDIRECT(ADDRESS(ROW(),COLUMN()+2,4))), %s, %s)", skuList, blankList))
	return dv
}

// quantityValidation exige número na quantidade e serviço vazio na mesma
// linha.
func quantityValidation(sqref string, names serviceHeaderNames) *excelize.DataValidation {
	dv := newStopValidation(sqref,
		"Produto e serviço não podem ser preenchidos no mesmo pedido",
		exclusiveRowMessage(names))
	customFormula(dv,
		"=AND(ISNUMBER(INDIRECT(ADDRESS(ROW(),COLUMN(),4))), ISBLANK(INDIRECT(ADDRESS(ROW(),COLUMN()+1,4))))")
	return dv
}

// serviceValidation exige que item e quantidade (duas colunas à esquerda)
// estejam vazios quando o serviço é preenchido.
func serviceValidation(sqref string, names serviceHeaderNames) *excelize.DataValidation {
	dv := newStopValidation(sqref,
		"Produto e serviço não podem ser preenchidos no mesmo pedido",
		exclusiveRowMessage(names))
	customFormula(dv,
		"=AND(ISBLANK(INDIRECT(ADDRESS(ROW(),COLUMN()-1,4))), ISBLANK(INDIRECT(ADDRESS(ROW(),COLUMN()-2,4))))")
	return dv
}

func exclusiveRowMessage(names serviceHeaderNames) string {
	return fmt.Sprintf(
		"Cada linha deve conter apenas um dos dois: o %s e a %s, ou o %s. Não é permitido preencher ambos na mesma linha.",
		strings.ToLower(names.SKU), strings.ToLower(names.Quantity), strings.ToLower(names.Service))
}
