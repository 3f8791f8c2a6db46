package spreadsheet

// Abas do modelo de produto e pedido.
const (
	SheetProduct   = "Produtos"
	SheetSaleOrder = "Pedidos"
	SheetOptions   = "Opções"
)

// Layout fixo do documento: banda de cabeçalho de duas linhas (grupo + nome
// da coluna) e dados a partir da terceira linha. A aba de opções usa um
// layout próprio, com os canais fixos na coluna C.
const (
	HeaderGroupRow  = 1
	HeaderColumnRow = 2
	TableStartRow   = 3

	OptionsHeaderRow     = 1
	OptionsTableStartRow = 2
	OptionsWebsiteColumn = 3

	MaxRows               = 1048576
	ErrorMessageMaxLength = 255
)

// TemplateFilename nome público do arquivo de download.
const TemplateFilename = "Modelo de Produto e Pedido.xlsx"

// FakeDimensions placeholders usados quando os nomes das dimensões do
// vendedor ainda não foram resolvidos.
var FakeDimensions = [3]string{"__dimension_1__", "__dimension_2__", "__dimension_3__"}

// ActiveSheet seleciona qual aba o chamador pretende processar.
type ActiveSheet string

const (
	ActiveSheetProduct   ActiveSheet = SheetProduct
	ActiveSheetSaleOrder ActiveSheet = SheetSaleOrder
)
