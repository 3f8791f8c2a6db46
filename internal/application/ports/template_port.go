package ports

import "github.com/vendaflow/backoffice-api/internal/domain/spreadsheet"

// TemplateRenderInput parâmetros já resolvidos para a geração da variante do
// modelo de planilha de uma empresa.
type TemplateRenderInput struct {
	Flags            spreadsheet.FeatureFlags
	ActiveSheet      spreadsheet.ActiveSheet
	WebsiteNames     []string
	SupplierSKUSizes []string
	Dimensions       [3]string
}

// TemplateRenderer porta de geração do modelo de planilha. A implementação
// (excelize) vive em infrastructure/xlsx.
type TemplateRenderer interface {
	Render(in TemplateRenderInput) ([]byte, error)
}
