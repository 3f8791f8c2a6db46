package dto

// TemplateRequest parâmetros do download do modelo de planilha.
type TemplateRequest struct {
	CompanyName string `json:"company_name"`
	ActiveSheet string `json:"active_sheet" query:"active_sheet"`
}

// TemplateFile arquivo gerado, pronto para download.
type TemplateFile struct {
	Filename string
	Content  []byte
}
