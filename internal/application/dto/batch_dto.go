package dto

// BatchImportRequest upload de planilha preenchida para importação em lote.
type BatchImportRequest struct {
	CompanyName string
	Filename    string
	Content     []byte
}

// BatchImportResponse resultado devolvido pelo orquestrador de importação.
// Payload carrega o corpo bruto (erros de célula, contagens) sem reinterpretação.
type BatchImportResponse struct {
	Status  string         `json:"status"`
	Payload map[string]any `json:"payload,omitempty"`
}
