package dto

// PageRequest parâmetros de paginação de listagens.
type PageRequest struct {
	Limit  int `json:"limit" query:"limit"`
	Offset int `json:"offset" query:"offset"`
}

// Normalize aplica os limites padrão de paginação.
func (p *PageRequest) Normalize() {
	if p.Limit <= 0 || p.Limit > 100 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse ecoa a paginação aplicada.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ErrorResponse formato padrão de erro da API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
