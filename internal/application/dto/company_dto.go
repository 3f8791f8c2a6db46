package dto

import "time"

// CompanyResponse representação pública de uma empresa.
type CompanyResponse struct {
	ID            string    `json:"id"`
	CompanyName   string    `json:"company_name"`
	HumanizedName string    `json:"humanized_name"`
	Segment       string    `json:"segment"`
	HasCatalog    bool      `json:"has_catalog"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// IntegrationConfigRequest atualização da configuração de integração por planilha.
type IntegrationConfigRequest struct {
	HasProductCode bool `json:"has_product_code"`
	HasOrderCode   bool `json:"has_order_code"`
}

// IntegrationConfigResponse configuração de integração vigente. Empresas sem
// registro próprio recebem os defaults históricos (ambos os códigos presentes).
type IntegrationConfigResponse struct {
	CompanyID      string `json:"company_id"`
	HasProductCode bool   `json:"has_product_code"`
	HasOrderCode   bool   `json:"has_order_code"`
}
