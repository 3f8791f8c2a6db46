package entity

import "time"

// Segmentos de mercado suportados (devem coincidir com o CHECK da tabela companies).
const (
	SegmentRetail   = "retail"
	SegmentFashion  = "fashion"
	SegmentServices = "services"
)

// Company representa uma empresa/tenant do back-office.
type Company struct {
	ID            string
	CompanyName   string // slug único usado nas rotas
	HumanizedName string
	Segment       string // ver constantes Segment*
	HasCatalog    bool   // a empresa mantém catálogo de produtos/serviços
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsServiceSegment indica se a empresa pertence ao segmento de serviços.
func (c Company) IsServiceSegment() bool {
	return c.Segment == SegmentServices
}

// IntegrationConfig configuração de integração por planilha de uma empresa.
// Quando não existe registro, assume-se que a planilha carrega os códigos
// (produto e pedido): é o comportamento histórico das empresas antigas.
type IntegrationConfig struct {
	ID             string
	CompanyID      string
	HasProductCode bool
	HasOrderCode   bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
