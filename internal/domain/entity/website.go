package entity

import "time"

// Website representa um canal de venda ativo de uma empresa (loja própria,
// marketplace, etc.). O nome aparece como opção do dropdown "Canal *".
type Website struct {
	ID          string
	CompanyID   string
	WebsiteName string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
