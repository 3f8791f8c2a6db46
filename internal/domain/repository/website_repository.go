package repository

import "context"

// WebsiteRepository porta de persistência para canais de venda.
type WebsiteRepository interface {
	// ListActiveNames devolve os nomes dos canais ativos da empresa, na ordem de criação.
	ListActiveNames(ctx context.Context, companyID string) ([]string, error)
}
