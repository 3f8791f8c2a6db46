package repository

import (
	"context"

	"github.com/vendaflow/backoffice-api/internal/domain/entity"
)

// CompanyRepository define a porta de persistência para Company (DIP).
// A implementação vive em infrastructure.
type CompanyRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	GetByName(ctx context.Context, companyName string) (*entity.Company, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Company, error)

	// GetIntegrationConfig devolve nil (sem erro) quando a empresa não possui
	// configuração de integração; o chamador assume os defaults históricos.
	GetIntegrationConfig(ctx context.Context, companyID string) (*entity.IntegrationConfig, error)
	UpsertIntegrationConfig(ctx context.Context, cfg *entity.IntegrationConfig) error
}
