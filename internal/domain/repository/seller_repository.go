package repository

import (
	"context"

	"github.com/vendaflow/backoffice-api/internal/domain/entity"
)

// SellerRepository porta de persistência para metadados de vendedor.
type SellerRepository interface {
	GetByCompanyID(ctx context.Context, companyID string) (*entity.Seller, error)
}
