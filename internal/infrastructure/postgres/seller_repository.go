package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vendaflow/backoffice-api/internal/domain/entity"
	"github.com/vendaflow/backoffice-api/internal/domain/repository"
)

var _ repository.SellerRepository = (*SellerRepo)(nil)

// SellerRepo implementação do porto SellerRepository sobre PostgreSQL.
type SellerRepo struct {
	pool *pgxpool.Pool
}

func NewSellerRepository(pool *pgxpool.Pool) *SellerRepo {
	return &SellerRepo{pool: pool}
}

// GetByCompanyID busca o cadastro de vendedor da empresa. Devolve nil quando
// a empresa ainda não tem cadastro.
func (r *SellerRepo) GetByCompanyID(ctx context.Context, companyID string) (*entity.Seller, error) {
	query := `
		SELECT id, company_id, dimension_1, dimension_2, dimension_3
		FROM sellers WHERE company_id = $1`
	var s entity.Seller
	err := r.pool.QueryRow(ctx, query, companyID).Scan(
		&s.ID, &s.CompanyID, &s.Dimension1, &s.Dimension2, &s.Dimension3,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get seller: %w", err)
	}
	return &s, nil
}
