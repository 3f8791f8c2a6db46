package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vendaflow/backoffice-api/internal/domain/repository"
)

var _ repository.ProductSizeRepository = (*ProductSizeRepo)(nil)

// ProductSizeRepo implementação do porto ProductSizeRepository sobre PostgreSQL.
type ProductSizeRepo struct {
	pool *pgxpool.Pool
}

func NewProductSizeRepository(pool *pgxpool.Pool) *ProductSizeRepo {
	return &ProductSizeRepo{pool: pool}
}

// DistinctSupplierSKUSizes devolve os valores distintos e não vazios de
// supplier_sku_size da empresa, em ordem alfabética.
func (r *ProductSizeRepo) DistinctSupplierSKUSizes(ctx context.Context, companyID string) ([]string, error) {
	query := `
		SELECT DISTINCT supplier_sku_size FROM product_sizes
		WHERE company_id = $1 AND supplier_sku_size <> ''
		ORDER BY supplier_sku_size`
	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list supplier sku sizes: %w", err)
	}
	defer rows.Close()

	var sizes []string
	for rows.Next() {
		var size string
		if err := rows.Scan(&size); err != nil {
			return nil, fmt.Errorf("scan supplier sku size: %w", err)
		}
		sizes = append(sizes, size)
	}
	return sizes, rows.Err()
}
