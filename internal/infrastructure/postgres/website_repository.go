package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vendaflow/backoffice-api/internal/domain/repository"
)

var _ repository.WebsiteRepository = (*WebsiteRepo)(nil)

// WebsiteRepo implementação do porto WebsiteRepository sobre PostgreSQL.
type WebsiteRepo struct {
	pool *pgxpool.Pool
}

func NewWebsiteRepository(pool *pgxpool.Pool) *WebsiteRepo {
	return &WebsiteRepo{pool: pool}
}

// ListActiveNames devolve os nomes dos canais ativos da empresa, na ordem de criação.
func (r *WebsiteRepo) ListActiveNames(ctx context.Context, companyID string) ([]string, error) {
	query := `
		SELECT website_name FROM websites
		WHERE company_id = $1 AND is_active = true
		ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list websites: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan website: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
