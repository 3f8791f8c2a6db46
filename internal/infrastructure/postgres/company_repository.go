package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vendaflow/backoffice-api/internal/domain"
	"github.com/vendaflow/backoffice-api/internal/domain/entity"
	"github.com/vendaflow/backoffice-api/internal/domain/repository"
)

// Garante que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementação do porto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository constrói o adaptador de persistência para empresas.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

const companyColumns = `id, company_name, humanized_name, segment, has_catalog, is_active, created_at, updated_at`

// GetByID busca uma empresa por ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	c, err := scanCompany(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// GetByName busca uma empresa pelo slug.
func (r *CompanyRepo) GetByName(ctx context.Context, companyName string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE company_name = $1`
	c, err := scanCompany(r.pool.QueryRow(ctx, query, companyName))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by name: %w", err)
	}
	return c, nil
}

// List devolve empresas com paginação.
func (r *CompanyRepo) List(ctx context.Context, limit, offset int) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// GetIntegrationConfig devolve a configuração de integração da empresa, ou
// nil quando não existe registro.
func (r *CompanyRepo) GetIntegrationConfig(ctx context.Context, companyID string) (*entity.IntegrationConfig, error) {
	query := `
		SELECT id, company_id, has_product_code, has_order_code, created_at, updated_at
		FROM company_integration_configs WHERE company_id = $1`
	var cfg entity.IntegrationConfig
	err := r.pool.QueryRow(ctx, query, companyID).Scan(
		&cfg.ID, &cfg.CompanyID, &cfg.HasProductCode, &cfg.HasOrderCode,
		&cfg.CreatedAt, &cfg.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get integration config: %w", err)
	}
	return &cfg, nil
}

// UpsertIntegrationConfig grava a configuração de integração, criando o
// registro na primeira gravação.
func (r *CompanyRepo) UpsertIntegrationConfig(ctx context.Context, cfg *entity.IntegrationConfig) error {
	query := `
		INSERT INTO company_integration_configs (id, company_id, has_product_code, has_order_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (company_id) DO UPDATE
		SET has_product_code = EXCLUDED.has_product_code,
		    has_order_code   = EXCLUDED.has_order_code,
		    updated_at       = EXCLUDED.updated_at`
	_, err := r.pool.Exec(ctx, query,
		cfg.ID, cfg.CompanyID, cfg.HasProductCode, cfg.HasOrderCode,
		cfg.CreatedAt, cfg.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("upsert integration config: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCompany(row rowScanner) (*entity.Company, error) {
	var c entity.Company
	err := row.Scan(
		&c.ID, &c.CompanyName, &c.HumanizedName, &c.Segment,
		&c.HasCatalog, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
