package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vendaflow/backoffice-api/internal/application/dto"
	"github.com/vendaflow/backoffice-api/internal/domain"
	"github.com/vendaflow/backoffice-api/internal/domain/entity"
	"github.com/vendaflow/backoffice-api/internal/domain/repository"
)

// CompanyUseCase casos de uso de empresas e da configuração de integração.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase constrói o caso de uso com a porta de persistência.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// GetByName busca uma empresa pelo slug. Devolve domain.ErrNotFound se não existir.
func (uc *CompanyUseCase) GetByName(ctx context.Context, companyName string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByName(ctx, companyName)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return entityToCompanyResponse(company), nil
}

// List lista empresas com paginação.
func (uc *CompanyUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.CompanyListResponse, error) {
	page.Normalize()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// GetIntegrationConfig devolve a configuração de integração da empresa.
// Empresas sem registro próprio recebem os defaults históricos: planilha com
// código de produto e código de pedido.
func (uc *CompanyUseCase) GetIntegrationConfig(ctx context.Context, companyName string) (*dto.IntegrationConfigResponse, error) {
	company, err := uc.repo.GetByName(ctx, companyName)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	cfg, err := uc.repo.GetIntegrationConfig(ctx, company.ID)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return &dto.IntegrationConfigResponse{
			CompanyID:      company.ID,
			HasProductCode: true,
			HasOrderCode:   true,
		}, nil
	}
	return &dto.IntegrationConfigResponse{
		CompanyID:      cfg.CompanyID,
		HasProductCode: cfg.HasProductCode,
		HasOrderCode:   cfg.HasOrderCode,
	}, nil
}

// UpdateIntegrationConfig grava (criando se preciso) a configuração de integração.
func (uc *CompanyUseCase) UpdateIntegrationConfig(ctx context.Context, companyName string, in dto.IntegrationConfigRequest) (*dto.IntegrationConfigResponse, error) {
	company, err := uc.repo.GetByName(ctx, companyName)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	cfg, err := uc.repo.GetIntegrationConfig(ctx, company.ID)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = &entity.IntegrationConfig{
			ID:        uuid.New().String(),
			CompanyID: company.ID,
			CreatedAt: now,
		}
	}
	cfg.HasProductCode = in.HasProductCode
	cfg.HasOrderCode = in.HasOrderCode
	cfg.UpdatedAt = now

	if err := uc.repo.UpsertIntegrationConfig(ctx, cfg); err != nil {
		return nil, err
	}
	return &dto.IntegrationConfigResponse{
		CompanyID:      cfg.CompanyID,
		HasProductCode: cfg.HasProductCode,
		HasOrderCode:   cfg.HasOrderCode,
	}, nil
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:            c.ID,
		CompanyName:   c.CompanyName,
		HumanizedName: c.HumanizedName,
		Segment:       c.Segment,
		HasCatalog:    c.HasCatalog,
		IsActive:      c.IsActive,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
