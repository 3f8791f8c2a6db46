package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/vendaflow/backoffice-api/internal/application/dto"
	"github.com/vendaflow/backoffice-api/internal/application/ports"
	"github.com/vendaflow/backoffice-api/internal/domain"
	"github.com/vendaflow/backoffice-api/internal/domain/entity"
	"github.com/vendaflow/backoffice-api/internal/domain/repository"
	"github.com/vendaflow/backoffice-api/internal/domain/spreadsheet"
)

// TemplateUseCase resolve os parâmetros da empresa (flags, canais, tamanhos,
// dimensões) e delega a geração do modelo de planilha ao renderizador.
type TemplateUseCase struct {
	companies repository.CompanyRepository
	websites  repository.WebsiteRepository
	sellers   repository.SellerRepository
	sizes     repository.ProductSizeRepository
	renderer  ports.TemplateRenderer
	log       zerolog.Logger
}

func NewTemplateUseCase(
	companies repository.CompanyRepository,
	websites repository.WebsiteRepository,
	sellers repository.SellerRepository,
	sizes repository.ProductSizeRepository,
	renderer ports.TemplateRenderer,
	log zerolog.Logger,
) *TemplateUseCase {
	return &TemplateUseCase{
		companies: companies,
		websites:  websites,
		sellers:   sellers,
		sizes:     sizes,
		renderer:  renderer,
		log:       log.With().Str("componente", "template_usecase").Logger(),
	}
}

// Generate monta a variante do modelo para a empresa informada.
func (uc *TemplateUseCase) Generate(ctx context.Context, in dto.TemplateRequest) (*dto.TemplateFile, error) {
	company, err := uc.companies.GetByName(ctx, in.CompanyName)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	flags, err := uc.resolveFlags(ctx, company)
	if err != nil {
		return nil, err
	}

	websiteNames, err := uc.websites.ListActiveNames(ctx, company.ID)
	if err != nil {
		return nil, err
	}

	var skuSizes []string
	if flags.HasCatalog {
		if skuSizes, err = uc.sizes.DistinctSupplierSKUSizes(ctx, company.ID); err != nil {
			return nil, err
		}
	}

	dimensions, err := uc.resolveDimensions(ctx, company, flags)
	if err != nil {
		return nil, err
	}

	content, err := uc.renderer.Render(ports.TemplateRenderInput{
		Flags:            flags,
		ActiveSheet:      parseActiveSheet(in.ActiveSheet),
		WebsiteNames:     websiteNames,
		SupplierSKUSizes: skuSizes,
		Dimensions:       dimensions,
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("empresa", company.CompanyName).
		Bool("catalogo", flags.HasCatalog).
		Bool("servicos", flags.IsServiceSegment).
		Msg("Modelo de planilha gerado para download")

	return &dto.TemplateFile{
		Filename: spreadsheet.TemplateFilename,
		Content:  content,
	}, nil
}

// resolveFlags combina o segmento da empresa com a configuração de integração.
// Sem registro de integração valem os defaults históricos (códigos presentes).
func (uc *TemplateUseCase) resolveFlags(ctx context.Context, company *entity.Company) (spreadsheet.FeatureFlags, error) {
	flags := spreadsheet.FeatureFlags{
		IsServiceSegment: company.IsServiceSegment(),
		HasCatalog:       company.HasCatalog,
		HasProductCode:   true,
		HasOrderCode:     true,
	}

	cfg, err := uc.companies.GetIntegrationConfig(ctx, company.ID)
	if err != nil {
		return spreadsheet.FeatureFlags{}, err
	}
	if cfg != nil {
		flags.HasProductCode = cfg.HasProductCode
		flags.HasOrderCode = cfg.HasOrderCode
	}
	if !flags.HasCatalog {
		flags.HasProductCode = false
	}
	return flags, flags.Validate()
}

// resolveDimensions devolve os cabeçalhos das três colunas de dimensão. Os
// nomes humanizados vêm do cadastro de vendedor e ganham o sufixo de
// obrigatório; sem cadastro valem os placeholders.
func (uc *TemplateUseCase) resolveDimensions(ctx context.Context, company *entity.Company, flags spreadsheet.FeatureFlags) ([3]string, error) {
	if !flags.HasCatalog || !flags.HasProductCode {
		return spreadsheet.FakeDimensions, nil
	}

	seller, err := uc.sellers.GetByCompanyID(ctx, company.ID)
	if err != nil {
		return [3]string{}, err
	}
	if seller == nil {
		return spreadsheet.FakeDimensions, nil
	}

	humanized := seller.HumanizedDimensions()
	var dims [3]string
	for i, name := range humanized {
		if name == "" {
			return spreadsheet.FakeDimensions, nil
		}
		dims[i] = name + " *"
	}
	return dims, nil
}

func parseActiveSheet(raw string) spreadsheet.ActiveSheet {
	if raw == spreadsheet.SheetSaleOrder {
		return spreadsheet.ActiveSheetSaleOrder
	}
	return spreadsheet.ActiveSheetProduct
}
