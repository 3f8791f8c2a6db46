package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/vendaflow/backoffice-api/internal/application/dto"
	"github.com/vendaflow/backoffice-api/internal/application/ports"
	"github.com/vendaflow/backoffice-api/internal/domain"
	"github.com/vendaflow/backoffice-api/internal/domain/repository"
	"github.com/vendaflow/backoffice-api/internal/domain/spreadsheet"
)

// BatchProcessType identifica o processo de escrita de produtos e pedidos no
// orquestrador de importação.
const BatchProcessType = "batch_write_products_and_sale_orders"

// BatchImportStatusError status devolvido pelo orquestrador quando a planilha
// é rejeitada.
const BatchImportStatusError = "error"

// BatchUseCase encaminha a planilha preenchida ao orquestrador assíncrono.
type BatchUseCase struct {
	companies repository.CompanyRepository
	sellers   repository.SellerRepository
	pipeline  ports.BatchPipeline
	log       zerolog.Logger
}

func NewBatchUseCase(
	companies repository.CompanyRepository,
	sellers repository.SellerRepository,
	pipeline ports.BatchPipeline,
	log zerolog.Logger,
) *BatchUseCase {
	return &BatchUseCase{
		companies: companies,
		sellers:   sellers,
		pipeline:  pipeline,
		log:       log.With().Str("componente", "batch_usecase").Logger(),
	}
}

// Import valida a empresa, monta os parâmetros do processo e submete o
// arquivo. O resultado do orquestrador é devolvido tal qual, inclusive em
// caso de rejeição, para que o chamador exiba o detalhamento por célula.
func (uc *BatchUseCase) Import(ctx context.Context, in dto.BatchImportRequest) (*dto.BatchImportResponse, error) {
	if len(in.Content) == 0 {
		return nil, domain.ErrInvalidInput
	}

	company, err := uc.companies.GetByName(ctx, in.CompanyName)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	sellerID := ""
	if seller, err := uc.sellers.GetByCompanyID(ctx, company.ID); err != nil {
		return nil, err
	} else if seller != nil {
		sellerID = seller.ID
	}

	sheetNames := []string{spreadsheet.SheetProduct, spreadsheet.SheetSaleOrder}
	if !company.HasCatalog {
		sheetNames = []string{spreadsheet.SheetSaleOrder}
	}

	result, err := uc.pipeline.Submit(ctx, ports.BatchRequest{
		ProcessType: BatchProcessType,
		InputParams: map[string]any{
			"seller_id":              sellerID,
			"company_id":             company.ID,
			"company_name":           company.CompanyName,
			"company_humanized_name": company.HumanizedName,
		},
		SheetNames: sheetNames,
		Filename:   in.Filename,
		Content:    in.Content,
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("empresa", company.CompanyName).
		Str("arquivo", in.Filename).
		Str("status", result.Status).
		Msg("Planilha submetida ao orquestrador de importação")

	return &dto.BatchImportResponse{
		Status:  result.Status,
		Payload: result.Payload,
	}, nil
}
