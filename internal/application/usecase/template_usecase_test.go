package usecase_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendaflow/backoffice-api/internal/application/dto"
	"github.com/vendaflow/backoffice-api/internal/application/usecase"
	"github.com/vendaflow/backoffice-api/internal/domain"
	"github.com/vendaflow/backoffice-api/internal/domain/entity"
	"github.com/vendaflow/backoffice-api/internal/domain/spreadsheet"
)

func retailCompany() *entity.Company {
	return &entity.Company{
		ID:            "c-1",
		CompanyName:   "loja-teste",
		HumanizedName: "Loja Teste",
		Segment:       entity.SegmentRetail,
		HasCatalog:    true,
		IsActive:      true,
	}
}

func newTemplateUseCase(
	companies *fakeCompanyRepo,
	websites *fakeWebsiteRepo,
	sellers *fakeSellerRepo,
	sizes *fakeSizeRepo,
	renderer *fakeRenderer,
) *usecase.TemplateUseCase {
	return usecase.NewTemplateUseCase(companies, websites, sellers, sizes, renderer, zerolog.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// TestTemplateUseCase_Varejo cobre o caminho completo: empresa de varejo com
// catálogo e sem configuração de integração própria recebe os defaults
// históricos, as dimensões humanizadas do vendedor e o arquivo com o nome
// público de download.
// ──────────────────────────────────────────────────────────────────────────────
func TestTemplateUseCase_Varejo(t *testing.T) {
	companies := &fakeCompanyRepo{companies: []*entity.Company{retailCompany()}}
	websites := &fakeWebsiteRepo{names: []string{"Loja Própria", "Marketplace"}}
	sellers := &fakeSellerRepo{seller: &entity.Seller{
		ID: "s-1", CompanyID: "c-1",
		Dimension1: "Departamento", Dimension2: "Categoria", Dimension3: "Subcategoria",
	}}
	sizes := &fakeSizeRepo{sizes: []string{"P", "M", "G"}}
	renderer := &fakeRenderer{content: []byte("xlsx")}

	uc := newTemplateUseCase(companies, websites, sellers, sizes, renderer)

	file, err := uc.Generate(context.Background(), dto.TemplateRequest{CompanyName: "loja-teste"})
	require.NoError(t, err)

	assert.Equal(t, spreadsheet.TemplateFilename, file.Filename)
	assert.Equal(t, []byte("xlsx"), file.Content)

	assert.Equal(t, spreadsheet.FeatureFlags{
		HasCatalog:     true,
		HasProductCode: true,
		HasOrderCode:   true,
	}, renderer.in.Flags, "sem registro de integração valem os defaults históricos")
	assert.Equal(t, spreadsheet.ActiveSheetProduct, renderer.in.ActiveSheet)
	assert.Equal(t, []string{"Loja Própria", "Marketplace"}, renderer.in.WebsiteNames)
	assert.Equal(t, []string{"P", "M", "G"}, renderer.in.SupplierSKUSizes)
	assert.Equal(t, [3]string{"Departamento *", "Categoria *", "Subcategoria *"}, renderer.in.Dimensions,
		"as dimensões do vendedor ganham o sufixo de obrigatório")
}

func TestTemplateUseCase_ConfiguracaoDeIntegracao(t *testing.T) {
	company := retailCompany()
	companies := &fakeCompanyRepo{
		companies: []*entity.Company{company},
		configs: map[string]*entity.IntegrationConfig{
			"c-1": {CompanyID: "c-1", HasProductCode: false, HasOrderCode: true},
		},
	}
	renderer := &fakeRenderer{content: []byte("xlsx")}
	uc := newTemplateUseCase(companies, &fakeWebsiteRepo{names: []string{"Loja"}},
		&fakeSellerRepo{}, &fakeSizeRepo{}, renderer)

	_, err := uc.Generate(context.Background(), dto.TemplateRequest{CompanyName: "loja-teste"})
	require.NoError(t, err)

	assert.False(t, renderer.in.Flags.HasProductCode)
	assert.True(t, renderer.in.Flags.HasOrderCode)
	assert.Equal(t, spreadsheet.FakeDimensions, renderer.in.Dimensions,
		"sem código de produto as dimensões não aparecem e os placeholders bastam")
}

func TestTemplateUseCase_SemCatalogo(t *testing.T) {
	company := retailCompany()
	company.HasCatalog = false
	companies := &fakeCompanyRepo{companies: []*entity.Company{company}}
	sizes := &fakeSizeRepo{sizes: []string{"P"}}
	renderer := &fakeRenderer{content: []byte("xlsx")}
	uc := newTemplateUseCase(companies, &fakeWebsiteRepo{names: []string{"Loja"}},
		&fakeSellerRepo{}, sizes, renderer)

	_, err := uc.Generate(context.Background(), dto.TemplateRequest{
		CompanyName: "loja-teste",
		ActiveSheet: spreadsheet.SheetSaleOrder,
	})
	require.NoError(t, err)

	assert.False(t, renderer.in.Flags.HasCatalog)
	assert.False(t, renderer.in.Flags.HasProductCode,
		"sem catálogo o código de produto é forçado a falso mesmo com o default histórico")
	assert.Equal(t, spreadsheet.ActiveSheetSaleOrder, renderer.in.ActiveSheet)
	assert.False(t, sizes.called, "sem catálogo não há consulta de tamanhos")
	assert.Empty(t, renderer.in.SupplierSKUSizes)
}

func TestTemplateUseCase_SemVendedorCadastrado(t *testing.T) {
	companies := &fakeCompanyRepo{companies: []*entity.Company{retailCompany()}}
	renderer := &fakeRenderer{content: []byte("xlsx")}
	uc := newTemplateUseCase(companies, &fakeWebsiteRepo{names: []string{"Loja"}},
		&fakeSellerRepo{seller: nil}, &fakeSizeRepo{}, renderer)

	_, err := uc.Generate(context.Background(), dto.TemplateRequest{CompanyName: "loja-teste"})
	require.NoError(t, err)

	assert.Equal(t, spreadsheet.FakeDimensions, renderer.in.Dimensions)
}

func TestTemplateUseCase_EmpresaInexistente(t *testing.T) {
	uc := newTemplateUseCase(&fakeCompanyRepo{}, &fakeWebsiteRepo{},
		&fakeSellerRepo{}, &fakeSizeRepo{}, &fakeRenderer{})

	_, err := uc.Generate(context.Background(), dto.TemplateRequest{CompanyName: "fantasma"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
