package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendaflow/backoffice-api/internal/application/ports"
	"github.com/vendaflow/backoffice-api/internal/application/usecase"
	"github.com/vendaflow/backoffice-api/internal/domain/entity"
	apphttp "github.com/vendaflow/backoffice-api/internal/interfaces/http"
)

// Dublês mínimos das portas para exercitar os handlers de ponta a ponta.

type stubCompanyRepo struct {
	company *entity.Company
}

func (r *stubCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	if r.company != nil && r.company.ID == id {
		return r.company, nil
	}
	return nil, nil
}

func (r *stubCompanyRepo) GetByName(_ context.Context, name string) (*entity.Company, error) {
	if r.company != nil && r.company.CompanyName == name {
		return r.company, nil
	}
	return nil, nil
}

func (r *stubCompanyRepo) List(context.Context, int, int) ([]*entity.Company, error) {
	return []*entity.Company{r.company}, nil
}

func (r *stubCompanyRepo) GetIntegrationConfig(context.Context, string) (*entity.IntegrationConfig, error) {
	return nil, nil
}

func (r *stubCompanyRepo) UpsertIntegrationConfig(context.Context, *entity.IntegrationConfig) error {
	return nil
}

type stubWebsiteRepo struct{}

func (stubWebsiteRepo) ListActiveNames(context.Context, string) ([]string, error) {
	return []string{"Loja Própria"}, nil
}

type stubSellerRepo struct{}

func (stubSellerRepo) GetByCompanyID(context.Context, string) (*entity.Seller, error) {
	return &entity.Seller{ID: "s-1", CompanyID: "c-1",
		Dimension1: "Departamento", Dimension2: "Categoria", Dimension3: "Subcategoria"}, nil
}

type stubSizeRepo struct{}

func (stubSizeRepo) DistinctSupplierSKUSizes(context.Context, string) ([]string, error) {
	return []string{"P", "M"}, nil
}

type stubRenderer struct{}

func (stubRenderer) Render(ports.TemplateRenderInput) ([]byte, error) {
	return []byte("xlsx-binario"), nil
}

type stubPipeline struct {
	result ports.BatchResult
}

func (p *stubPipeline) Submit(context.Context, ports.BatchRequest) (*ports.BatchResult, error) {
	return &p.result, nil
}

func buildAPI(t *testing.T, pipeline ports.BatchPipeline) *fiber.App {
	t.Helper()
	companies := &stubCompanyRepo{company: &entity.Company{
		ID:            "c-1",
		CompanyName:   testCompanyName,
		HumanizedName: "Loja Teste",
		Segment:       entity.SegmentRetail,
		HasCatalog:    true,
		IsActive:      true,
	}}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CompanyUC: usecase.NewCompanyUseCase(companies),
		TemplateUC: usecase.NewTemplateUseCase(
			companies, stubWebsiteRepo{}, stubSellerRepo{}, stubSizeRepo{},
			stubRenderer{}, zerolog.Nop()),
		BatchUC:   usecase.NewBatchUseCase(companies, stubSellerRepo{}, pipeline, zerolog.Nop()),
		JWTSecret: testJWTSecret,
	})
	return app
}

// ──────────────────────────────────────────────────────────────────────────────
// TestTemplateHandler_Download verifica o contrato de download: corpo binário,
// Content-Type histórico, nome do arquivo no Content-Disposition e o header
// exposto para o CORS.
// ──────────────────────────────────────────────────────────────────────────────
func TestTemplateHandler_Download(t *testing.T) {
	app := buildAPI(t, &stubPipeline{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies/loja-teste/template", nil)
	req.Header.Set("Authorization", tokenForCompany(t, testCompanyName))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/ms-excel", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, `attachment; filename="Modelo de Produto e Pedido.xlsx"`,
		resp.Header.Get(fiber.HeaderContentDisposition))
	assert.Equal(t, fiber.HeaderContentDisposition, resp.Header.Get("Access-Control-Expose-Headers"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx-binario"), body)
}

func TestTemplateHandler_SemToken(t *testing.T) {
	app := buildAPI(t, &stubPipeline{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies/loja-teste/template", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func multipartUpload(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("upload", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestBatchHandler_Import(t *testing.T) {
	app := buildAPI(t, &stubPipeline{result: ports.BatchResult{
		Status:  "success",
		Payload: map[string]any{"produtos": float64(3)},
	}})

	body, contentType := multipartUpload(t, "planilha.xlsx", []byte("conteudo"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/companies/loja-teste/batch-import", body)
	req.Header.Set("Authorization", tokenForCompany(t, testCompanyName))
	req.Header.Set(fiber.HeaderContentType, contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "success", out["status"])
}

func TestBatchHandler_PlanilhaRejeitada(t *testing.T) {
	app := buildAPI(t, &stubPipeline{result: ports.BatchResult{
		Status:  "error",
		Payload: map[string]any{"celula": "B3", "erro": "SKU inexistente"},
	}})

	body, contentType := multipartUpload(t, "planilha.xlsx", []byte("conteudo"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/companies/loja-teste/batch-import", body)
	req.Header.Set("Authorization", tokenForCompany(t, testCompanyName))
	req.Header.Set(fiber.HeaderContentType, contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode,
		"rejeição da planilha volta como 400 com o detalhamento")

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "error", out["status"])
	payload, ok := out["payload"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "B3", payload["celula"])
}

func TestBatchHandler_SemArquivo(t *testing.T) {
	app := buildAPI(t, &stubPipeline{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/companies/loja-teste/batch-import", nil)
	req.Header.Set("Authorization", tokenForCompany(t, testCompanyName))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_FILE")
}

func TestCompanyHandler_GetByName(t *testing.T) {
	app := buildAPI(t, &stubPipeline{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies/loja-teste", nil)
	req.Header.Set("Authorization", tokenForCompany(t, testCompanyName))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Loja Teste", out["humanized_name"])
}

func TestCompanyHandler_IntegrationConfigDefaults(t *testing.T) {
	app := buildAPI(t, &stubPipeline{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies/loja-teste/integration-config", nil)
	req.Header.Set("Authorization", tokenForCompany(t, testCompanyName))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, true, out["has_product_code"], "sem registro valem os defaults históricos")
	assert.Equal(t, true, out["has_order_code"])
}
