package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vendaflow/backoffice-api/internal/application/dto"
	"github.com/vendaflow/backoffice-api/internal/application/usecase"
)

// CompanyHandler trata as requisições HTTP do recurso Company.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// GetByName godoc
// @Summary      Buscar empresa pelo slug
// @Tags         companies
// @Produce      json
// @Param        company_name  path  string  true  "Slug da empresa"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/companies/{company_name} [get]
func (h *CompanyHandler) GetByName(c *fiber.Ctx) error {
	out, err := h.uc.GetByName(c.Context(), c.Params("company_name"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar empresas
// @Tags         companies
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.CompanyListResponse
// @Router       /api/v1/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.uc.List(c.Context(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetIntegrationConfig godoc
// @Summary      Consultar configuração de integração por planilha
// @Tags         companies
// @Produce      json
// @Param        company_name  path  string  true  "Slug da empresa"
// @Success      200  {object}  dto.IntegrationConfigResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/companies/{company_name}/integration-config [get]
func (h *CompanyHandler) GetIntegrationConfig(c *fiber.Ctx) error {
	out, err := h.uc.GetIntegrationConfig(c.Context(), c.Params("company_name"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateIntegrationConfig godoc
// @Summary      Atualizar configuração de integração por planilha
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        company_name  path  string  true  "Slug da empresa"
// @Param        body  body  dto.IntegrationConfigRequest  true  "Flags de integração"
// @Success      200  {object}  dto.IntegrationConfigResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/companies/{company_name}/integration-config [put]
func (h *CompanyHandler) UpdateIntegrationConfig(c *fiber.Ctx) error {
	var in dto.IntegrationConfigRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.UpdateIntegrationConfig(c.Context(), c.Params("company_name"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
