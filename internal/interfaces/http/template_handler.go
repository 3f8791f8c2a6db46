package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/vendaflow/backoffice-api/internal/application/dto"
	"github.com/vendaflow/backoffice-api/internal/application/usecase"
)

// Content-Type histórico do download, esperado pelos clientes existentes.
const excelContentType = "application/ms-excel"

// TemplateHandler entrega o modelo de planilha da empresa para download.
type TemplateHandler struct {
	uc *usecase.TemplateUseCase
}

func NewTemplateHandler(uc *usecase.TemplateUseCase) *TemplateHandler {
	return &TemplateHandler{uc: uc}
}

// Download godoc
// @Summary      Baixar o modelo de planilha da empresa
// @Tags         templates
// @Produce      application/vnd.ms-excel
// @Param        company_name  path   string  true   "Slug da empresa"
// @Param        active_sheet  query  string  false  "Aba ativa ao abrir (Produtos ou Pedidos)"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/companies/{company_name}/template [get]
func (h *TemplateHandler) Download(c *fiber.Ctx) error {
	file, err := h.uc.Generate(c.Context(), dto.TemplateRequest{
		CompanyName: c.Params("company_name"),
		ActiveSheet: c.Query("active_sheet"),
	})
	if err != nil {
		return writeError(c, err)
	}

	c.Set(fiber.HeaderContentType, excelContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Filename))
	// O frontend lê o nome do arquivo do header; sem expor, o CORS o esconde.
	c.Set("Access-Control-Expose-Headers", fiber.HeaderContentDisposition)
	return c.Send(file.Content)
}
