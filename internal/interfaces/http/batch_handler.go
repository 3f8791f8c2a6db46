package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/vendaflow/backoffice-api/internal/application/dto"
	"github.com/vendaflow/backoffice-api/internal/application/usecase"
)

// Campo multipart do arquivo enviado pelo frontend.
const uploadField = "upload"

// BatchHandler recebe a planilha preenchida e a encaminha ao orquestrador.
type BatchHandler struct {
	uc *usecase.BatchUseCase
}

func NewBatchHandler(uc *usecase.BatchUseCase) *BatchHandler {
	return &BatchHandler{uc: uc}
}

// Import godoc
// @Summary      Importar planilha de produtos e pedidos
// @Tags         batch
// @Accept       multipart/form-data
// @Produce      json
// @Param        company_name  path      string  true  "Slug da empresa"
// @Param        upload        formData  file    true  "Planilha preenchida (.xlsx)"
// @Success      200  {object}  dto.BatchImportResponse
// @Failure      400  {object}  dto.BatchImportResponse
// @Router       /api/v1/companies/{company_name}/batch-import [post]
func (h *BatchHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile(uploadField)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo de upload obrigatório"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "não foi possível ler o arquivo"})
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "não foi possível ler o arquivo"})
	}

	out, err := h.uc.Import(c.Context(), dto.BatchImportRequest{
		CompanyName: c.Params("company_name"),
		Filename:    fileHeader.Filename,
		Content:     content,
	})
	if err != nil {
		return writeError(c, err)
	}

	// Rejeição da planilha volta como 400 com o detalhamento por célula.
	if out.Status == usecase.BatchImportStatusError {
		return c.Status(fiber.StatusBadRequest).JSON(out)
	}
	return c.JSON(out)
}
