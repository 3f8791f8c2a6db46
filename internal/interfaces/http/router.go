package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vendaflow/backoffice-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC     *usecase.AuthUseCase
	CompanyUC  *usecase.CompanyUseCase
	TemplateUC *usecase.TemplateUseCase
	BatchUC    *usecase.BatchUseCase
	JWTSecret  string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	companyHandler := NewCompanyHandler(deps.CompanyUC)
	protected.Get("/companies", companyHandler.List)

	// Recursos de empresa: o slug da rota precisa bater com o token.
	company := protected.Group("/companies/:company_name", RequireCompany())
	company.Get("/", companyHandler.GetByName)
	company.Get("/integration-config", companyHandler.GetIntegrationConfig)
	company.Put("/integration-config", companyHandler.UpdateIntegrationConfig)

	templateHandler := NewTemplateHandler(deps.TemplateUC)
	company.Get("/template", templateHandler.Download)

	batchHandler := NewBatchHandler(deps.BatchUC)
	company.Post("/batch-import", batchHandler.Import)
}
