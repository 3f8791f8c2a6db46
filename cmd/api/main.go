package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/vendaflow/backoffice-api/docs"
	"github.com/vendaflow/backoffice-api/internal/application/usecase"
	"github.com/vendaflow/backoffice-api/internal/infrastructure/pipeline"
	"github.com/vendaflow/backoffice-api/internal/infrastructure/postgres"
	"github.com/vendaflow/backoffice-api/internal/infrastructure/xlsx"
	httpRouter "github.com/vendaflow/backoffice-api/internal/interfaces/http"
	"github.com/vendaflow/backoffice-api/pkg/config"
	"github.com/vendaflow/backoffice-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	websiteRepo := postgres.NewWebsiteRepository(pool)
	sellerRepo := postgres.NewSellerRepository(pool)
	sizeRepo := postgres.NewProductSizeRepository(pool)

	renderer := xlsx.NewTemplateService(cfg.Template.Path, log.Zerolog())
	pipelineClient := pipeline.NewClient(
		cfg.Pipeline.BaseURL,
		time.Duration(cfg.Pipeline.TimeoutSeconds)*time.Second,
		log.Zerolog(),
	)

	authUC := usecase.NewAuthUseCase(userRepo, companyRepo, usecase.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		ExpMinutes: cfg.JWT.Expiration,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	templateUC := usecase.NewTemplateUseCase(
		companyRepo, websiteRepo, sellerRepo, sizeRepo, renderer, log.Zerolog())
	batchUC := usecase.NewBatchUseCase(companyRepo, sellerRepo, pipelineClient, log.Zerolog())

	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
		// Geração de planilha e importação em lote são operações longas.
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 60,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    32 * 1024 * 1024,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "VendaFlow Back-office API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CompanyUC:  companyUC,
		TemplateUC: templateUC,
		BatchUC:    batchUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
