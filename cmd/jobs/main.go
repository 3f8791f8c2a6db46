package main

import (
	"fmt"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/spf13/cobra"

	"github.com/vendaflow/backoffice-api/internal/cleanup"
	"github.com/vendaflow/backoffice-api/internal/healthcheck"
	"github.com/vendaflow/backoffice-api/internal/infrastructure/alert"
	"github.com/vendaflow/backoffice-api/internal/infrastructure/postgres"
	"github.com/vendaflow/backoffice-api/internal/infrastructure/rpa"
	"github.com/vendaflow/backoffice-api/internal/infrastructure/xlsx"
	"github.com/vendaflow/backoffice-api/pkg/config"
	"github.com/vendaflow/backoffice-api/pkg/logger"
)

// Jobs operacionais fora do ciclo de request da API: health check da
// infraestrutura, higienização de downloads, coleta de relatórios no portal
// do parceiro e materialização do modelo mestre.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "carregar configuração:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})

	root := &cobra.Command{
		Use:           "jobs",
		Short:         "Jobs operacionais do back-office",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		healthcheckCmd(cfg, log),
		cleanupCmd(cfg, log),
		rpaCmd(cfg, log),
		templateCmd(log),
	)

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("job finalizado com erro")
		os.Exit(1)
	}
}

func healthcheckCmd(cfg *config.Config, log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "healthcheck",
		Short: "Verifica as dependências e publica alertas no Alertmanager",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			pool, err := postgres.NewPool(ctx, cfg.DB)
			if err != nil {
				return fmt.Errorf("conexão ao PostgreSQL: %w", err)
			}
			defer pool.Close()

			notifier := alert.NewClient(cfg.Health.AlertmanagerHost, cfg.Health.AlertmanagerPort, log.Zerolog())

			probes := []healthcheck.Probe{
				healthcheck.DatabaseProbe{DB: pool},
				healthcheck.StuckImportsProbe{DB: pool},
				healthcheck.BrokerProbe{
					Host:     cfg.Health.BrokerHost,
					MgmtPort: cfg.Health.BrokerMgmtPort,
					User:     cfg.Health.BrokerUser,
					Password: cfg.Health.BrokerPassword,
				},
			}
			if cfg.Health.TMSURL != "" {
				probes = append(probes, healthcheck.TMSProbe{URL: cfg.Health.TMSURL})
			}
			if cfg.Health.FrontendURL != "" {
				browser, closeBrowser, err := headlessBrowser()
				if err != nil {
					return fmt.Errorf("navegador headless: %w", err)
				}
				defer closeBrowser()
				probes = append(probes, healthcheck.FrontendProbe{
					URL:     cfg.Health.FrontendURL,
					Browser: browser,
				})
			}

			checker := healthcheck.NewChecker(
				probes, notifier, cfg.App.Name,
				time.Duration(cfg.Health.ProbeTimeoutSecs)*time.Second,
				log.Zerolog(),
			)

			failures, err := checker.Run(ctx)
			if err != nil {
				return err
			}
			log.Info().Int("falhas", failures).Msg("Health check concluído")
			return nil
		},
	}
}

func headlessBrowser() (*rod.Browser, func(), error) {
	l := launcher.New().Headless(true)
	controlURL, err := l.Launch()
	if err != nil {
		return nil, nil, err
	}
	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		l.Cleanup()
		return nil, nil, err
	}
	return browser, func() {
		_ = browser.Close()
		l.Cleanup()
	}, nil
}

func cleanupCmd(cfg *config.Config, log *logger.Logger) *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Remove duplicados e downloads abandonados do diretório do RPA",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.RPA.DownloadPath == "" {
				return fmt.Errorf("RPA_DOWNLOAD_PATH não configurado")
			}

			cleaner := cleanup.NewCleaner(cfg.RPA.DownloadPath, concurrency, log.Zerolog())

			duplicates, err := cleaner.RemoveDuplicates(cmd.Context())
			if err != nil {
				return err
			}
			abandoned := 0
			for _, pattern := range []string{"*.crdownload", "*.part", "*.tmp"} {
				n, err := cleaner.RemoveMatching(pattern)
				if err != nil {
					return err
				}
				abandoned += n
			}
			log.Info().
				Int("duplicados", duplicates).
				Int("abandonados", abandoned).
				Msg("Limpeza concluída")
			return nil
		},
	}
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "diretórios lidos em paralelo")
	return cmd
}

func rpaCmd(cfg *config.Config, log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "rpa",
		Short: "Coleta os relatórios de vendas no portal do parceiro",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.RPA.AccessWorkbookPath == "" {
				return fmt.Errorf("RPA_ACCESS_WORKBOOK não configurado")
			}

			accesses, err := rpa.ReadAccessWorkbook(cfg.RPA.AccessWorkbookPath)
			if err != nil {
				return err
			}
			if len(accesses) == 0 {
				return fmt.Errorf("planilha de acessos vazia")
			}

			robot := rpa.NewRobot(rpa.Config{
				LoginURL:     cfg.RPA.LoginURL,
				DownloadPath: cfg.RPA.DownloadPath,
				Headless:     cfg.RPA.Headless,
			}, log.Zerolog())

			downloaded, err := robot.CollectAll(cmd.Context(), accesses)
			log.Info().Int("coletados", len(downloaded)).Msg("Coleta concluída")
			return err
		},
	}
}

func templateCmd(log *logger.Logger) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Materializa o modelo mestre de planilha em disco",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := xlsx.WriteMasterTemplate(output); err != nil {
				return err
			}
			log.Info().Str("arquivo", output).Msg("Modelo mestre gravado")
			return nil
		},
	}
	cmd.Flags().StringVar(&output, "output", "modelo-mestre.xlsx", "caminho do arquivo de saída")
	return cmd
}
