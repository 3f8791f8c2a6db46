package rpa

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/rs/zerolog"
)

// Seletores da tela do portal do parceiro.
const (
	selectorUser     = `input[name="username"]`
	selectorPassword = `input[name="password"]`
	selectorSubmit   = `button[type="submit"]`
	selectorReport   = `a[data-report="vendas"]`
)

// Config parâmetros do robô de coleta de relatórios.
type Config struct {
	LoginURL     string
	DownloadPath string
	Headless     bool
}

// Robot automatiza o portal do parceiro: faz login com cada acesso, dispara
// o download do relatório de vendas e espera o arquivo terminar de gravar.
type Robot struct {
	cfg Config
	log zerolog.Logger
}

func NewRobot(cfg Config, log zerolog.Logger) *Robot {
	return &Robot{
		cfg: cfg,
		log: log.With().Str("componente", "rpa").Logger(),
	}
}

// CollectAll processa os acessos em sequência. O portal bloqueia sessões
// simultâneas do mesmo IP, então não há paralelismo aqui. Falha de um acesso
// não interrompe os demais; devolve os caminhos baixados e o último erro.
func (r *Robot) CollectAll(ctx context.Context, accesses []PortalAccess) ([]string, error) {
	browser, cleanup, err := r.openBrowser()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	var (
		downloaded []string
		lastErr    error
	)
	for _, access := range accesses {
		path, err := r.collect(ctx, browser, access)
		if err != nil {
			r.log.Error().Err(err).Str("loja", access.Code).Msg("Falha ao coletar relatório")
			lastErr = fmt.Errorf("loja %s: %w", access.Code, err)
			continue
		}
		r.log.Info().Str("loja", access.Code).Str("arquivo", path).Msg("Relatório coletado")
		downloaded = append(downloaded, path)
	}
	return downloaded, lastErr
}

func (r *Robot) openBrowser() (*rod.Browser, func(), error) {
	l := launcher.New().Headless(r.cfg.Headless)
	controlURL, err := l.Launch()
	if err != nil {
		return nil, nil, fmt.Errorf("iniciar navegador: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		l.Cleanup()
		return nil, nil, fmt.Errorf("conectar ao navegador: %w", err)
	}

	cleanup := func() {
		_ = browser.Close()
		l.Cleanup()
	}
	return browser, cleanup, nil
}

// collect faz o ciclo completo de um acesso: login, navegação e download.
func (r *Robot) collect(ctx context.Context, browser *rod.Browser, access PortalAccess) (string, error) {
	page, err := browser.Context(ctx).Page(proto.TargetCreateTarget{URL: r.cfg.LoginURL})
	if err != nil {
		return "", fmt.Errorf("abrir portal: %w", err)
	}
	defer page.Close()

	if err := (proto.BrowserSetDownloadBehavior{
		Behavior:         proto.BrowserSetDownloadBehaviorBehaviorAllow,
		DownloadPath:     r.cfg.DownloadPath,
		BrowserContextID: browser.BrowserContextID,
	}).Call(browser); err != nil {
		return "", fmt.Errorf("configurar diretório de download: %w", err)
	}

	if err := page.WaitLoad(); err != nil {
		return "", fmt.Errorf("carregar tela de login: %w", err)
	}

	if err := r.login(page, access); err != nil {
		return "", err
	}

	before, err := snapshotDir(r.cfg.DownloadPath)
	if err != nil {
		return "", fmt.Errorf("inspecionar diretório de download: %w", err)
	}

	report, err := page.Element(selectorReport)
	if err != nil {
		return "", fmt.Errorf("localizar relatório de vendas: %w", err)
	}
	if err := report.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return "", fmt.Errorf("disparar download: %w", err)
	}

	downloadCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()
	return waitForDownload(downloadCtx, r.cfg.DownloadPath, before)
}

func (r *Robot) login(page *rod.Page, access PortalAccess) error {
	user, err := page.Element(selectorUser)
	if err != nil {
		return fmt.Errorf("localizar campo de usuário: %w", err)
	}
	if err := user.Input(access.User); err != nil {
		return fmt.Errorf("preencher usuário: %w", err)
	}

	password, err := page.Element(selectorPassword)
	if err != nil {
		return fmt.Errorf("localizar campo de senha: %w", err)
	}
	if err := password.Input(access.Password); err != nil {
		return fmt.Errorf("preencher senha: %w", err)
	}

	submit, err := page.Element(selectorSubmit)
	if err != nil {
		return fmt.Errorf("localizar botão de login: %w", err)
	}
	if err := submit.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("enviar login: %w", err)
	}

	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("carregar página pós-login: %w", err)
	}
	return nil
}
