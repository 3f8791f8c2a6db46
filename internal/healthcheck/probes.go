package healthcheck

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/jackc/pgx/v5"
)

// Pinger abstrai o ping do pool de conexões (satisfeito por *pgxpool.Pool).
type Pinger interface {
	Ping(ctx context.Context) error
}

// DatabaseProbe verifica se o PostgreSQL responde.
type DatabaseProbe struct {
	DB Pinger
}

func (DatabaseProbe) Name() string { return "BancoDeDadosIndisponivel" }

func (p DatabaseProbe) Check(ctx context.Context) error {
	if err := p.DB.Ping(ctx); err != nil {
		return fmt.Errorf("ping no banco: %w", err)
	}
	return nil
}

// rowQuerier abstrai a consulta de uma linha (satisfeito por *pgxpool.Pool).
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// StuckImportsProbe acusa importações paradas em processamento há mais de uma
// hora, sintoma clássico de worker travado no orquestrador.
type StuckImportsProbe struct {
	DB rowQuerier
}

func (StuckImportsProbe) Name() string { return "ImportacoesTravadas" }

func (p StuckImportsProbe) Check(ctx context.Context) error {
	const query = `
		SELECT COUNT(*) FROM batch_imports
		WHERE status = 'processing' AND started_at < now() - interval '1 hour'`
	var stuck int
	if err := p.DB.QueryRow(ctx, query).Scan(&stuck); err != nil {
		return fmt.Errorf("consultar importações: %w", err)
	}
	if stuck > 0 {
		return fmt.Errorf("%d importação(ões) em processamento há mais de uma hora", stuck)
	}
	return nil
}

// BrokerProbe verifica o broker de mensagens pela API de gerenciamento
// (aliveness-test declara, publica e consome numa fila de teste).
type BrokerProbe struct {
	Host     string
	MgmtPort int
	User     string
	Password string

	// HTTPClient opcional; o default tem timeout de 10 s.
	HTTPClient *http.Client
}

func (BrokerProbe) Name() string { return "BrokerIndisponivel" }

func (p BrokerProbe) Check(ctx context.Context) error {
	endpoint := fmt.Sprintf("http://%s/api/aliveness-test/%s",
		joinHostPort(p.Host, p.MgmtPort), url.PathEscape("/"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("criar requisição: %w", err)
	}
	req.SetBasicAuth(p.User, p.Password)

	resp, err := p.client().Do(req)
	if err != nil {
		return fmt.Errorf("chamar broker: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("broker respondeu HTTP %d", resp.StatusCode)
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("decodificar resposta do broker: %w", err)
	}
	if body.Status != "ok" {
		return fmt.Errorf("aliveness-test devolveu status %q", body.Status)
	}
	return nil
}

func (p BrokerProbe) client() *http.Client {
	if p.HTTPClient != nil {
		return p.HTTPClient
	}
	return &http.Client{Timeout: 10 * time.Second}
}

// TMSProbe verifica se o sistema de transporte integrado responde.
type TMSProbe struct {
	URL        string
	HTTPClient *http.Client
}

func (TMSProbe) Name() string { return "TMSIndisponivel" }

func (p TMSProbe) Check(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL, nil)
	if err != nil {
		return fmt.Errorf("criar requisição: %w", err)
	}
	client := p.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("chamar TMS: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return fmt.Errorf("TMS respondeu HTTP %d", resp.StatusCode)
	}
	return nil
}

// Textos que a tela de erro do frontend exibe ao usuário; se algum aparecer
// na página renderizada, o deploy quebrou mesmo com o servidor devolvendo 200.
var frontendErrorMarkers = []string{
	"Application error",
	"algo deu errado",
	"erro inesperado",
}

// FrontendProbe carrega a página no navegador headless e procura a tela de
// erro renderizada. Uma checagem HTTP simples não pega erro de runtime do JS.
type FrontendProbe struct {
	URL     string
	Browser *rod.Browser
}

func (FrontendProbe) Name() string { return "FrontendComErro" }

func (p FrontendProbe) Check(ctx context.Context) error {
	browser := p.Browser.Context(ctx)

	page, err := browser.Page(proto.TargetCreateTarget{URL: p.URL})
	if err != nil {
		return fmt.Errorf("abrir página: %w", err)
	}
	defer page.Close()

	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("carregar página: %w", err)
	}

	body, err := page.Element("body")
	if err != nil {
		return fmt.Errorf("ler corpo da página: %w", err)
	}
	text, err := body.Text()
	if err != nil {
		return fmt.Errorf("extrair texto: %w", err)
	}

	lower := strings.ToLower(text)
	for _, marker := range frontendErrorMarkers {
		if strings.Contains(lower, strings.ToLower(marker)) {
			return fmt.Errorf("tela de erro renderizada: %q", marker)
		}
	}
	return nil
}

func joinHostPort(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
