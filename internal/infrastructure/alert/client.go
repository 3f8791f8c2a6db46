package alert

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Alert evento enviado ao Alertmanager.
type Alert struct {
	Name        string
	Severity    string
	Server      string
	Summary     string
	Description string
}

// Janela de resolução automática: sem refire dentro deste prazo o alerta expira.
const resolveWindow = 20 * time.Minute

// Client publica alertas na API v2 do Alertmanager.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

func NewClient(host string, port int, log zerolog.Logger) *Client {
	return &Client{
		baseURL: fmt.Sprintf("http://%s:%d", host, port),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log.With().Str("componente", "alertmanager").Logger(),
	}
}

type alertPayload struct {
	Labels      map[string]string `json:"labels"`
	Annotations map[string]string `json:"annotations"`
	StartsAt    time.Time         `json:"startsAt"`
	EndsAt      time.Time         `json:"endsAt"`
}

// Fire dispara um alerta crítico. O endsAt fica 20 minutos à frente: jobs que
// rodam em intervalo menor mantêm o alerta aceso enquanto o problema durar.
func (c *Client) Fire(ctx context.Context, a Alert) error {
	now := time.Now().UTC()
	payload := []alertPayload{{
		Labels: map[string]string{
			"alertname": a.Name,
			"severity":  a.Severity,
			"server":    a.Server,
		},
		Annotations: map[string]string{
			"summary":     a.Summary,
			"description": a.Description,
		},
		StartsAt: now,
		EndsAt:   now.Add(resolveWindow),
	}}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("serializar alerta: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v2/alerts", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("criar requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("publicar alerta: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("alertmanager respondeu HTTP %d: %s", resp.StatusCode, raw)
	}

	c.log.Info().
		Str("alerta", a.Name).
		Str("servidor", a.Server).
		Msg("Alerta publicado")
	return nil
}
