package healthcheck

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/vendaflow/backoffice-api/internal/infrastructure/alert"
)

// Probe verificação individual de saúde de uma dependência.
type Probe interface {
	Name() string
	Check(ctx context.Context) error
}

// Notifier destino dos alertas de falha. Implementado pelo cliente do
// Alertmanager.
type Notifier interface {
	Fire(ctx context.Context, a alert.Alert) error
}

// Checker executa as sondas em paralelo e converte falhas em alertas
// críticos. Uma sonda lenta não atrasa as demais além do timeout individual.
type Checker struct {
	probes   []Probe
	notifier Notifier
	server   string
	timeout  time.Duration
	log      zerolog.Logger
}

func NewChecker(probes []Probe, notifier Notifier, server string, timeout time.Duration, log zerolog.Logger) *Checker {
	return &Checker{
		probes:   probes,
		notifier: notifier,
		server:   server,
		timeout:  timeout,
		log:      log.With().Str("componente", "healthcheck").Logger(),
	}
}

// Run executa todas as sondas e devolve quantas falharam. Falha de sonda não
// interrompe as demais; falha ao publicar o alerta é apenas logada.
func (c *Checker) Run(ctx context.Context) (int, error) {
	var (
		mu       sync.Mutex
		failures int
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, probe := range c.probes {
		probe := probe
		g.Go(func() error {
			probeCtx, cancel := context.WithTimeout(gctx, c.timeout)
			defer cancel()

			err := probe.Check(probeCtx)
			if err == nil {
				c.log.Debug().Str("sonda", probe.Name()).Msg("Sonda saudável")
				return nil
			}

			mu.Lock()
			failures++
			mu.Unlock()

			c.log.Warn().Err(err).Str("sonda", probe.Name()).Msg("Sonda falhou")

			fireErr := c.notifier.Fire(ctx, alert.Alert{
				Name:        probe.Name(),
				Severity:    "critical",
				Server:      c.server,
				Summary:     fmt.Sprintf("Verificação %s falhou", probe.Name()),
				Description: err.Error(),
			})
			if fireErr != nil {
				c.log.Error().Err(fireErr).Str("sonda", probe.Name()).Msg("Falha ao publicar alerta")
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return failures, err
	}
	return failures, nil
}
