package cleanup

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Nome de cópia gerado pelo navegador ao baixar um arquivo repetido:
// "relatorio (1).xlsx", "relatorio (2).xlsx", etc.
var duplicatePattern = regexp.MustCompile(`^(.+?) \(\d+\)(\.[^.]+)?$`)

// Cleaner remove da árvore de downloads os arquivos duplicados e os restos
// de padrões conhecidos. Usado pelo job que higieniza o diretório do RPA.
type Cleaner struct {
	root        string
	concurrency int
	log         zerolog.Logger
}

func NewCleaner(root string, concurrency int, log zerolog.Logger) *Cleaner {
	if concurrency < 1 {
		concurrency = 4
	}
	return &Cleaner{
		root:        root,
		concurrency: concurrency,
		log:         log.With().Str("componente", "cleanup").Logger(),
	}
}

// RemoveDuplicates percorre a árvore nível a nível, com diretórios do mesmo
// nível lidos em paralelo, e remove toda cópia "nome (N).ext" cujo original
// ainda exista no mesmo diretório. Devolve quantos arquivos caíram.
func (c *Cleaner) RemoveDuplicates(ctx context.Context) (int, error) {
	var (
		mu      sync.Mutex
		removed int
	)

	level := []string{c.root}
	for len(level) > 0 {
		var (
			nextMu sync.Mutex
			next   []string
		)

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(c.concurrency)

		for _, dir := range level {
			dir := dir
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				subdirs, count, err := c.cleanDir(dir)
				if err != nil {
					return err
				}
				nextMu.Lock()
				next = append(next, subdirs...)
				nextMu.Unlock()
				mu.Lock()
				removed += count
				mu.Unlock()
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return removed, err
		}
		level = next
	}

	c.log.Info().Int("removidos", removed).Str("raiz", c.root).Msg("Duplicados removidos")
	return removed, nil
}

// cleanDir remove os duplicados de um diretório e devolve seus subdiretórios.
func (c *Cleaner) cleanDir(dir string) ([]string, int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, 0, err
	}

	names := make(map[string]struct{}, len(entries))
	var subdirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			subdirs = append(subdirs, filepath.Join(dir, entry.Name()))
			continue
		}
		names[entry.Name()] = struct{}{}
	}

	removed := 0
	for name := range names {
		m := duplicatePattern.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		original := m[1] + m[2]
		if _, ok := names[original]; !ok {
			// Sem o original a cópia é o único exemplar; fica.
			continue
		}
		path := filepath.Join(dir, name)
		if err := os.Remove(path); err != nil {
			return nil, removed, err
		}
		c.log.Debug().Str("arquivo", path).Msg("Duplicado removido")
		removed++
	}
	return subdirs, removed, nil
}

// RemoveMatching remove os arquivos da raiz que casam com o padrão glob
// (ex.: "*.crdownload" para downloads abandonados). Devolve quantos caíram.
func (c *Cleaner) RemoveMatching(pattern string) (int, error) {
	matches, err := filepath.Glob(filepath.Join(c.root, pattern))
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		if err := os.Remove(path); err != nil {
			return removed, err
		}
		removed++
	}

	c.log.Info().Int("removidos", removed).Str("padrao", pattern).Msg("Arquivos removidos por padrão")
	return removed, nil
}
