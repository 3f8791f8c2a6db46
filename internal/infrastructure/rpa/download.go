package rpa

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Extensões de download em andamento; enquanto alguma existir no diretório,
// o navegador ainda está gravando.
var partialExtensions = []string{".crdownload", ".part", ".tmp"}

const pollInterval = 500 * time.Millisecond

// waitForDownload espera o diretório ganhar um arquivo novo e todos os
// downloads parciais terminarem. before é o retrato do diretório antes do
// clique; devolve o caminho do arquivo novo.
func waitForDownload(ctx context.Context, dir string, before map[string]struct{}) (string, error) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("aguardando download: %w", ctx.Err())
		case <-ticker.C:
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			return "", fmt.Errorf("ler diretório de downloads: %w", err)
		}

		partial := false
		var fresh string
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := entry.Name()
			if isPartial(name) {
				partial = true
				continue
			}
			if _, known := before[name]; !known {
				fresh = filepath.Join(dir, name)
			}
		}

		if fresh != "" && !partial {
			return fresh, nil
		}
	}
}

// snapshotDir registra os arquivos presentes antes de disparar o download.
func snapshotDir(dir string) (map[string]struct{}, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names[entry.Name()] = struct{}{}
		}
	}
	return names, nil
}

func isPartial(name string) bool {
	for _, ext := range partialExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
