package cleanup

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
}

func exists(t *testing.T, dir, name string) bool {
	t.Helper()
	_, err := os.Stat(filepath.Join(dir, name))
	if err == nil {
		return true
	}
	require.True(t, os.IsNotExist(err))
	return false
}

// ──────────────────────────────────────────────────────────────────────────────
// TestCleaner_RemoveDuplicates cobre o contrato da limpeza: cópias "(N)" caem
// quando o original existe, sobrevivem quando são o único exemplar, e a
// varredura desce por subdiretórios.
// ──────────────────────────────────────────────────────────────────────────────
func TestCleaner_RemoveDuplicates(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "relatorio.xlsx")
	writeFile(t, root, "relatorio (1).xlsx")
	writeFile(t, root, "relatorio (2).xlsx")
	writeFile(t, root, "orfao (1).xlsx") // sem original: fica

	sub := filepath.Join(root, "2026-08")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeFile(t, sub, "vendas.csv")
	writeFile(t, sub, "vendas (1).csv")

	cleaner := NewCleaner(root, 4, zerolog.Nop())
	removed, err := cleaner.RemoveDuplicates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	assert.True(t, exists(t, root, "relatorio.xlsx"))
	assert.False(t, exists(t, root, "relatorio (1).xlsx"))
	assert.False(t, exists(t, root, "relatorio (2).xlsx"))
	assert.True(t, exists(t, root, "orfao (1).xlsx"), "cópia sem original é o único exemplar")
	assert.True(t, exists(t, sub, "vendas.csv"))
	assert.False(t, exists(t, sub, "vendas (1).csv"))
}

func TestCleaner_RemoveDuplicates_SemExtensao(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "LEIAME")
	writeFile(t, root, "LEIAME (1)")

	cleaner := NewCleaner(root, 1, zerolog.Nop())
	removed, err := cleaner.RemoveDuplicates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.True(t, exists(t, root, "LEIAME"))
	assert.False(t, exists(t, root, "LEIAME (1)"))
}

func TestCleaner_RemoveMatching(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "relatorio.xlsx")
	writeFile(t, root, "abandonado.crdownload")
	writeFile(t, root, "parcial.crdownload")

	cleaner := NewCleaner(root, 1, zerolog.Nop())
	removed, err := cleaner.RemoveMatching("*.crdownload")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.True(t, exists(t, root, "relatorio.xlsx"))
	assert.False(t, exists(t, root, "abandonado.crdownload"))
}

func TestDuplicatePattern(t *testing.T) {
	cases := []struct {
		name     string
		original string
	}{
		{"relatorio (1).xlsx", "relatorio.xlsx"},
		{"relatorio (12).xlsx", "relatorio.xlsx"},
		{"nota fiscal (2).pdf", "nota fiscal.pdf"},
		{"LEIAME (1)", "LEIAME"},
	}
	for _, tc := range cases {
		m := duplicatePattern.FindStringSubmatch(tc.name)
		require.NotNil(t, m, tc.name)
		assert.Equal(t, tc.original, m[1]+m[2], tc.name)
	}

	assert.Nil(t, duplicatePattern.FindStringSubmatch("relatorio.xlsx"))
	assert.Nil(t, duplicatePattern.FindStringSubmatch("relatorio(1).xlsx"),
		"sem espaço antes do parêntese não é padrão de cópia do navegador")
}
