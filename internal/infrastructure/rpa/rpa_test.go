package rpa

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeAccessWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })

	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Código", "Usuário", "Senha"}))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "acessos.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadAccessWorkbook(t *testing.T) {
	path := writeAccessWorkbook(t, [][]any{
		{"L001", "loja1@parceiro.com", "senha1"},
		{" L002 ", " loja2@parceiro.com ", " senha2 "},
		{"L003", "", "senha3"}, // incompleta: ignorada
		{"", "", ""},
	})

	accesses, err := ReadAccessWorkbook(path)
	require.NoError(t, err)
	require.Len(t, accesses, 2)

	assert.Equal(t, PortalAccess{Code: "L001", User: "loja1@parceiro.com", Password: "senha1"}, accesses[0])
	assert.Equal(t, PortalAccess{Code: "L002", User: "loja2@parceiro.com", Password: "senha2"}, accesses[1],
		"espaços das células são aparados")
}

func TestReadAccessWorkbook_ArquivoInexistente(t *testing.T) {
	_, err := ReadAccessWorkbook(filepath.Join(t.TempDir(), "nao-existe.xlsx"))
	require.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// TestWaitForDownload simula o ciclo do navegador: o arquivo nasce como
// parcial (.crdownload) e só conta como pronto quando é renomeado para o
// nome final.
// ──────────────────────────────────────────────────────────────────────────────
func TestWaitForDownload(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "antigo.xlsx"), []byte("x"), 0o644))

	before, err := snapshotDir(dir)
	require.NoError(t, err)

	go func() {
		partial := filepath.Join(dir, "relatorio.xlsx.crdownload")
		_ = os.WriteFile(partial, []byte("parcial"), 0o644)
		time.Sleep(2 * pollInterval)
		_ = os.Rename(partial, filepath.Join(dir, "relatorio.xlsx"))
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	path, err := waitForDownload(ctx, dir, before)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "relatorio.xlsx"), path,
		"o arquivo antigo não conta; só o download novo")
}

func TestWaitForDownload_Timeout(t *testing.T) {
	dir := t.TempDir()
	before, err := snapshotDir(dir)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*pollInterval)
	defer cancel()

	_, err = waitForDownload(ctx, dir, before)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestIsPartial(t *testing.T) {
	assert.True(t, isPartial("relatorio.xlsx.crdownload"))
	assert.True(t, isPartial("relatorio.part"))
	assert.True(t, isPartial("relatorio.tmp"))
	assert.False(t, isPartial("relatorio.xlsx"))
}
