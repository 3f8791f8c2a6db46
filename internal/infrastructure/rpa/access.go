package rpa

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// PortalAccess credenciais de uma loja no portal do parceiro.
type PortalAccess struct {
	Code     string
	User     string
	Password string
}

// ReadAccessWorkbook lê a planilha de acessos (código, usuário, senha nas
// três primeiras colunas, cabeçalho na primeira linha). Linhas incompletas
// são ignoradas.
func ReadAccessWorkbook(path string) ([]PortalAccess, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("abrir planilha de acessos: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("ler planilha de acessos: %w", err)
	}

	var accesses []PortalAccess
	for i, row := range rows {
		if i == 0 {
			continue // cabeçalho
		}
		if len(row) < 3 {
			continue
		}
		access := PortalAccess{
			Code:     strings.TrimSpace(row[0]),
			User:     strings.TrimSpace(row[1]),
			Password: strings.TrimSpace(row[2]),
		}
		if access.Code == "" || access.User == "" || access.Password == "" {
			continue
		}
		accesses = append(accesses, access)
	}
	return accesses, nil
}
