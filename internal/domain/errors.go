package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound     = errors.New("recurso não encontrado")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("não autorizado")
	ErrForbidden    = errors.New("acesso negado")
)

// Erros do motor de planilhas. Nenhum deles é retryável: indicam combinação
// de flags inválida, divergência entre schema e modelo, ou violação de
// pré-condição do documento.
var (
	// ErrConfiguration combinação de flags da empresa inválida; exige correção do cadastro.
	ErrConfiguration = errors.New("configuração de planilha inválida")

	// ErrColumnNotFound o cabeçalho esperado não existe na planilha (drift do modelo).
	ErrColumnNotFound = errors.New("coluna não encontrada na planilha")

	// ErrUnsupportedMerge o documento contém mesclagem de múltiplas linhas.
	ErrUnsupportedMerge = errors.New("apenas células mescladas de linha única são suportadas")

	// ErrRangeMismatch a aritmética dos intervalos da aba de opções não fechou.
	ErrRangeMismatch = errors.New("intervalos de linhas incompatíveis")

	// ErrDuplicateKey registro duplicado de coordenada de coluna (erro de programação).
	ErrDuplicateKey = errors.New("coordenada de coluna duplicada")

	// ErrUnknownColumn coordenada de coluna nunca registrada.
	ErrUnknownColumn = errors.New("coordenada de coluna não registrada")
)
