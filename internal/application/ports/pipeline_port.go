package ports

import "context"

// BatchRequest submissão de uma planilha ao orquestrador assíncrono.
type BatchRequest struct {
	ProcessType string
	InputParams map[string]any
	SheetNames  []string
	Filename    string
	Content     []byte
}

// BatchResult resposta do orquestrador. Status "error" indica rejeição da
// planilha; Payload carrega o detalhamento devolvido sem reinterpretação.
type BatchResult struct {
	Status  string
	Payload map[string]any
}

// BatchPipeline porta de comunicação com o orquestrador de importação em lote.
type BatchPipeline interface {
	Submit(ctx context.Context, req BatchRequest) (*BatchResult, error)
}
