package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/vendaflow/backoffice-api/internal/application/ports"
)

// Verificação em tempo de compilação de que Client implementa BatchPipeline.
var _ ports.BatchPipeline = (*Client)(nil)

const submitPath = "/api/v1/processes"

// Campos do formulário multipart aceitos pelo orquestrador.
const (
	fieldProcessType = "process_type"
	fieldInputParams = "input_params"
	fieldSheetNames  = "sheet_names"
	fieldUpload      = "upload"
)

// Client adaptador HTTP do orquestrador assíncrono de importação em lote.
// A planilha sobe num formulário multipart junto com os parâmetros do processo.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient constrói o adaptador. timeout cobre a chamada inteira, inclusive
// o processamento síncrono da planilha no orquestrador.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log.With().Str("componente", "pipeline_client").Logger(),
	}
}

// Submit envia a planilha e devolve o resultado do orquestrador. Status de
// rejeição ("error") não é erro de transporte: volta no resultado com o
// payload de detalhamento.
func (c *Client) Submit(ctx context.Context, req ports.BatchRequest) (*ports.BatchResult, error) {
	body, contentType, err := buildForm(req)
	if err != nil {
		return nil, fmt.Errorf("montar formulário: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+submitPath, body)
	if err != nil {
		return nil, fmt.Errorf("criar requisição: %w", err)
	}
	httpReq.Header.Set("Content-Type", contentType)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("chamar orquestrador: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ler resposta do orquestrador: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 500 {
		return nil, fmt.Errorf("orquestrador respondeu HTTP %d: %s", resp.StatusCode, truncate(raw, 512))
	}

	var parsed struct {
		Status  string         `json:"status"`
		Payload map[string]any `json:"payload"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decodificar resposta do orquestrador: %w", err)
	}

	c.log.Debug().
		Str("processo", req.ProcessType).
		Str("arquivo", req.Filename).
		Str("status", parsed.Status).
		Dur("duracao", time.Since(start)).
		Msg("Planilha submetida")

	return &ports.BatchResult{Status: parsed.Status, Payload: parsed.Payload}, nil
}

func buildForm(req ports.BatchRequest) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	if err := w.WriteField(fieldProcessType, req.ProcessType); err != nil {
		return nil, "", err
	}

	params, err := json.Marshal(req.InputParams)
	if err != nil {
		return nil, "", err
	}
	if err := w.WriteField(fieldInputParams, string(params)); err != nil {
		return nil, "", err
	}

	sheets, err := json.Marshal(req.SheetNames)
	if err != nil {
		return nil, "", err
	}
	if err := w.WriteField(fieldSheetNames, string(sheets)); err != nil {
		return nil, "", err
	}

	part, err := w.CreateFormFile(fieldUpload, req.Filename)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(req.Content); err != nil {
		return nil, "", err
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return body, w.FormDataContentType(), nil
}

func truncate(raw []byte, max int) string {
	if len(raw) <= max {
		return string(raw)
	}
	return string(raw[:max]) + "..."
}
