package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/seplan-goias/tramita-api/internal/application/ports"
)

// Verificação em tempo de compilação de que AnthropicService implementa LLMService.
var _ ports.LLMService = (*AnthropicService)(nil)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"

	anthropicSystemPrompt = `Você é um analista de orçamento público do Estado de Goiás especializado em emendas parlamentares impositivas.
Receberá os dados de um processo de emenda (SEI, tipo, município, autor, objeto, status e o histórico de tramitação entre unidades).
Escreva um resumo em português, em texto corrido (sem markdown, sem listas), com no máximo 3 frases, cobrindo:
- onde o processo está agora e há quanto tempo;
- se há atraso ou risco de estouro de prazo em alguma unidade;
- qual a próxima providência esperada, se o histórico permitir inferir.
O resumo é informativo, não autoritativo: nunca invente valores, datas ou unidades que não estejam nos dados recebidos.`
)

// AnthropicService adaptador que implementa LLMService usando a API REST da
// Anthropic (Claude). Usa net/http da biblioteca padrão; não requer o SDK.
type AnthropicService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewAnthropicService constrói o adaptador.
// model costuma ser "claude-3-5-haiku-20241022".
// Se apiKey estiver vazio as chamadas devolvem erro descritivo em vez de panic.
func NewAnthropicService(apiKey, model string) *AnthropicService {
	return &AnthropicService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			// Timeout de rede de 25 s; o use case impõe ainda um context.WithTimeout de 10 s.
			Timeout: 25 * time.Second,
		},
	}
}

// ── Estruturas internas do protocolo Anthropic Messages API ───────────────────

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementação do porto ────────────────────────────────────────────────────

// SummarizeCase envia os dados do processo ao Claude e devolve o resumo em
// linguagem natural.
func (s *AnthropicService) SummarizeCase(ctx context.Context, in ports.CaseSummaryInput) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: ANTHROPIC_API_KEY não configurado")
	}

	payload := anthropicRequest{
		Model:     s.model,
		MaxTokens: 512,
		System:    anthropicSystemPrompt,
		Messages: []anthropicMessage{
			{Role: "user", Content: buildUserContent(in)},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicMessagesURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: criar HTTP request: %w", err)
	}
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout ou cancelamento: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: chamada HTTP falhou: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("AI: ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp anthropicResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Anthropic error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Anthropic HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var anthResp anthropicResponse
	if err := json.Unmarshal(rawBody, &anthResp); err != nil {
		return "", fmt.Errorf("AI: deserializar resposta Anthropic: %w", err)
	}
	if len(anthResp.Content) == 0 {
		return "", fmt.Errorf("AI: Claude devolveu resposta vazia")
	}

	summary := strings.TrimSpace(anthResp.Content[0].Text)
	if summary == "" {
		return "", fmt.Errorf("AI: Claude devolveu texto vazio")
	}
	return summary, nil
}

// buildUserContent monta o prompt do usuário com os dados do processo. Só
// entra aqui texto já visível ao usuário na tela do processo.
func buildUserContent(in ports.CaseSummaryInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "SEI: %s\n", in.SEI)
	fmt.Fprintf(&b, "Tipo: %s\n", in.Type)
	fmt.Fprintf(&b, "Município: %s\n", in.Municipality)
	fmt.Fprintf(&b, "Autor: %s\n", in.AuthorName)
	fmt.Fprintf(&b, "Objeto: %s\n", in.Object)
	fmt.Fprintf(&b, "Status atual: %s\n", in.Status)
	fmt.Fprintf(&b, "Unidade atual: %s\n", in.CurrentUnit)
	b.WriteString("Histórico de tramitação:\n")
	if len(in.History) == 0 {
		b.WriteString("(sem movimentações registradas)\n")
	}
	for i, line := range in.History {
		fmt.Fprintf(&b, "%d. %s\n", i+1, line)
	}
	return b.String()
}
