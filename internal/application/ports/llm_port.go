package ports

import "context"

// CaseSummaryInput dados do processo enviados ao LLM para resumo.
// Somente texto já visível ao usuário; o LLM nunca recebe dados de outros
// tenants nem devolve nada autoritativo.
type CaseSummaryInput struct {
	SEI          string
	Type         string
	Municipality string
	AuthorName   string
	Object       string
	Status       string
	CurrentUnit  string
	History      []string // uma linha por movimentação, em ordem
}

// LLMService define o porto de saída para o resumidor de processos por IA.
// Qualquer adaptador (Anthropic, Gemini, mock) deve implementar esta
// interface; a aplicação só conhece este contrato (DIP).
type LLMService interface {
	// SummarizeCase gera um resumo em linguagem natural da situação do
	// processo. O contexto deve carregar timeout para evitar bloqueios em
	// chamadas externas.
	SummarizeCase(ctx context.Context, in CaseSummaryInput) (string, error)
}
