package dto

// CaseSummaryDTO resumo gerado pelo LLM para um processo.
// Texto livre, nunca autoritativo: o estado do processo vem sempre do store.
type CaseSummaryDTO struct {
	CaseID  string `json:"case_id"`
	Summary string `json:"summary"`
	// Degraded indica que o resumo é o texto substitutivo por falha do LLM.
	Degraded bool `json:"degraded"`
}
