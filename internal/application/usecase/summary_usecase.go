package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/seplan-goias/tramita-api/internal/application/dto"
	"github.com/seplan-goias/tramita-api/internal/application/ports"
	"github.com/seplan-goias/tramita-api/internal/domain"
	"github.com/seplan-goias/tramita-api/internal/domain/repository"
)

// summaryPlaceholder texto substitutivo quando o LLM falha. A falha do
// resumidor nunca é fatal: o processo segue íntegro sem resumo.
const summaryPlaceholder = "Resumo indisponível no momento. Os dados do processo seguem íntegros; tente novamente mais tarde."

// SummaryUseCase orquestra o resumo de processos assistido por IA.
// Aplica timeout de 10 segundos em cada chamada ao LLM para que latências
// externas não bloqueiem as goroutines do servidor.
type SummaryUseCase struct {
	llm      ports.LLMService
	caseRepo repository.CaseRepository
}

// NewSummaryUseCase constrói o caso de uso injetando o porto LLMService.
func NewSummaryUseCase(llm ports.LLMService, caseRepo repository.CaseRepository) *SummaryUseCase {
	return &SummaryUseCase{llm: llm, caseRepo: caseRepo}
}

// SummarizeCase carrega o processo e pede o resumo ao LLM. Erros do LLM
// degradam para o texto substitutivo (Degraded=true) em vez de propagar:
// o resumo é auxiliar, nunca autoritativo.
func (uc *SummaryUseCase) SummarizeCase(ctx context.Context, tenantID, caseID string) (*dto.CaseSummaryDTO, error) {
	c, err := uc.caseRepo.GetByID(caseID)
	if err != nil {
		return nil, fmt.Errorf("resumo IA: carregar processo: %w", err)
	}
	if c == nil || c.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}

	in := ports.CaseSummaryInput{
		SEI:          c.SEI,
		Type:         c.Type,
		Municipality: c.Municipality,
		AuthorName:   c.AuthorName,
		Object:       c.Object,
		Status:       c.Status,
		CurrentUnit:  c.CurrentUnit,
	}
	for _, m := range c.Movements {
		line := fmt.Sprintf("%s → %s em %s (prazo %s)",
			orDash(m.FromUnit), m.ToUnit, m.DateIn.Format("02/01/2006"), m.Deadline.Format("02/01/2006"))
		if m.DateOut != nil {
			line += fmt.Sprintf(", saída em %s, %d dias", m.DateOut.Format("02/01/2006"), m.DaysSpent)
		}
		in.History = append(in.History, line)
	}

	// Timeout de 10 s: chamadas a LLMs podem demorar vários segundos.
	llmCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	summary, err := uc.llm.SummarizeCase(llmCtx, in)
	if err != nil {
		return &dto.CaseSummaryDTO{CaseID: c.ID, Summary: summaryPlaceholder, Degraded: true}, nil
	}
	return &dto.CaseSummaryDTO{CaseID: c.ID, Summary: summary}, nil
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
