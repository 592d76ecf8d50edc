package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seplan-goias/tramita-api/internal/application/ports"
	"github.com/seplan-goias/tramita-api/internal/application/usecase"
	"github.com/seplan-goias/tramita-api/internal/domain"
	"github.com/seplan-goias/tramita-api/internal/domain/entity"
)

type fakeLLM struct {
	summary string
	err     error
	gotIn   ports.CaseSummaryInput
}

func (f *fakeLLM) SummarizeCase(ctx context.Context, in ports.CaseSummaryInput) (string, error) {
	f.gotIn = in
	return f.summary, f.err
}

type singleCaseRepo struct{ c *entity.Case }

func (r *singleCaseRepo) Create(c *entity.Case) error { return nil }
func (r *singleCaseRepo) GetByID(id string) (*entity.Case, error) {
	if r.c != nil && r.c.ID == id {
		return r.c, nil
	}
	return nil, nil
}
func (r *singleCaseRepo) Update(c *entity.Case) error { return nil }
func (r *singleCaseRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Case, error) {
	return nil, nil
}
func (r *singleCaseRepo) ListAllByTenant(tenantID string) ([]*entity.Case, error) { return nil, nil }
func (r *singleCaseRepo) Delete(id string) error                                  { return nil }

func testCase() *entity.Case {
	in := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	return &entity.Case{
		ID: "c1", TenantID: "t1", SEI: "2025.0001.001",
		Type: entity.CaseTypeImpositiva, Status: "Em Análise", CurrentUnit: "SEPLAN",
		Movements: []entity.Movement{{ToUnit: "SEPLAN", DateIn: in, Deadline: in.AddDate(0, 0, 5)}},
	}
}

func TestSummarizeCase_RepassaHistoricoAoLLM(t *testing.T) {
	llm := &fakeLLM{summary: "Processo em análise na SEPLAN dentro do prazo."}
	uc := usecase.NewSummaryUseCase(llm, &singleCaseRepo{c: testCase()})

	out, err := uc.SummarizeCase(context.Background(), "t1", "c1")
	require.NoError(t, err)
	assert.Equal(t, "Processo em análise na SEPLAN dentro do prazo.", out.Summary)
	assert.False(t, out.Degraded)

	assert.Equal(t, "2025.0001.001", llm.gotIn.SEI)
	require.Len(t, llm.gotIn.History, 1)
	assert.Contains(t, llm.gotIn.History[0], "SEPLAN")
}

func TestSummarizeCase_FalhaDoLLMDegradaSemErro(t *testing.T) {
	llm := &fakeLLM{err: errors.New("API indisponível")}
	uc := usecase.NewSummaryUseCase(llm, &singleCaseRepo{c: testCase()})

	out, err := uc.SummarizeCase(context.Background(), "t1", "c1")
	require.NoError(t, err, "falha do LLM nunca é fatal")
	assert.True(t, out.Degraded)
	assert.NotEmpty(t, out.Summary, "texto substitutivo no lugar do resumo")
}

func TestSummarizeCase_ProcessoDeOutroTenant(t *testing.T) {
	llm := &fakeLLM{summary: "qualquer"}
	uc := usecase.NewSummaryUseCase(llm, &singleCaseRepo{c: testCase()})

	_, err := uc.SummarizeCase(context.Background(), "t2", "c1")
	assert.ErrorIs(t, err, domain.ErrNotFound, "dados de um tenant nunca vazam para outro")
}
