package workflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seplan-goias/tramita-api/internal/domain/entity"
	"github.com/seplan-goias/tramita-api/internal/domain/workflow"
)

func defs() []entity.StatusDef {
	return []entity.StatusDef{
		{Name: "Em Tramitação", IsFinal: false, Position: 0},
		{Name: "Em Análise", IsFinal: false, Position: 1},
		{Name: "Concluído", IsFinal: true, Position: 2},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// IsLocked
// ──────────────────────────────────────────────────────────────────────────────

func TestIsLocked_StatusNaoFinal(t *testing.T) {
	c := &entity.Case{Status: "Em Tramitação"}
	assert.False(t, workflow.IsLocked(c, defs()))
}

func TestIsLocked_StatusFinalConfigurado(t *testing.T) {
	c := &entity.Case{Status: "Concluído"}
	assert.True(t, workflow.IsLocked(c, defs()))
}

func TestIsLocked_StatusFinalSemAcento(t *testing.T) {
	// O rótulo é texto livre: "concluido" digitado sem acento deve casar com o
	// StatusDef "Concluído" e manter a trava.
	c := &entity.Case{Status: "concluido"}
	assert.True(t, workflow.IsLocked(c, defs()))
}

func TestIsLocked_EmpenhoLiquidacaoSempreTrava(t *testing.T) {
	// Status legado: trava mesmo sem nenhum StatusDef correspondente.
	c := &entity.Case{Status: "EMPENHO / LIQUIDAÇÃO"}
	assert.True(t, workflow.IsLocked(c, nil))

	c.Status = "empenho / liquidacao"
	assert.True(t, workflow.IsLocked(c, nil), "casamento ignora caixa e acentos")
}

func TestIsLocked_StatusDesconhecidoNaoTrava(t *testing.T) {
	c := &entity.Case{Status: "Status Inventado"}
	assert.False(t, workflow.IsLocked(c, defs()))
}

func TestIsLocked_ProcessoNil(t *testing.T) {
	assert.False(t, workflow.IsLocked(nil, defs()))
}

// ──────────────────────────────────────────────────────────────────────────────
// FindStatus / SameName
// ──────────────────────────────────────────────────────────────────────────────

func TestFindStatus_CasamentoNormalizado(t *testing.T) {
	got := workflow.FindStatus("  em analise ", defs())
	require.NotNil(t, got)
	assert.Equal(t, "Em Análise", got.Name)
}

func TestFindStatus_NaoConfigurado(t *testing.T) {
	assert.Nil(t, workflow.FindStatus("Arquivado", defs()))
}

func TestSameName(t *testing.T) {
	assert.True(t, workflow.SameName("Em Tramitação", "em tramitacao"))
	assert.True(t, workflow.SameName("  Concluído", "CONCLUIDO  "))
	assert.False(t, workflow.SameName("Em Análise", "Em Tramitação"))
}
