package sla_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/seplan-goias/tramita-api/internal/domain/sla"
)

// base de referência fixa para todos os cenários (meio-dia evita surpresas de
// arredondamento em dias inteiros).
var dateIn = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func at(days int) time.Time { return dateIn.AddDate(0, 0, days) }

// ──────────────────────────────────────────────────────────────────────────────
// ComputeDeadline
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeDeadline_DiasCorridos(t *testing.T) {
	deadline := sla.ComputeDeadline(dateIn, 5)
	assert.Equal(t, at(5), deadline, "prazo = entrada + N dias corridos")
}

func TestComputeDeadline_AtravessaFimDeSemana(t *testing.T) {
	// 2025-03-14 é sexta; +3 dias corridos cai na segunda, sem pular o fim de semana.
	sexta := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	deadline := sla.ComputeDeadline(sexta, 3)
	assert.Equal(t, time.Monday, deadline.Weekday(), "fins de semana contam no prazo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Classify — movimentação aberta
// ──────────────────────────────────────────────────────────────────────────────

func TestClassify_AbertaForaDaJanela_NoPrazo(t *testing.T) {
	deadline := at(5)
	got := sla.Classify(deadline, nil, at(2)) // faltam 3 dias, fora da janela de 48h
	assert.Equal(t, sla.CategoryOnTime, got.Category)
	assert.Equal(t, 3, got.DaysDelta, "saldo positivo = dias até o prazo")
}

func TestClassify_AbertaDentroDaJanela_Critico(t *testing.T) {
	deadline := at(5)
	got := sla.Classify(deadline, nil, at(4)) // faltam 24h <= 48h
	assert.Equal(t, sla.CategoryCritical, got.Category)
	assert.Equal(t, 1, got.DaysDelta)
}

func TestClassify_AbertaNoExatoPrazo_Critico(t *testing.T) {
	deadline := at(5)
	got := sla.Classify(deadline, nil, deadline) // saldo zero ainda não é atraso
	assert.Equal(t, sla.CategoryCritical, got.Category)
	assert.Equal(t, 0, got.DaysDelta)
}

func TestClassify_AbertaDepoisDoPrazo_Atrasada(t *testing.T) {
	deadline := at(5)
	got := sla.Classify(deadline, nil, at(6))
	assert.Equal(t, sla.CategoryOverdue, got.Category)
	assert.Equal(t, -1, got.DaysDelta, "saldo negativo = dias de atraso")
}

func TestClassify_AtrasoParcialArredondaParaCima(t *testing.T) {
	deadline := at(5)
	now := deadline.Add(6 * time.Hour) // 6h depois do prazo já conta como 1 dia
	got := sla.Classify(deadline, nil, now)
	assert.Equal(t, sla.CategoryOverdue, got.Category)
	assert.Equal(t, -1, got.DaysDelta)
}

// ──────────────────────────────────────────────────────────────────────────────
// Classify — movimentação encerrada (DateOut preenchido)
// ──────────────────────────────────────────────────────────────────────────────

func TestClassify_EncerradaAntesDoPrazo_NoPrazo(t *testing.T) {
	deadline := at(5)
	out := at(3)
	got := sla.Classify(deadline, &out, at(4))
	assert.Equal(t, sla.CategoryOnTime, got.Category, "saída antes do prazo nunca é crítica")
}

func TestClassify_EncerradaDepoisDoPrazo_Atrasada(t *testing.T) {
	deadline := at(5)
	out := at(8)
	got := sla.Classify(deadline, &out, at(20)) // now irrelevante: vale a data de saída
	assert.Equal(t, sla.CategoryOverdue, got.Category)
	assert.Equal(t, -3, got.DaysDelta)
}

func TestClassify_EncerradaNaJanelaNaoViraCritica(t *testing.T) {
	// A janela de 48h só se aplica a movimentações abertas: quem já saiu da
	// unidade não está mais "quase estourando".
	deadline := at(5)
	out := at(4)
	got := sla.Classify(deadline, &out, at(4))
	assert.Equal(t, sla.CategoryOnTime, got.Category)
}

// ──────────────────────────────────────────────────────────────────────────────
// DaysSpent
// ──────────────────────────────────────────────────────────────────────────────

func TestDaysSpent_DiasInteiros(t *testing.T) {
	assert.Equal(t, 3, sla.DaysSpent(dateIn, at(3)))
}

func TestDaysSpent_FracaoArredondaParaCima(t *testing.T) {
	assert.Equal(t, 1, sla.DaysSpent(dateIn, dateIn.Add(4*time.Hour)))
}

func TestDaysSpent_SaidaAntesDaEntrada_Zero(t *testing.T) {
	assert.Equal(t, 0, sla.DaysSpent(dateIn, dateIn.Add(-24*time.Hour)), "nunca negativo")
}

func TestDaysSpent_MesmoInstante_Zero(t *testing.T) {
	assert.Equal(t, 0, sla.DaysSpent(dateIn, dateIn))
}
