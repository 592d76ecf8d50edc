// Package sla concentra o cálculo de prazos e a classificação de urgência das
// movimentações. Todas as funções são puras: mesmos argumentos, mesmo
// resultado, sem estado escondido. O painel, o calendário e o selo de SLA do
// processo chamam exatamente as mesmas funções, então os três concordam
// bit a bit sobre a urgência.
package sla

import "time"

// Category classificação de urgência de uma movimentação.
type Category string

const (
	CategoryOnTime   Category = "NO_PRAZO"
	CategoryCritical Category = "CRITICO"
	CategoryOverdue  Category = "ATRASADO"
)

// criticalWindow janela antes do prazo em que a movimentação aberta vira crítica.
const criticalWindow = 48 * time.Hour

// Classification resultado da classificação de uma movimentação.
// DaysDelta é o saldo de dias com sinal: negativo = dias de atraso,
// positivo/zero = dias até o prazo. Ordenar a lista de urgência por
// DaysDelta crescente coloca o maior atraso primeiro.
type Classification struct {
	Category  Category
	DaysDelta int
}

// ComputeDeadline devolve dateIn + slaDays em dias corridos.
// Não há ajuste de dias úteis: fins de semana e feriados contam
// (comportamento herdado do fluxo em produção; ver DESIGN.md).
func ComputeDeadline(dateIn time.Time, slaDays int) time.Time {
	return dateIn.AddDate(0, 0, slaDays)
}

// Classify classifica a urgência de uma movimentação dado o prazo, a data de
// saída (nil = ainda na unidade) e o instante de referência.
//
//   - referenceEnd = dateOut quando preenchido, senão now;
//   - referenceEnd > deadline           → ATRASADO, atraso em dias inteiros;
//   - aberta e deadline-now <= 48 horas → CRITICO;
//   - caso contrário                    → NO_PRAZO.
func Classify(deadline time.Time, dateOut *time.Time, now time.Time) Classification {
	referenceEnd := now
	if dateOut != nil {
		referenceEnd = *dateOut
	}

	if referenceEnd.After(deadline) {
		return Classification{
			Category:  CategoryOverdue,
			DaysDelta: -ceilDays(referenceEnd.Sub(deadline)),
		}
	}

	remaining := deadline.Sub(now)
	if dateOut == nil && remaining <= criticalWindow {
		return Classification{Category: CategoryCritical, DaysDelta: floorDays(remaining)}
	}
	return Classification{Category: CategoryOnTime, DaysDelta: floorDays(remaining)}
}

// DaysSpent dias inteiros entre entrada e saída, nunca negativo.
// Só é autoritativo quando as duas datas estão preenchidas.
func DaysSpent(dateIn, dateOut time.Time) int {
	d := ceilDays(dateOut.Sub(dateIn))
	if d < 0 {
		return 0
	}
	return d
}

// ceilDays arredonda uma duração para cima em dias inteiros.
func ceilDays(d time.Duration) int {
	day := 24 * time.Hour
	n := d / day
	if d%day > 0 {
		n++
	}
	return int(n)
}

// floorDays arredonda uma duração para baixo em dias inteiros.
func floorDays(d time.Duration) int {
	return int(d / (24 * time.Hour))
}
