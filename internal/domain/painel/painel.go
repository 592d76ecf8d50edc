// Package painel agrega o conjunto de processos do tenant para o painel
// gerencial: totais por tipo, histograma de status, rankings top-N, lista de
// urgência e calendário de prazos. Todas as funções são puras em relação aos
// argumentos mais um único instante "now" — sem cache mutável entre chamadas —
// para que execuções repetidas sobre o mesmo snapshot produzam o mesmo painel.
package painel

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/seplan-goias/tramita-api/internal/domain/entity"
	"github.com/seplan-goias/tramita-api/internal/domain/sla"
	"github.com/seplan-goias/tramita-api/internal/domain/workflow"
)

// TypeTotal total financeiro e contagem de um tipo de emenda.
type TypeTotal struct {
	Type       string
	Count      int
	Value      decimal.Decimal
	Percentage decimal.Decimal // participação no total da carteira, 0–100
}

// StatusCount contagem de processos em um status.
type StatusCount struct {
	Status string
	Count  int
}

// GroupTotal total de um agrupamento (tipo, autor ou município).
type GroupTotal struct {
	Key   string
	Count int
	Value decimal.Decimal
}

// UrgencyItem um processo crítico ou atrasado na lista de urgência.
type UrgencyItem struct {
	Case           *entity.Case
	Classification sla.Classification
}

// Worklist lista de urgência: os itens mais urgentes primeiro, limitada pelo
// chamador, mais as contagens totais de cada categoria.
type Worklist struct {
	Items         []UrgencyItem
	OverdueCount  int
	CriticalCount int
}

// DayBucket processos agrupados pela data de vencimento da última movimentação.
type DayBucket struct {
	Year, Month, Day int
	Cases            []*entity.Case
	Severity         sla.Category // pior severidade entre os processos do dia
}

// TotalsByType soma valor e contagem por tipo de emenda e calcula a
// participação percentual. Total zero é tratado como 1 para evitar divisão
// por zero (carteira vazia → percentuais zero).
func TotalsByType(cases []*entity.Case) []TypeTotal {
	byType := map[string]*TypeTotal{}
	var order []string
	grand := decimal.Zero
	for _, c := range cases {
		t, ok := byType[c.Type]
		if !ok {
			t = &TypeTotal{Type: c.Type, Value: decimal.Zero}
			byType[c.Type] = t
			order = append(order, c.Type)
		}
		t.Count++
		t.Value = t.Value.Add(c.Value)
		grand = grand.Add(c.Value)
	}

	divisor := grand
	if divisor.IsZero() {
		divisor = decimal.NewFromInt(1)
	}
	out := make([]TypeTotal, 0, len(order))
	for _, name := range order {
		t := byType[name]
		t.Percentage = t.Value.Div(divisor).Mul(decimal.NewFromInt(100)).Round(2)
		out = append(out, *t)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value.GreaterThan(out[j].Value) })
	return out
}

// StatusHistogram contagem de processos por status. Statuses configurados sem
// nenhum processo ficam fora do gráfico (mas seguem na configuração).
func StatusHistogram(cases []*entity.Case) []StatusCount {
	counts := map[string]int{}
	var order []string
	for _, c := range cases {
		if _, ok := counts[c.Status]; !ok {
			order = append(order, c.Status)
		}
		counts[c.Status]++
	}
	out := make([]StatusCount, 0, len(order))
	for _, s := range order {
		out = append(out, StatusCount{Status: s, Count: counts[s]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// Chaves de agrupamento para TopN.
func KeyByType(c *entity.Case) string         { return c.Type }
func KeyByAuthor(c *entity.Case) string       { return c.AuthorName }
func KeyByMunicipality(c *entity.Case) string { return c.Municipality }

// TopN soma valor e contagem por chave, ordena por valor decrescente e corta
// em n entradas.
func TopN(cases []*entity.Case, keyFn func(*entity.Case) string, n int) []GroupTotal {
	byKey := map[string]*GroupTotal{}
	var order []string
	for _, c := range cases {
		k := keyFn(c)
		g, ok := byKey[k]
		if !ok {
			g = &GroupTotal{Key: k, Value: decimal.Zero}
			byKey[k] = g
			order = append(order, k)
		}
		g.Count++
		g.Value = g.Value.Add(c.Value)
	}
	out := make([]GroupTotal, 0, len(order))
	for _, k := range order {
		out = append(out, *byKey[k])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value.GreaterThan(out[j].Value) })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// UrgencyWorklist varre os processos não finalizados, classifica a última
// movimentação de cada um e devolve os críticos e atrasados ordenados do mais
// urgente para o menos (saldo de dias crescente: o maior atraso vem primeiro).
// Processos sem movimentação aguardam a primeira tramitação e ficam fora da
// lista. limit limita os itens expostos; as contagens cobrem o conjunto inteiro.
func UrgencyWorklist(cases []*entity.Case, statusDefs []entity.StatusDef, now time.Time, limit int) Worklist {
	var wl Worklist
	for _, c := range cases {
		if workflow.IsLocked(c, statusDefs) {
			continue
		}
		last := c.LastMovement()
		if last == nil {
			continue // aguardando primeira tramitação
		}
		cls := sla.Classify(last.Deadline, last.DateOut, now)
		switch cls.Category {
		case sla.CategoryOverdue:
			wl.OverdueCount++
		case sla.CategoryCritical:
			wl.CriticalCount++
		default:
			continue
		}
		wl.Items = append(wl.Items, UrgencyItem{Case: c, Classification: cls})
	}
	sort.SliceStable(wl.Items, func(i, j int) bool {
		return wl.Items[i].Classification.DaysDelta < wl.Items[j].Classification.DaysDelta
	})
	if limit > 0 && len(wl.Items) > limit {
		wl.Items = wl.Items[:limit]
	}
	return wl
}

// CalendarBuckets indexa os processos não finalizados pela data de vencimento
// da última movimentação (granularidade de dia). A severidade exibida do dia
// é a pior entre seus processos: ATRASADO > CRITICO > NO_PRAZO.
func CalendarBuckets(cases []*entity.Case, statusDefs []entity.StatusDef, now time.Time) []DayBucket {
	type key struct{ y, m, d int }
	byDay := map[key]*DayBucket{}
	var order []key
	for _, c := range cases {
		if workflow.IsLocked(c, statusDefs) {
			continue
		}
		last := c.LastMovement()
		if last == nil {
			continue
		}
		y, m, d := last.Deadline.Date()
		k := key{y, int(m), d}
		b, ok := byDay[k]
		if !ok {
			b = &DayBucket{Year: y, Month: int(m), Day: d, Severity: sla.CategoryOnTime}
			byDay[k] = b
			order = append(order, k)
		}
		b.Cases = append(b.Cases, c)
		cls := sla.Classify(last.Deadline, last.DateOut, now)
		if severityRank(cls.Category) > severityRank(b.Severity) {
			b.Severity = cls.Category
		}
	}
	sort.Slice(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if a.y != b.y {
			return a.y < b.y
		}
		if a.m != b.m {
			return a.m < b.m
		}
		return a.d < b.d
	})
	out := make([]DayBucket, 0, len(order))
	for _, k := range order {
		out = append(out, *byDay[k])
	}
	return out
}

func severityRank(c sla.Category) int {
	switch c {
	case sla.CategoryOverdue:
		return 2
	case sla.CategoryCritical:
		return 1
	}
	return 0
}
