// Package analytics contém os casos de uso do painel gerencial de tramitação.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/seplan-goias/tramita-api/internal/application/dto"
	"github.com/seplan-goias/tramita-api/internal/domain/entity"
	"github.com/seplan-goias/tramita-api/internal/domain/painel"
	"github.com/seplan-goias/tramita-api/internal/domain/repository"
)

const dashboardTopN = 5 // entradas nos widgets de ranking e urgência

// DashboardUseCase monta o resumo do painel a partir do snapshot completo de
// processos do tenant. Toda a agregação é delegada ao pacote painel, que é
// puro em relação a (processos, statuses, now): rodar duas vezes sobre o
// mesmo snapshot produz exatamente o mesmo painel, esteja ele fresco ou não.
type DashboardUseCase struct {
	caseRepo   repository.CaseRepository
	statusRepo repository.StatusRepository
	now        func() time.Time
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(caseRepo repository.CaseRepository, statusRepo repository.StatusRepository) *DashboardUseCase {
	return &DashboardUseCase{caseRepo: caseRepo, statusRepo: statusRepo, now: time.Now}
}

// SetClock troca a fonte de tempo (testes).
func (uc *DashboardUseCase) SetClock(now func() time.Time) { uc.now = now }

// GroupKey chaves de agrupamento aceitas pelo ranking top-N.
const (
	GroupByType         = "type"
	GroupByAuthor       = "author"
	GroupByMunicipality = "municipality"
)

// GetSummary constrói o DashboardSummaryDTO do tenant: totais por tipo,
// histograma de status, ranking top-N pelo agrupamento pedido e lista de
// urgência. Um único time.Now() alimenta todas as agregações para que os
// widgets concordem entre si.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, tenantID, groupBy string) (*dto.DashboardSummaryDTO, error) {
	cases, defs, err := uc.snapshot(tenantID)
	if err != nil {
		return nil, err
	}
	now := uc.now()

	keyFn := painel.KeyByType
	switch groupBy {
	case GroupByAuthor:
		keyFn = painel.KeyByAuthor
	case GroupByMunicipality:
		keyFn = painel.KeyByMunicipality
	}

	totals := painel.TotalsByType(cases)
	hist := painel.StatusHistogram(cases)
	top := painel.TopN(cases, keyFn, dashboardTopN)
	wl := painel.UrgencyWorklist(cases, defs, now, dashboardTopN)

	out := &dto.DashboardSummaryDTO{
		TotalCases:    len(cases),
		OverdueCount:  wl.OverdueCount,
		CriticalCount: wl.CriticalCount,
	}
	for _, t := range totals {
		out.TotalsByType = append(out.TotalsByType, dto.TypeTotalDTO{
			Type: t.Type, Count: t.Count, Value: t.Value, Percentage: t.Percentage,
		})
	}
	for _, h := range hist {
		out.StatusHistogram = append(out.StatusHistogram, dto.StatusCountDTO{Status: h.Status, Count: h.Count})
	}
	for _, g := range top {
		out.TopGroups = append(out.TopGroups, dto.GroupTotalDTO{Key: g.Key, Count: g.Count, Value: g.Value})
	}
	for _, item := range wl.Items {
		out.Urgency = append(out.Urgency, dto.UrgencyItemDTO{
			CaseID:      item.Case.ID,
			SEI:         item.Case.SEI,
			CurrentUnit: item.Case.CurrentUnit,
			Category:    string(item.Classification.Category),
			DaysDelta:   item.Classification.DaysDelta,
		})
	}
	return out, nil
}

// GetCalendar devolve os processos não finalizados agrupados pela data de
// vencimento da última movimentação, com a pior severidade de cada dia.
func (uc *DashboardUseCase) GetCalendar(ctx context.Context, tenantID string) ([]dto.CalendarDayDTO, error) {
	cases, defs, err := uc.snapshot(tenantID)
	if err != nil {
		return nil, err
	}
	buckets := painel.CalendarBuckets(cases, defs, uc.now())
	out := make([]dto.CalendarDayDTO, 0, len(buckets))
	for _, b := range buckets {
		day := dto.CalendarDayDTO{Year: b.Year, Month: b.Month, Day: b.Day, Severity: string(b.Severity)}
		for _, c := range b.Cases {
			day.CaseIDs = append(day.CaseIDs, c.ID)
		}
		out = append(out, day)
	}
	return out, nil
}

func (uc *DashboardUseCase) snapshot(tenantID string) ([]*entity.Case, []entity.StatusDef, error) {
	cases, err := uc.caseRepo.ListAllByTenant(tenantID)
	if err != nil {
		return nil, nil, fmt.Errorf("painel: carregar processos: %w", err)
	}
	defs, err := uc.statusRepo.ListByTenant(tenantID)
	if err != nil {
		return nil, nil, fmt.Errorf("painel: carregar statuses: %w", err)
	}
	return cases, defs, nil
}
