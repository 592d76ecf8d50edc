package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seplan-goias/tramita-api/internal/application/analytics"
	"github.com/seplan-goias/tramita-api/internal/domain/entity"
)

var testNow = time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC)

type fakeCaseRepo struct{ cases []*entity.Case }

func (r *fakeCaseRepo) Create(c *entity.Case) error           { return nil }
func (r *fakeCaseRepo) GetByID(id string) (*entity.Case, error) { return nil, nil }
func (r *fakeCaseRepo) Update(c *entity.Case) error           { return nil }
func (r *fakeCaseRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Case, error) {
	return r.cases, nil
}
func (r *fakeCaseRepo) ListAllByTenant(tenantID string) ([]*entity.Case, error) {
	return r.cases, nil
}
func (r *fakeCaseRepo) Delete(id string) error { return nil }

type fakeStatusRepo struct{ defs []entity.StatusDef }

func (r *fakeStatusRepo) Create(d *entity.StatusDef) error            { return nil }
func (r *fakeStatusRepo) GetByID(id string) (*entity.StatusDef, error) { return nil, nil }
func (r *fakeStatusRepo) Update(d *entity.StatusDef) error            { return nil }
func (r *fakeStatusRepo) ListByTenant(tenantID string) ([]entity.StatusDef, error) {
	return r.defs, nil
}
func (r *fakeStatusRepo) Delete(id string) error { return nil }

func openCase(id, typ, municipio string, value int64, deadlineDays int) *entity.Case {
	return &entity.Case{
		ID: id, SEI: "SEI-" + id, Type: typ, Status: "Em Tramitação",
		Municipality: municipio, AuthorName: "Dep. " + id,
		Value: decimal.NewFromInt(value),
		Movements: []entity.Movement{{
			ToUnit:   "SEPLAN",
			DateIn:   testNow.AddDate(0, 0, deadlineDays-5),
			Deadline: testNow.AddDate(0, 0, deadlineDays),
		}},
	}
}

func newDashboard(cases ...*entity.Case) *analytics.DashboardUseCase {
	uc := analytics.NewDashboardUseCase(
		&fakeCaseRepo{cases: cases},
		&fakeStatusRepo{defs: []entity.StatusDef{
			{Name: "Em Tramitação"},
			{Name: "Concluído", IsFinal: true},
		}},
	)
	uc.SetClock(func() time.Time { return testNow })
	return uc
}

func TestGetSummary_WidgetsConcordamEntreSi(t *testing.T) {
	uc := newDashboard(
		openCase("a", entity.CaseTypeImpositiva, "Goiânia", 600, 10),
		openCase("b", entity.CaseTypeImpositiva, "Anápolis", 300, -3),
		openCase("c", entity.CaseTypeRecursoProprio, "Goiânia", 100, 1),
	)

	out, err := uc.GetSummary(context.Background(), "t1", analytics.GroupByType)
	require.NoError(t, err)

	assert.Equal(t, 3, out.TotalCases)
	assert.Equal(t, 1, out.OverdueCount)
	assert.Equal(t, 1, out.CriticalCount)

	require.Len(t, out.TotalsByType, 2)
	assert.Equal(t, entity.CaseTypeImpositiva, out.TotalsByType[0].Type)

	require.Len(t, out.Urgency, 2)
	assert.Equal(t, "b", out.Urgency[0].CaseID, "maior atraso primeiro")
	assert.Equal(t, -3, out.Urgency[0].DaysDelta)
	assert.Equal(t, "c", out.Urgency[1].CaseID)
}

func TestGetSummary_AgrupamentoPorMunicipio(t *testing.T) {
	uc := newDashboard(
		openCase("a", entity.CaseTypeImpositiva, "Goiânia", 600, 10),
		openCase("b", entity.CaseTypeImpositiva, "Anápolis", 900, 10),
	)
	out, err := uc.GetSummary(context.Background(), "t1", analytics.GroupByMunicipality)
	require.NoError(t, err)
	require.Len(t, out.TopGroups, 2)
	assert.Equal(t, "Anápolis", out.TopGroups[0].Key)
}

func TestGetSummary_CarteiraVazia(t *testing.T) {
	uc := newDashboard()
	out, err := uc.GetSummary(context.Background(), "t1", analytics.GroupByType)
	require.NoError(t, err)
	assert.Zero(t, out.TotalCases)
	assert.Empty(t, out.Urgency)
}

func TestGetCalendar_OrdemCronologicaESeveridade(t *testing.T) {
	uc := newDashboard(
		openCase("a", entity.CaseTypeImpositiva, "Goiânia", 100, 5),
		openCase("b", entity.CaseTypeImpositiva, "Goiânia", 100, -2),
	)
	out, err := uc.GetCalendar(context.Background(), "t1")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "ATRASADO", out[0].Severity, "dia vencido vem primeiro e com a pior severidade")
	assert.Equal(t, []string{"b"}, out[0].CaseIDs)
	assert.Equal(t, "NO_PRAZO", out[1].Severity)
}
