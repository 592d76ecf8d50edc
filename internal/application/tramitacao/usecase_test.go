package tramitacao_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seplan-goias/tramita-api/internal/application/tramitacao"
	"github.com/seplan-goias/tramita-api/internal/domain"
	"github.com/seplan-goias/tramita-api/internal/domain/entity"
	"github.com/seplan-goias/tramita-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

const tenant = "t1"

var (
	testNow      = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	errStoreDown = errors.New("store indisponível")
)

type memStore struct {
	cases      map[string]*entity.Case
	units      map[string]*entity.Unit
	defs       []entity.StatusDef
	audit      []*entity.AuditEntry
	failUpdate bool
}

func newMemStore() *memStore {
	return &memStore{
		cases: map[string]*entity.Case{},
		units: map[string]*entity.Unit{},
		defs: []entity.StatusDef{
			{Name: "Em Tramitação", Position: 0},
			{Name: "Em Análise", Position: 1},
			{Name: "Concluído", IsFinal: true, Position: 2},
		},
	}
}

func storedClone(c *entity.Case) *entity.Case {
	out := *c
	out.Movements = make([]entity.Movement, len(c.Movements))
	copy(out.Movements, c.Movements)
	return &out
}

type memCaseRepo struct{ s *memStore }

func (r *memCaseRepo) Create(c *entity.Case) error {
	r.s.cases[c.ID] = storedClone(c)
	return nil
}

func (r *memCaseRepo) GetByID(id string) (*entity.Case, error) {
	c, ok := r.s.cases[id]
	if !ok {
		return nil, nil
	}
	return storedClone(c), nil
}

func (r *memCaseRepo) Update(c *entity.Case) error {
	if r.s.failUpdate {
		return errStoreDown
	}
	if _, ok := r.s.cases[c.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.cases[c.ID] = storedClone(c)
	return nil
}

func (r *memCaseRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Case, error) {
	return r.ListAllByTenant(tenantID)
}

func (r *memCaseRepo) ListAllByTenant(tenantID string) ([]*entity.Case, error) {
	var out []*entity.Case
	for _, c := range r.s.cases {
		if c.TenantID == tenantID {
			out = append(out, storedClone(c))
		}
	}
	return out, nil
}

func (r *memCaseRepo) Delete(id string) error {
	delete(r.s.cases, id)
	return nil
}

type memUnitRepo struct{ s *memStore }

func (r *memUnitRepo) Create(u *entity.Unit) error { r.s.units[u.ID] = u; return nil }
func (r *memUnitRepo) GetByID(id string) (*entity.Unit, error) {
	return r.s.units[id], nil
}
func (r *memUnitRepo) GetByName(tenantID, name string) (*entity.Unit, error) {
	for _, u := range r.s.units {
		if u.TenantID == tenantID && u.Name == name {
			return u, nil
		}
	}
	return nil, nil
}
func (r *memUnitRepo) Update(u *entity.Unit) error { r.s.units[u.ID] = u; return nil }
func (r *memUnitRepo) ListByTenant(tenantID string) ([]*entity.Unit, error) {
	var out []*entity.Unit
	for _, u := range r.s.units {
		if u.TenantID == tenantID {
			out = append(out, u)
		}
	}
	return out, nil
}
func (r *memUnitRepo) Delete(id string) error { delete(r.s.units, id); return nil }

type memStatusRepo struct{ s *memStore }

func (r *memStatusRepo) Create(d *entity.StatusDef) error { r.s.defs = append(r.s.defs, *d); return nil }
func (r *memStatusRepo) GetByID(id string) (*entity.StatusDef, error) {
	for i := range r.s.defs {
		if r.s.defs[i].ID == id {
			return &r.s.defs[i], nil
		}
	}
	return nil, nil
}
func (r *memStatusRepo) Update(d *entity.StatusDef) error { return nil }
func (r *memStatusRepo) ListByTenant(tenantID string) ([]entity.StatusDef, error) {
	return r.s.defs, nil
}
func (r *memStatusRepo) Delete(id string) error { return nil }

type memAuditRepo struct{ s *memStore }

func (r *memAuditRepo) Append(e *entity.AuditEntry) error {
	r.s.audit = append(r.s.audit, e)
	return nil
}
func (r *memAuditRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.AuditEntry, error) {
	return r.s.audit, nil
}

// memTx executa o callback direto sobre os fakes, sem transação real.
type memTx struct{ s *memStore }

func (t *memTx) Run(ctx context.Context, fn func(repository.CaseRepository, repository.AuditRepository) error) error {
	return fn(&memCaseRepo{t.s}, &memAuditRepo{t.s})
}

func newUseCase(s *memStore) *tramitacao.UseCase {
	uc := tramitacao.NewUseCase(&memTx{s}, &memCaseRepo{s}, &memUnitRepo{s}, &memStatusRepo{s})
	uc.SetClock(func() time.Time { return testNow })
	return uc
}

func seedUnit(s *memStore, id, name string, slaDays int) {
	s.units[id] = &entity.Unit{ID: id, TenantID: tenant, Name: name, DefaultSLADays: slaDays, AnalysisType: "Técnica"}
}

func seedCase(s *memStore, id, status string) *entity.Case {
	c := &entity.Case{
		ID:           id,
		TenantID:     tenant,
		SEI:          "2025.0001." + id,
		Type:         entity.CaseTypeImpositiva,
		Value:        decimal.NewFromInt(1000),
		Municipality: "Goiânia",
		Object:       "Reforma de escola",
		Status:       status,
		Movements:    []entity.Movement{},
	}
	s.cases[id] = c
	return c
}

var actor = tramitacao.Actor{ID: "u1", Name: "Maria"}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_CamposObrigatorios(t *testing.T) {
	uc := newUseCase(newMemStore())
	base := tramitacao.CreateInput{
		TenantID: tenant, Actor: actor,
		SEI: "2025.0001.001", Type: entity.CaseTypeImpositiva,
		Value: decimal.NewFromInt(100), Municipality: "Goiânia", Object: "Obra",
	}

	semSEI := base
	semSEI.SEI = "  "
	_, err := uc.Create(context.Background(), semSEI)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	negativo := base
	negativo.Value = decimal.NewFromInt(-1)
	_, err = uc.Create(context.Background(), negativo)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	tipoInvalido := base
	tipoInvalido.Type = "Emenda Qualquer"
	_, err = uc.Create(context.Background(), tipoInvalido)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_StatusVazioUsaPrimeiroConfigurado(t *testing.T) {
	s := newMemStore()
	uc := newUseCase(s)
	c, err := uc.Create(context.Background(), tramitacao.CreateInput{
		TenantID: tenant, Actor: actor,
		SEI: "2025.0001.001", Type: entity.CaseTypeImpositiva,
		Value: decimal.NewFromInt(100), Municipality: "Goiânia", Object: "Obra",
	})
	require.NoError(t, err)
	assert.Equal(t, "Em Tramitação", c.Status)
	assert.Empty(t, c.Movements, "processo novo aguarda a primeira tramitação")

	require.Len(t, s.audit, 1)
	assert.Equal(t, entity.AuditActionCreate, s.audit[0].Action)
	assert.Equal(t, entity.AuditSeverityInfo, s.audit[0].Severity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transition
// ──────────────────────────────────────────────────────────────────────────────

func TestTransition_SemDestino(t *testing.T) {
	uc := newUseCase(newMemStore())
	_, err := uc.Transition(context.Background(), tramitacao.TransitionInput{
		TenantID: tenant, Actor: actor, CaseID: "c1",
	})
	assert.ErrorIs(t, err, domain.ErrNoDestination)
}

func TestTransition_MovimentacaoUnica(t *testing.T) {
	s := newMemStore()
	seedUnit(s, "un1", "SEPLAN", 5)
	seedCase(s, "c1", "Em Tramitação")
	uc := newUseCase(s)

	got, err := uc.Transition(context.Background(), tramitacao.TransitionInput{
		TenantID: tenant, Actor: actor, CaseID: "c1",
		DestinationUnitIDs: []string{"un1"},
		NewStatus:          "Em Análise",
		Priority:           entity.PriorityNormal,
		Remarks:            "para análise técnica",
	})
	require.NoError(t, err)

	require.Len(t, got.Movements, 1)
	m := got.Movements[0]
	assert.Equal(t, "SEPLAN", m.ToUnit)
	assert.Equal(t, "", m.FromUnit, "primeira movimentação parte do vazio")
	assert.Equal(t, testNow, m.DateIn)
	assert.Equal(t, testNow.AddDate(0, 0, 5), m.Deadline, "prazo herdado da unidade")
	assert.Nil(t, m.DateOut)
	assert.Equal(t, "Maria", m.HandledBy)
	assert.Equal(t, "para análise técnica", m.Remarks)
	assert.Equal(t, "Técnica", m.AnalysisType)

	assert.Equal(t, "SEPLAN", got.CurrentUnit)
	assert.Equal(t, "Em Análise", got.Status)

	require.Len(t, s.audit, 1)
	assert.Equal(t, entity.AuditActionMove, s.audit[0].Action)
}

func TestTransition_FanOutCompartilhaInstante(t *testing.T) {
	s := newMemStore()
	seedUnit(s, "un1", "SEPLAN", 5)
	seedUnit(s, "un2", "PGE", 10)
	seedCase(s, "c1", "Em Tramitação")
	uc := newUseCase(s)

	got, err := uc.Transition(context.Background(), tramitacao.TransitionInput{
		TenantID: tenant, Actor: actor, CaseID: "c1",
		DestinationUnitIDs: []string{"un1", "un2"},
		NewStatus:          "Em Análise",
	})
	require.NoError(t, err)

	require.Len(t, got.Movements, 2)
	assert.Equal(t, got.Movements[0].DateIn, got.Movements[1].DateIn, "fan-out compartilha o instante de entrada")
	assert.Equal(t, testNow.AddDate(0, 0, 5), got.Movements[0].Deadline)
	assert.Equal(t, testNow.AddDate(0, 0, 10), got.Movements[1].Deadline, "cada destino com seu próprio prazo")
	assert.Equal(t, "SEPLAN / PGE", got.CurrentUnit)
}

func TestTransition_PrefixoDePrioridade(t *testing.T) {
	s := newMemStore()
	seedUnit(s, "un1", "SEPLAN", 5)
	seedCase(s, "c1", "Em Tramitação")
	uc := newUseCase(s)

	got, err := uc.Transition(context.Background(), tramitacao.TransitionInput{
		TenantID: tenant, Actor: actor, CaseID: "c1",
		DestinationUnitIDs: []string{"un1"},
		NewStatus:          "Em Análise",
		Priority:           entity.PriorityUrgente,
		Remarks:            "prazo legal",
	})
	require.NoError(t, err)
	assert.Equal(t, "[URGENTE] prazo legal", got.Movements[0].Remarks)
}

func TestTransition_ProcessoTravadoRecusa(t *testing.T) {
	s := newMemStore()
	seedUnit(s, "un1", "SEPLAN", 5)
	seedCase(s, "c1", "Concluído")
	uc := newUseCase(s)

	_, err := uc.Transition(context.Background(), tramitacao.TransitionInput{
		TenantID: tenant, Actor: actor, CaseID: "c1",
		DestinationUnitIDs: []string{"un1"},
		NewStatus:          "Em Análise",
	})
	assert.ErrorIs(t, err, domain.ErrCaseLocked)
	assert.Empty(t, s.cases["c1"].Movements, "nada gravado")
	assert.Empty(t, s.audit, "tentativa recusada não tramita")
}

func TestTransition_TravaMonotonica(t *testing.T) {
	// Tramitar PARA o status legado de empenho funciona uma vez; depois disso
	// o processo está travado para sempre pelo fluxo normal.
	s := newMemStore()
	seedUnit(s, "un1", "SEPLAN", 5)
	seedCase(s, "c1", "Em Tramitação")
	uc := newUseCase(s)

	_, err := uc.Transition(context.Background(), tramitacao.TransitionInput{
		TenantID: tenant, Actor: actor, CaseID: "c1",
		DestinationUnitIDs: []string{"un1"},
		NewStatus:          "EMPENHO / LIQUIDAÇÃO",
	})
	require.NoError(t, err, "entrar no status legado é permitido")

	_, err = uc.Transition(context.Background(), tramitacao.TransitionInput{
		TenantID: tenant, Actor: actor, CaseID: "c1",
		DestinationUnitIDs: []string{"un1"},
		NewStatus:          "Em Análise",
	})
	assert.ErrorIs(t, err, domain.ErrCaseLocked, "depois de travado, nenhuma tramitação passa")
}

func TestTransition_StatusNaoConfigurado(t *testing.T) {
	s := newMemStore()
	seedUnit(s, "un1", "SEPLAN", 5)
	seedCase(s, "c1", "Em Tramitação")
	uc := newUseCase(s)

	_, err := uc.Transition(context.Background(), tramitacao.TransitionInput{
		TenantID: tenant, Actor: actor, CaseID: "c1",
		DestinationUnitIDs: []string{"un1"},
		NewStatus:          "Status Inventado",
	})
	assert.ErrorIs(t, err, domain.ErrUnknownStatus)
}

func TestTransition_FalhaDoStoreNaoCorrompeEstado(t *testing.T) {
	s := newMemStore()
	seedUnit(s, "un1", "SEPLAN", 5)
	seedCase(s, "c1", "Em Tramitação")
	s.failUpdate = true
	uc := newUseCase(s)

	_, err := uc.Transition(context.Background(), tramitacao.TransitionInput{
		TenantID: tenant, Actor: actor, CaseID: "c1",
		DestinationUnitIDs: []string{"un1"},
		NewStatus:          "Em Análise",
	})
	require.ErrorIs(t, err, errStoreDown)

	stored := s.cases["c1"]
	assert.Empty(t, stored.Movements, "falha de escrita não deixa movimentação fantasma")
	assert.Equal(t, "Em Tramitação", stored.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_ExigeJustificativa(t *testing.T) {
	s := newMemStore()
	seedCase(s, "c1", "Em Tramitação")
	uc := newUseCase(s)

	err := uc.Delete(context.Background(), tenant, actor, "c1", "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyJustification)
	assert.Contains(t, s.cases, "c1")
}

func TestDelete_AuditaComSeveridadeCritica(t *testing.T) {
	s := newMemStore()
	seedCase(s, "c1", "Em Tramitação")
	uc := newUseCase(s)

	err := uc.Delete(context.Background(), tenant, actor, "c1", "duplicidade de cadastro")
	require.NoError(t, err)
	assert.NotContains(t, s.cases, "c1")

	require.Len(t, s.audit, 1)
	assert.Equal(t, entity.AuditActionDelete, s.audit[0].Action)
	assert.Equal(t, entity.AuditSeverityCritical, s.audit[0].Severity)
	assert.Contains(t, s.audit[0].Details, "duplicidade de cadastro", "justificativa preservada na trilha")
}

func TestDelete_ProcessoTravadoRecusa(t *testing.T) {
	s := newMemStore()
	seedCase(s, "c1", "Concluído")
	uc := newUseCase(s)

	err := uc.Delete(context.Background(), tenant, actor, "c1", "limpeza de base")
	assert.ErrorIs(t, err, domain.ErrCaseLocked)
	assert.Contains(t, s.cases, "c1", "processo em status final permanece no conjunto")
	assert.Empty(t, s.audit, "tentativa recusada não audita exclusão")
}

// ──────────────────────────────────────────────────────────────────────────────
// RetroactiveEdit
// ──────────────────────────────────────────────────────────────────────────────

func TestRetroactiveEdit_HistoricoVazio(t *testing.T) {
	s := newMemStore()
	seedCase(s, "c1", "Em Tramitação")
	uc := newUseCase(s)

	_, err := uc.RetroactiveEdit(context.Background(), tramitacao.RetroactiveEditInput{
		TenantID: tenant, Actor: actor, CaseID: "c1",
	})
	assert.ErrorIs(t, err, domain.ErrNoMovements)
}

func TestRetroactiveEdit_RecalculaPrazoEDias(t *testing.T) {
	s := newMemStore()
	seedUnit(s, "un1", "SEPLAN", 5)
	seedCase(s, "c1", "Em Tramitação")
	uc := newUseCase(s)

	in := testNow.AddDate(0, 0, -10)
	out := testNow.AddDate(0, 0, -7)
	got, err := uc.RetroactiveEdit(context.Background(), tramitacao.RetroactiveEditInput{
		TenantID: tenant, Actor: actor, CaseID: "c1",
		Movements: []tramitacao.MovementEdit{
			{ToUnit: "SEPLAN", DateIn: in, DateOut: &out, HandledBy: "João"},
			{ToUnit: "Unidade Extinta", DateIn: out, FromUnit: "SEPLAN"},
		},
	})
	require.NoError(t, err)

	require.Len(t, got.Movements, 2)
	assert.Equal(t, in.AddDate(0, 0, 5), got.Movements[0].Deadline, "prazo recalculado pela configuração atual da unidade")
	assert.Equal(t, 3, got.Movements[0].DaysSpent)
	assert.Equal(t, "Técnica", got.Movements[0].AnalysisType)

	assert.True(t, got.Movements[1].Deadline.IsZero(), "unidade desconhecida fica sem prazo recalculado")
	assert.Equal(t, "Unidade Extinta", got.CurrentUnit, "unidade atual = destino da última movimentação")

	require.Len(t, s.audit, 1)
	assert.Equal(t, entity.AuditSeverityWarn, s.audit[0].Severity, "edição retroativa audita no mínimo como WARN")
}

func TestRetroactiveEdit_DatasInvalidas(t *testing.T) {
	s := newMemStore()
	seedCase(s, "c1", "Em Tramitação")
	uc := newUseCase(s)

	in := testNow
	out := testNow.AddDate(0, 0, -1)
	_, err := uc.RetroactiveEdit(context.Background(), tramitacao.RetroactiveEditInput{
		TenantID: tenant, Actor: actor, CaseID: "c1",
		Movements: []tramitacao.MovementEdit{{ToUnit: "SEPLAN", DateIn: in, DateOut: &out}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "saída antes da entrada")
}

func TestRetroactiveEdit_ProcessoTravadoExigeConfirmacao(t *testing.T) {
	s := newMemStore()
	seedCase(s, "c1", "Concluído")
	uc := newUseCase(s)

	edit := tramitacao.RetroactiveEditInput{
		TenantID: tenant, Actor: actor, CaseID: "c1",
		Movements: []tramitacao.MovementEdit{{ToUnit: "SEPLAN", DateIn: testNow}},
	}
	_, err := uc.RetroactiveEdit(context.Background(), edit)
	assert.ErrorIs(t, err, domain.ErrConfirmationRequired)

	edit.Confirmed = true
	_, err = uc.RetroactiveEdit(context.Background(), edit)
	assert.NoError(t, err, "o caminho confirmado é a única exceção à trava")
}

func TestRetroactiveEdit_FinalizacaoExigeConfirmacaoEStatusValido(t *testing.T) {
	s := newMemStore()
	seedCase(s, "c1", "Em Tramitação")
	uc := newUseCase(s)

	edit := tramitacao.RetroactiveEditInput{
		TenantID: tenant, Actor: actor, CaseID: "c1",
		Movements:   []tramitacao.MovementEdit{{ToUnit: "SEPLAN", DateIn: testNow}},
		Finalizing:  true,
		FinalStatus: "Concluído",
	}
	_, err := uc.RetroactiveEdit(context.Background(), edit)
	assert.ErrorIs(t, err, domain.ErrConfirmationRequired)

	edit.Confirmed = true
	edit.FinalStatus = "Status Inventado"
	_, err = uc.RetroactiveEdit(context.Background(), edit)
	assert.ErrorIs(t, err, domain.ErrUnknownStatus)

	edit.FinalStatus = "Concluído"
	got, err := uc.RetroactiveEdit(context.Background(), edit)
	require.NoError(t, err)
	assert.Equal(t, "Concluído", got.Status)
}
