// Package tramitacao implementa o motor de tramitação: criação de processos,
// movimentação entre unidades (com fan-out), exclusão justificada e a edição
// retroativa privilegiada. Toda operação mutadora consulta a trava de status
// final antes de gravar e emite um registro de auditoria na mesma transação.
package tramitacao

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/seplan-goias/tramita-api/internal/domain"
	"github.com/seplan-goias/tramita-api/internal/domain/entity"
	"github.com/seplan-goias/tramita-api/internal/domain/repository"
	"github.com/seplan-goias/tramita-api/internal/domain/sla"
	"github.com/seplan-goias/tramita-api/internal/domain/workflow"
)

// Actor quem executa a operação, registrado na auditoria.
type Actor struct {
	ID   string
	Name string
}

// UseCase motor de tramitação de processos.
type UseCase struct {
	txRunner   TxRunner
	caseRepo   repository.CaseRepository
	unitRepo   repository.UnitRepository
	statusRepo repository.StatusRepository
	now        func() time.Time
}

// NewUseCase constrói o motor. caseRepo/unitRepo/statusRepo são usados nas
// leituras fora de transação; as escritas passam pelo txRunner.
func NewUseCase(
	txRunner TxRunner,
	caseRepo repository.CaseRepository,
	unitRepo repository.UnitRepository,
	statusRepo repository.StatusRepository,
) *UseCase {
	return &UseCase{
		txRunner:   txRunner,
		caseRepo:   caseRepo,
		unitRepo:   unitRepo,
		statusRepo: statusRepo,
		now:        time.Now,
	}
}

// SetClock troca a fonte de tempo (testes).
func (uc *UseCase) SetClock(now func() time.Time) { uc.now = now }

// CreateInput dados para registrar um processo novo.
type CreateInput struct {
	TenantID     string
	Actor        Actor
	SEI          string
	Type         string
	Value        decimal.Decimal
	Municipality string
	AuthorName   string
	Object       string
	Status       string // vazio = primeiro status configurado
}

// Create valida os campos obrigatórios (SEI, valor, município, objeto),
// inicializa o processo sem movimentações e grava processo + auditoria
// CREATE/INFO na mesma transação. O painel trata processos sem movimentação
// como "aguardando primeira tramitação", nunca como atraso.
func (uc *UseCase) Create(ctx context.Context, in CreateInput) (*entity.Case, error) {
	if strings.TrimSpace(in.SEI) == "" ||
		strings.TrimSpace(in.Municipality) == "" ||
		strings.TrimSpace(in.Object) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Value.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidCaseType(in.Type) {
		return nil, domain.ErrInvalidInput
	}

	status := in.Status
	if status == "" {
		defs, err := uc.statusRepo.ListByTenant(in.TenantID)
		if err != nil {
			return nil, fmt.Errorf("carregar statuses: %w", err)
		}
		if len(defs) == 0 {
			return nil, domain.ErrUnknownStatus
		}
		status = defs[0].Name
	}

	now := uc.now()
	c := &entity.Case{
		ID:           uuid.New().String(),
		TenantID:     in.TenantID,
		SEI:          in.SEI,
		Type:         in.Type,
		Value:        in.Value,
		Municipality: in.Municipality,
		AuthorName:   in.AuthorName,
		Object:       in.Object,
		Status:       status,
		Movements:    []entity.Movement{},
		CreatedBy:    in.Actor.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := uc.txRunner.Run(ctx, func(caseRepo repository.CaseRepository, auditRepo repository.AuditRepository) error {
		if err := caseRepo.Create(c); err != nil {
			return err
		}
		return auditRepo.Append(uc.auditEntry(in.TenantID, in.Actor, entity.AuditActionCreate,
			entity.AuditSeverityInfo, fmt.Sprintf("processo %s criado (%s)", c.SEI, c.Type)))
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// TransitionInput dados para tramitar um processo a uma ou mais unidades.
type TransitionInput struct {
	TenantID           string
	Actor              Actor
	CaseID             string
	DestinationUnitIDs []string
	NewStatus          string
	Priority           string // NORMAL, URGENTE, URGENTISSIMO
	Remarks            string
}

// Transition move o processo às unidades de destino. Estritamente
// append-only e só para frente: cria uma movimentação nova por destino
// (todas com o mesmo instante de entrada), nunca edita as anteriores.
// Recusa de imediato quando o processo está travado por status final —
// violação dura, não erro de retry.
func (uc *UseCase) Transition(ctx context.Context, in TransitionInput) (*entity.Case, error) {
	if len(in.DestinationUnitIDs) == 0 {
		return nil, domain.ErrNoDestination
	}

	c, defs, err := uc.loadCase(in.TenantID, in.CaseID)
	if err != nil {
		return nil, err
	}
	if workflow.IsLocked(c, defs) {
		return nil, domain.ErrCaseLocked
	}
	if workflow.FindStatus(in.NewStatus, defs) == nil && !workflow.SameName(in.NewStatus, workflow.StatusEmpenhoLiquidacao) {
		return nil, domain.ErrUnknownStatus
	}

	units := make([]*entity.Unit, 0, len(in.DestinationUnitIDs))
	for _, id := range in.DestinationUnitIDs {
		u, err := uc.unitRepo.GetByID(id)
		if err != nil {
			return nil, fmt.Errorf("carregar unidade: %w", err)
		}
		if u == nil || u.TenantID != in.TenantID {
			return nil, domain.ErrNotFound
		}
		units = append(units, u)
	}

	// Trabalha sobre uma cópia: se o commit falhar, o estado carregado
	// permanece consistente com a última escrita confirmada.
	edited := cloneCase(c)
	now := uc.now()
	names := make([]string, 0, len(units))
	for _, u := range units {
		names = append(names, u.Name)
		edited.Movements = append(edited.Movements, entity.Movement{
			ID:           uuid.New().String(),
			CaseID:       edited.ID,
			FromUnit:     c.CurrentUnit,
			ToUnit:       u.Name,
			DateIn:       now,
			DateOut:      nil,
			Deadline:     sla.ComputeDeadline(now, u.DefaultSLADays),
			HandledBy:    in.Actor.Name,
			Remarks:      priorityTag(in.Priority) + in.Remarks,
			AnalysisType: u.AnalysisType,
		})
	}
	edited.CurrentUnit = strings.Join(names, entity.CurrentUnitSeparator)
	edited.Status = in.NewStatus
	edited.UpdatedAt = now

	err = uc.txRunner.Run(ctx, func(caseRepo repository.CaseRepository, auditRepo repository.AuditRepository) error {
		if err := caseRepo.Update(edited); err != nil {
			return err
		}
		return auditRepo.Append(uc.auditEntry(in.TenantID, in.Actor, entity.AuditActionMove,
			entity.AuditSeverityInfo,
			fmt.Sprintf("processo %s tramitado para %s (status: %s)", edited.SEI, edited.CurrentUnit, edited.Status)))
	})
	if err != nil {
		return nil, err
	}
	return edited, nil
}

// Delete remove o processo do conjunto ativo. Privilegiado; a justificativa é
// obrigatória e vai para a auditoria com severidade CRITICAL. Processo travado
// em status final é recusado; a correção passa pela edição retroativa.
func (uc *UseCase) Delete(ctx context.Context, tenantID string, actor Actor, caseID, justification string) error {
	if strings.TrimSpace(justification) == "" {
		return domain.ErrEmptyJustification
	}
	c, defs, err := uc.loadCase(tenantID, caseID)
	if err != nil {
		return err
	}
	if workflow.IsLocked(c, defs) {
		return domain.ErrCaseLocked
	}
	return uc.txRunner.Run(ctx, func(caseRepo repository.CaseRepository, auditRepo repository.AuditRepository) error {
		if err := caseRepo.Delete(c.ID); err != nil {
			return err
		}
		return auditRepo.Append(uc.auditEntry(tenantID, actor, entity.AuditActionDelete,
			entity.AuditSeverityCritical,
			fmt.Sprintf("processo %s excluído; justificativa: %s", c.SEI, justification)))
	})
}

// Get carrega um processo do tenant com o histórico completo.
func (uc *UseCase) Get(ctx context.Context, tenantID, caseID string) (*entity.Case, error) {
	c, _, err := uc.loadCase(tenantID, caseID)
	return c, err
}

// List devolve os processos do tenant com paginação.
func (uc *UseCase) List(ctx context.Context, tenantID string, limit, offset int) ([]*entity.Case, error) {
	return uc.caseRepo.ListByTenant(tenantID, limit, offset)
}

// loadCase carrega o processo do tenant e o conjunto de statuses configurados.
func (uc *UseCase) loadCase(tenantID, caseID string) (*entity.Case, []entity.StatusDef, error) {
	c, err := uc.caseRepo.GetByID(caseID)
	if err != nil {
		return nil, nil, fmt.Errorf("carregar processo: %w", err)
	}
	if c == nil || c.TenantID != tenantID {
		return nil, nil, domain.ErrNotFound
	}
	defs, err := uc.statusRepo.ListByTenant(tenantID)
	if err != nil {
		return nil, nil, fmt.Errorf("carregar statuses: %w", err)
	}
	return c, defs, nil
}

func (uc *UseCase) auditEntry(tenantID string, actor Actor, action, severity, details string) *entity.AuditEntry {
	return &entity.AuditEntry{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		ActorID:   actor.ID,
		ActorName: actor.Name,
		Action:    action,
		Details:   details,
		Severity:  severity,
		Timestamp: uc.now(),
	}
}

// priorityTag prefixo de prioridade anexado às observações da movimentação.
func priorityTag(priority string) string {
	switch priority {
	case entity.PriorityUrgente:
		return "[URGENTE] "
	case entity.PriorityUrgentissimo:
		return "[URGENTISSIMO] "
	}
	return ""
}

// cloneCase cópia profunda do processo (inclui o slice de movimentações).
func cloneCase(c *entity.Case) *entity.Case {
	out := *c
	out.Movements = make([]entity.Movement, len(c.Movements))
	copy(out.Movements, c.Movements)
	return &out
}
