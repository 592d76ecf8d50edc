package tramitacao

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/seplan-goias/tramita-api/internal/domain"
	"github.com/seplan-goias/tramita-api/internal/domain/entity"
	"github.com/seplan-goias/tramita-api/internal/domain/repository"
	"github.com/seplan-goias/tramita-api/internal/domain/sla"
	"github.com/seplan-goias/tramita-api/internal/domain/workflow"
)

// MovementEdit uma movimentação do histórico reescrito. ID vazio indica
// movimentação nova; as omitidas em relação ao histórico original são
// removidas.
type MovementEdit struct {
	ID        string
	FromUnit  string
	ToUnit    string
	DateIn    time.Time
	DateOut   *time.Time
	HandledBy string
	Remarks   string
}

// RetroactiveEditInput dados da edição retroativa do histórico.
type RetroactiveEditInput struct {
	TenantID    string
	Actor       Actor
	CaseID      string
	Movements   []MovementEdit
	Finalizing  bool
	FinalStatus string
	Confirmed   bool // gate explícito: finalizar é irreversível pelo fluxo normal
}

// RetroactiveEdit reescreve o histórico de movimentações de um processo.
// É a única exceção autorizada ao caráter append-only da tramitação:
//
//   - o histórico editado deve manter ao menos uma movimentação;
//   - DaysSpent é recalculado onde entrada e saída estão preenchidas
//     (nunca negativo);
//   - CurrentUnit passa a ser o destino da última movimentação editada;
//   - Finalizing exige FinalStatus configurado e Confirmed=true, porque a
//     finalização é irreversível pelo motor normal;
//   - um processo já travado só aceita edição pelo caminho confirmado.
//
// Sempre auditada com severidade WARN no mínimo.
func (uc *UseCase) RetroactiveEdit(ctx context.Context, in RetroactiveEditInput) (*entity.Case, error) {
	if len(in.Movements) == 0 {
		return nil, domain.ErrNoMovements
	}

	c, defs, err := uc.loadCase(in.TenantID, in.CaseID)
	if err != nil {
		return nil, err
	}

	if workflow.IsLocked(c, defs) && !in.Confirmed {
		return nil, domain.ErrConfirmationRequired
	}
	if in.Finalizing {
		if !in.Confirmed {
			return nil, domain.ErrConfirmationRequired
		}
		if workflow.FindStatus(in.FinalStatus, defs) == nil &&
			!workflow.SameName(in.FinalStatus, workflow.StatusEmpenhoLiquidacao) {
			return nil, domain.ErrUnknownStatus
		}
	}

	edited := cloneCase(c)
	edited.Movements = make([]entity.Movement, 0, len(in.Movements))
	for _, m := range in.Movements {
		if strings.TrimSpace(m.ToUnit) == "" || m.DateIn.IsZero() {
			return nil, domain.ErrInvalidInput
		}
		if m.DateOut != nil && m.DateOut.Before(m.DateIn) {
			return nil, domain.ErrInvalidInput
		}
		id := m.ID
		if id == "" {
			id = uuid.New().String()
		}
		mov := entity.Movement{
			ID:        id,
			CaseID:    edited.ID,
			FromUnit:  m.FromUnit,
			ToUnit:    m.ToUnit,
			DateIn:    m.DateIn,
			DateOut:   m.DateOut,
			HandledBy: m.HandledBy,
			Remarks:   m.Remarks,
		}
		// Prazo e tipo de análise refletem a configuração atual da unidade,
		// quando ela ainda existe; senão preservam-se vazios.
		if u, err := uc.unitRepo.GetByName(in.TenantID, m.ToUnit); err == nil && u != nil {
			mov.Deadline = sla.ComputeDeadline(m.DateIn, u.DefaultSLADays)
			mov.AnalysisType = u.AnalysisType
		}
		if m.DateOut != nil {
			mov.DaysSpent = sla.DaysSpent(m.DateIn, *m.DateOut)
		}
		edited.Movements = append(edited.Movements, mov)
	}

	edited.CurrentUnit = edited.Movements[len(edited.Movements)-1].ToUnit
	if in.Finalizing {
		edited.Status = in.FinalStatus
	}
	edited.UpdatedAt = uc.now()

	err = uc.txRunner.Run(ctx, func(caseRepo repository.CaseRepository, auditRepo repository.AuditRepository) error {
		if err := caseRepo.Update(edited); err != nil {
			return err
		}
		details := fmt.Sprintf("histórico do processo %s reescrito retroativamente (%d movimentações)",
			edited.SEI, len(edited.Movements))
		if in.Finalizing {
			details += fmt.Sprintf("; finalizado em %q", in.FinalStatus)
		}
		return auditRepo.Append(uc.auditEntry(in.TenantID, in.Actor, entity.AuditActionUpdate,
			entity.AuditSeverityWarn, details))
	})
	if err != nil {
		return nil, err
	}
	return edited, nil
}
