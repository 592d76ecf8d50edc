package usecase

import (
	"github.com/seplan-goias/tramita-api/internal/application/dto"
	"github.com/seplan-goias/tramita-api/internal/domain/repository"
)

// AuditUseCase consulta read-only da trilha de auditoria.
type AuditUseCase struct {
	auditRepo repository.AuditRepository
}

// NewAuditUseCase constrói o caso de uso.
func NewAuditUseCase(auditRepo repository.AuditRepository) *AuditUseCase {
	return &AuditUseCase{auditRepo: auditRepo}
}

// List devolve a trilha do tenant, mais recente primeiro.
func (uc *AuditUseCase) List(tenantID string, limit, offset int) ([]dto.AuditEntryDTO, error) {
	entries, err := uc.auditRepo.ListByTenant(tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AuditEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.AuditEntryDTO{
			ID:        e.ID,
			ActorID:   e.ActorID,
			ActorName: e.ActorName,
			Action:    e.Action,
			Details:   e.Details,
			Severity:  e.Severity,
			Timestamp: e.Timestamp,
		})
	}
	return out, nil
}
