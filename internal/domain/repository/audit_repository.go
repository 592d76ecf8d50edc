package repository

import "github.com/seplan-goias/tramita-api/internal/domain/entity"

// AuditRepository define o porto de persistência para a trilha de auditoria.
// Append-only: não há Update nem Delete.
type AuditRepository interface {
	Append(e *entity.AuditEntry) error
	ListByTenant(tenantID string, limit, offset int) ([]*entity.AuditEntry, error)
}
