package postgres

import (
	"context"

	"github.com/seplan-goias/tramita-api/internal/domain/entity"
	"github.com/seplan-goias/tramita-api/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo implementação append-only do porto AuditRepository.
// Não há UPDATE nem DELETE sobre auditoria, nem aqui nem no schema
// (a tabela só recebe GRANT de INSERT e SELECT).
type AuditRepo struct {
	db DB
}

// NewAuditRepository constrói o adaptador da trilha de auditoria.
func NewAuditRepository(db DB) *AuditRepo {
	return &AuditRepo{db: db}
}

// Append grava um registro de auditoria.
func (r *AuditRepo) Append(e *entity.AuditEntry) error {
	query := `
		INSERT INTO auditoria (id, tenant_id, actor_id, actor_name, action, details, severity, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(context.Background(), query,
		e.ID, e.TenantID, e.ActorID, e.ActorName, e.Action, e.Details, e.Severity, e.Timestamp,
	)
	if err != nil {
		return mapError("insert auditoria", err)
	}
	return nil
}

// ListByTenant lista a trilha do tenant, mais recente primeiro.
func (r *AuditRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.AuditEntry, error) {
	query := `
		SELECT id, tenant_id, actor_id, actor_name, action, details, severity, timestamp
		FROM auditoria WHERE tenant_id = $1 ORDER BY timestamp DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(context.Background(), query, tenantID, limit, offset)
	if err != nil {
		return nil, mapError("list auditoria", err)
	}
	defer rows.Close()
	var list []*entity.AuditEntry
	for rows.Next() {
		var e entity.AuditEntry
		if err := rows.Scan(&e.ID, &e.TenantID, &e.ActorID, &e.ActorName, &e.Action, &e.Details, &e.Severity, &e.Timestamp); err != nil {
			return nil, mapError("scan auditoria", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
