package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/seplan-goias/tramita-api/internal/domain/entity"
	"github.com/seplan-goias/tramita-api/internal/domain/repository"
)

var _ repository.StatusRepository = (*StatusRepo)(nil)

// StatusRepo implementação do porto StatusRepository sobre PostgreSQL.
type StatusRepo struct {
	db DB
}

// NewStatusRepository constrói o adaptador de persistência de statuses.
func NewStatusRepository(db DB) *StatusRepo {
	return &StatusRepo{db: db}
}

// Create persiste um status novo.
func (r *StatusRepo) Create(s *entity.StatusDef) error {
	query := `
		INSERT INTO status_defs (id, tenant_id, name, color, is_final, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(context.Background(), query,
		s.ID, s.TenantID, s.Name, s.Color, s.IsFinal, s.Position, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return mapError("insert status", err)
	}
	return nil
}

// GetByID obtém um status por ID.
func (r *StatusRepo) GetByID(id string) (*entity.StatusDef, error) {
	query := `
		SELECT id, tenant_id, name, color, is_final, position, created_at, updated_at
		FROM status_defs WHERE id = $1`
	var s entity.StatusDef
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.TenantID, &s.Name, &s.Color, &s.IsFinal, &s.Position, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapError("get status", err)
	}
	return &s, nil
}

// Update altera cor, flag final e posição.
func (r *StatusRepo) Update(s *entity.StatusDef) error {
	query := `
		UPDATE status_defs SET color = $2, is_final = $3, position = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		s.ID, s.Color, s.IsFinal, s.Position, s.UpdatedAt,
	)
	if err != nil {
		return mapError("update status", err)
	}
	return nil
}

// ListByTenant devolve os statuses na ordem configurada (position).
func (r *StatusRepo) ListByTenant(tenantID string) ([]entity.StatusDef, error) {
	query := `
		SELECT id, tenant_id, name, color, is_final, position, created_at, updated_at
		FROM status_defs WHERE tenant_id = $1 ORDER BY position, name`
	rows, err := r.db.Query(context.Background(), query, tenantID)
	if err != nil {
		return nil, mapError("list status", err)
	}
	defer rows.Close()
	var list []entity.StatusDef
	for rows.Next() {
		var s entity.StatusDef
		if err := rows.Scan(&s.ID, &s.TenantID, &s.Name, &s.Color, &s.IsFinal, &s.Position, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, mapError("scan status", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Delete remove um status por ID.
func (r *StatusRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM status_defs WHERE id = $1`, id)
	if err != nil {
		return mapError("delete status", err)
	}
	return nil
}
