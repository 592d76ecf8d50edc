package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/seplan-goias/tramita-api/internal/domain/entity"
	"github.com/seplan-goias/tramita-api/internal/domain/repository"
)

var _ repository.UnitRepository = (*UnitRepo)(nil)

// UnitRepo implementação do porto UnitRepository sobre PostgreSQL.
type UnitRepo struct {
	db DB
}

// NewUnitRepository constrói o adaptador de persistência de unidades.
func NewUnitRepository(db DB) *UnitRepo {
	return &UnitRepo{db: db}
}

// Create persiste uma unidade nova.
func (r *UnitRepo) Create(u *entity.Unit) error {
	query := `
		INSERT INTO unidades (id, tenant_id, name, default_sla_days, analysis_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(context.Background(), query,
		u.ID, u.TenantID, u.Name, u.DefaultSLADays, u.AnalysisType, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return mapError("insert unidade", err)
	}
	return nil
}

// GetByID obtém uma unidade por ID.
func (r *UnitRepo) GetByID(id string) (*entity.Unit, error) {
	query := `
		SELECT id, tenant_id, name, default_sla_days, analysis_type, created_at, updated_at
		FROM unidades WHERE id = $1`
	return r.get(query, id)
}

// GetByName obtém uma unidade pelo nome dentro do tenant.
func (r *UnitRepo) GetByName(tenantID, name string) (*entity.Unit, error) {
	query := `
		SELECT id, tenant_id, name, default_sla_days, analysis_type, created_at, updated_at
		FROM unidades WHERE tenant_id = $1 AND name = $2`
	return r.get(query, tenantID, name)
}

// Update altera prazo SLA e tipo de análise; o nome não é tocado.
func (r *UnitRepo) Update(u *entity.Unit) error {
	query := `
		UPDATE unidades SET default_sla_days = $2, analysis_type = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		u.ID, u.DefaultSLADays, u.AnalysisType, u.UpdatedAt,
	)
	if err != nil {
		return mapError("update unidade", err)
	}
	return nil
}

// ListByTenant lista unidades do tenant em ordem alfabética.
func (r *UnitRepo) ListByTenant(tenantID string) ([]*entity.Unit, error) {
	query := `
		SELECT id, tenant_id, name, default_sla_days, analysis_type, created_at, updated_at
		FROM unidades WHERE tenant_id = $1 ORDER BY name`
	rows, err := r.db.Query(context.Background(), query, tenantID)
	if err != nil {
		return nil, mapError("list unidades", err)
	}
	defer rows.Close()
	var list []*entity.Unit
	for rows.Next() {
		var u entity.Unit
		if err := rows.Scan(&u.ID, &u.TenantID, &u.Name, &u.DefaultSLADays, &u.AnalysisType, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, mapError("scan unidade", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Delete remove uma unidade por ID.
func (r *UnitRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM unidades WHERE id = $1`, id)
	if err != nil {
		return mapError("delete unidade", err)
	}
	return nil
}

func (r *UnitRepo) get(query string, args ...any) (*entity.Unit, error) {
	var u entity.Unit
	err := r.db.QueryRow(context.Background(), query, args...).Scan(
		&u.ID, &u.TenantID, &u.Name, &u.DefaultSLADays, &u.AnalysisType, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapError("get unidade", err)
	}
	return &u, nil
}
