package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/seplan-goias/tramita-api/internal/domain/entity"
	"github.com/seplan-goias/tramita-api/internal/domain/repository"
)

var _ repository.CaseRepository = (*CaseRepo)(nil)

// CaseRepo implementação do porto CaseRepository sobre PostgreSQL.
// As movimentações vivem na tabela movimentacoes com coluna position: a
// convenção "movimentação atual = última" é garantida pelo ORDER BY position,
// nunca pela ordem de inserção física.
type CaseRepo struct {
	db DB
}

// NewCaseRepository constrói o adaptador de persistência de processos.
func NewCaseRepository(db DB) *CaseRepo {
	return &CaseRepo{db: db}
}

const caseColumns = `id, tenant_id, sei, type, value, municipality, author_name, object, status, current_unit, created_by, created_at, updated_at`

// Create persiste um processo novo com seu histórico (normalmente vazio).
func (r *CaseRepo) Create(c *entity.Case) error {
	ctx := context.Background()
	query := `
		INSERT INTO processos (` + caseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.TenantID, c.SEI, c.Type, c.Value, c.Municipality, c.AuthorName,
		c.Object, c.Status, c.CurrentUnit, c.CreatedBy, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return mapError("insert processo", err)
	}
	return r.replaceMovements(ctx, c)
}

// GetByID carrega o processo e as movimentações ordenadas por position.
func (r *CaseRepo) GetByID(id string) (*entity.Case, error) {
	ctx := context.Background()
	query := `SELECT ` + caseColumns + ` FROM processos WHERE id = $1`
	var c entity.Case
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.TenantID, &c.SEI, &c.Type, &c.Value, &c.Municipality,
		&c.AuthorName, &c.Object, &c.Status, &c.CurrentUnit, &c.CreatedBy,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapError("get processo", err)
	}
	if err := r.loadMovements(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Update regrava o processo e o histórico completo de movimentações.
// O histórico é substituído por inteiro (delete + insert na mesma tx do
// TxRunner): é o que a edição retroativa exige e mantém position densa.
func (r *CaseRepo) Update(c *entity.Case) error {
	ctx := context.Background()
	query := `
		UPDATE processos
		SET sei = $2, type = $3, value = $4, municipality = $5, author_name = $6,
		    object = $7, status = $8, current_unit = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query,
		c.ID, c.SEI, c.Type, c.Value, c.Municipality, c.AuthorName,
		c.Object, c.Status, c.CurrentUnit, c.UpdatedAt,
	)
	if err != nil {
		return mapError("update processo", err)
	}
	if cmd.RowsAffected() == 0 {
		return mapError("update processo", pgx.ErrNoRows)
	}
	return r.replaceMovements(ctx, c)
}

// ListByTenant lista processos do tenant com paginação.
func (r *CaseRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Case, error) {
	query := `
		SELECT ` + caseColumns + ` FROM processos
		WHERE tenant_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, tenantID, limit, offset)
}

// ListAllByTenant carrega o conjunto completo do tenant (painel).
func (r *CaseRepo) ListAllByTenant(tenantID string) ([]*entity.Case, error) {
	query := `
		SELECT ` + caseColumns + ` FROM processos
		WHERE tenant_id = $1 ORDER BY created_at DESC`
	return r.list(query, tenantID)
}

// Delete remove o processo; as movimentações caem por ON DELETE CASCADE.
func (r *CaseRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM processos WHERE id = $1`, id)
	if err != nil {
		return mapError("delete processo", err)
	}
	return nil
}

func (r *CaseRepo) list(query string, args ...any) ([]*entity.Case, error) {
	ctx := context.Background()
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError("list processos", err)
	}
	defer rows.Close()
	var list []*entity.Case
	for rows.Next() {
		var c entity.Case
		if err := rows.Scan(
			&c.ID, &c.TenantID, &c.SEI, &c.Type, &c.Value, &c.Municipality,
			&c.AuthorName, &c.Object, &c.Status, &c.CurrentUnit, &c.CreatedBy,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, mapError("scan processo", err)
		}
		list = append(list, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list processos", err)
	}
	for _, c := range list {
		if err := r.loadMovements(ctx, c); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (r *CaseRepo) loadMovements(ctx context.Context, c *entity.Case) error {
	query := `
		SELECT id, case_id, from_unit, to_unit, date_in, date_out, deadline,
		       days_spent, handled_by, remarks, analysis_type
		FROM movimentacoes WHERE case_id = $1 ORDER BY position`
	rows, err := r.db.Query(ctx, query, c.ID)
	if err != nil {
		return mapError("list movimentacoes", err)
	}
	defer rows.Close()
	c.Movements = c.Movements[:0]
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(
			&m.ID, &m.CaseID, &m.FromUnit, &m.ToUnit, &m.DateIn, &m.DateOut,
			&m.Deadline, &m.DaysSpent, &m.HandledBy, &m.Remarks, &m.AnalysisType,
		); err != nil {
			return mapError("scan movimentacao", err)
		}
		c.Movements = append(c.Movements, m)
	}
	return rows.Err()
}

func (r *CaseRepo) replaceMovements(ctx context.Context, c *entity.Case) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM movimentacoes WHERE case_id = $1`, c.ID); err != nil {
		return mapError("delete movimentacoes", err)
	}
	query := `
		INSERT INTO movimentacoes (id, case_id, position, from_unit, to_unit, date_in,
		                           date_out, deadline, days_spent, handled_by, remarks, analysis_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	for i, m := range c.Movements {
		if _, err := r.db.Exec(ctx, query,
			m.ID, c.ID, i, m.FromUnit, m.ToUnit, m.DateIn, m.DateOut,
			m.Deadline, m.DaysSpent, m.HandledBy, m.Remarks, m.AnalysisType,
		); err != nil {
			return mapError("insert movimentacao", err)
		}
	}
	return nil
}
