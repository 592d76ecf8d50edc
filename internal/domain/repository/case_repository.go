package repository

import "github.com/seplan-goias/tramita-api/internal/domain/entity"

// CaseRepository define o porto de persistência para Case (DIP).
// GetByID e as listagens carregam as movimentações ordenadas pela posição de
// append — a convenção "movimentação atual = última do array" é garantida
// aqui, na borda de acesso a dados, e não por disciplina do chamador.
type CaseRepository interface {
	Create(c *entity.Case) error
	GetByID(id string) (*entity.Case, error)
	// Update regrava o processo e o histórico completo de movimentações.
	Update(c *entity.Case) error
	ListByTenant(tenantID string, limit, offset int) ([]*entity.Case, error)
	// ListAllByTenant carrega o conjunto completo do tenant para o painel.
	ListAllByTenant(tenantID string) ([]*entity.Case, error)
	Delete(id string) error
}
