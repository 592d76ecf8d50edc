package repository

import "github.com/seplan-goias/tramita-api/internal/domain/entity"

// StatusRepository define o porto de persistência para StatusDef (DIP).
type StatusRepository interface {
	Create(status *entity.StatusDef) error
	GetByID(id string) (*entity.StatusDef, error)
	Update(status *entity.StatusDef) error
	// ListByTenant devolve os statuses na ordem configurada (Position);
	// o primeiro é o status inicial de processos novos.
	ListByTenant(tenantID string) ([]entity.StatusDef, error)
	Delete(id string) error
}
