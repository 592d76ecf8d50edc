package repository

import "github.com/seplan-goias/tramita-api/internal/domain/entity"

// UnitRepository define o porto de persistência para Unit (DIP).
type UnitRepository interface {
	Create(unit *entity.Unit) error
	GetByID(id string) (*entity.Unit, error)
	GetByName(tenantID, name string) (*entity.Unit, error)
	// Update altera só DefaultSLADays e AnalysisType; Name é imutável.
	Update(unit *entity.Unit) error
	ListByTenant(tenantID string) ([]*entity.Unit, error)
	Delete(id string) error
}
