package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/seplan-goias/tramita-api/internal/application/dto"
	"github.com/seplan-goias/tramita-api/internal/domain"
	"github.com/seplan-goias/tramita-api/internal/domain/entity"
	"github.com/seplan-goias/tramita-api/internal/domain/repository"
)

// UnitUseCase CRUD de unidades receptoras.
type UnitUseCase struct {
	unitRepo repository.UnitRepository
}

// NewUnitUseCase constrói o caso de uso.
func NewUnitUseCase(unitRepo repository.UnitRepository) *UnitUseCase {
	return &UnitUseCase{unitRepo: unitRepo}
}

// Create registra uma unidade. Nome único por tenant; prazo SLA positivo.
func (uc *UnitUseCase) Create(tenantID string, in dto.UnitRequest) (*entity.Unit, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.DefaultSLADays <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.unitRepo.GetByName(tenantID, name); existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	u := &entity.Unit{
		ID:             uuid.New().String(),
		TenantID:       tenantID,
		Name:           name,
		DefaultSLADays: in.DefaultSLADays,
		AnalysisType:   in.AnalysisType,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.unitRepo.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Update altera prazo SLA e tipo de análise. O nome é imutável após a
// criação: rótulos de unidade são texto livre referenciado pelos processos,
// e renomear quebraria o casamento.
func (uc *UnitUseCase) Update(tenantID, id string, in dto.UnitRequest) (*entity.Unit, error) {
	if in.DefaultSLADays <= 0 {
		return nil, domain.ErrInvalidInput
	}
	u, err := uc.unitRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil || u.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}
	u.DefaultSLADays = in.DefaultSLADays
	u.AnalysisType = in.AnalysisType
	u.UpdatedAt = time.Now()
	if err := uc.unitRepo.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

// List devolve as unidades do tenant.
func (uc *UnitUseCase) List(tenantID string) ([]*entity.Unit, error) {
	return uc.unitRepo.ListByTenant(tenantID)
}

// Delete remove uma unidade do tenant.
func (uc *UnitUseCase) Delete(tenantID, id string) error {
	u, err := uc.unitRepo.GetByID(id)
	if err != nil {
		return err
	}
	if u == nil || u.TenantID != tenantID {
		return domain.ErrNotFound
	}
	return uc.unitRepo.Delete(id)
}
