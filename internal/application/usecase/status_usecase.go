package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/seplan-goias/tramita-api/internal/application/dto"
	"github.com/seplan-goias/tramita-api/internal/domain"
	"github.com/seplan-goias/tramita-api/internal/domain/entity"
	"github.com/seplan-goias/tramita-api/internal/domain/repository"
	"github.com/seplan-goias/tramita-api/internal/domain/workflow"
)

// StatusUseCase CRUD dos statuses do fluxo de tramitação.
type StatusUseCase struct {
	statusRepo repository.StatusRepository
}

// NewStatusUseCase constrói o caso de uso.
func NewStatusUseCase(statusRepo repository.StatusRepository) *StatusUseCase {
	return &StatusUseCase{statusRepo: statusRepo}
}

// Create registra um status. Nome único por tenant (casamento normalizado,
// acentos e caixa não diferenciam).
func (uc *StatusUseCase) Create(tenantID string, in dto.StatusRequest) (*entity.StatusDef, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	defs, err := uc.statusRepo.ListByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	if workflow.FindStatus(name, defs) != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	s := &entity.StatusDef{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Name:      name,
		Color:     in.Color,
		IsFinal:   in.IsFinal,
		Position:  in.Position,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.statusRepo.Create(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Update altera cor, flag final e posição de um status.
func (uc *StatusUseCase) Update(tenantID, id string, in dto.StatusRequest) (*entity.StatusDef, error) {
	s, err := uc.statusRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil || s.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}
	s.Color = in.Color
	s.IsFinal = in.IsFinal
	s.Position = in.Position
	s.UpdatedAt = time.Now()
	if err := uc.statusRepo.Update(s); err != nil {
		return nil, err
	}
	return s, nil
}

// List devolve os statuses do tenant na ordem configurada.
func (uc *StatusUseCase) List(tenantID string) ([]entity.StatusDef, error) {
	return uc.statusRepo.ListByTenant(tenantID)
}

// Delete remove um status da configuração.
func (uc *StatusUseCase) Delete(tenantID, id string) error {
	s, err := uc.statusRepo.GetByID(id)
	if err != nil {
		return err
	}
	if s == nil || s.TenantID != tenantID {
		return domain.ErrNotFound
	}
	return uc.statusRepo.Delete(id)
}
