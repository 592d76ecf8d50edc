package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seplan-goias/tramita-api/internal/application/dto"
	"github.com/seplan-goias/tramita-api/internal/application/usecase"
	"github.com/seplan-goias/tramita-api/internal/domain/entity"
)

// ConfigHandler trata a configuração do fluxo: unidades e statuses (admin).
type ConfigHandler struct {
	unitUC   *usecase.UnitUseCase
	statusUC *usecase.StatusUseCase
}

// NewConfigHandler constrói o handler.
func NewConfigHandler(unitUC *usecase.UnitUseCase, statusUC *usecase.StatusUseCase) *ConfigHandler {
	return &ConfigHandler{unitUC: unitUC, statusUC: statusUC}
}

// ── Unidades ──────────────────────────────────────────────────────────────────

// CreateUnit godoc
// @Summary      Criar unidade receptora
// @Tags         config
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UnitRequest  true  "Dados da unidade"
// @Success      201   {object}  dto.UnitResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/config/units [post]
func (h *ConfigHandler) CreateUnit(c *fiber.Ctx) error {
	var in dto.UnitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.unitUC.Create(GetTenantID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toUnitResponse(out))
}

// ListUnits godoc
// @Summary      Listar unidades receptoras
// @Tags         config
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UnitResponse
// @Router       /api/config/units [get]
func (h *ConfigHandler) ListUnits(c *fiber.Ctx) error {
	units, err := h.unitUC.List(GetTenantID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	out := make([]dto.UnitResponse, 0, len(units))
	for _, u := range units {
		out = append(out, toUnitResponse(u))
	}
	return c.JSON(out)
}

// UpdateUnit godoc
// @Summary      Atualizar prazo SLA e tipo de análise da unidade
// @Tags         config
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da unidade"
// @Param        body  body  dto.UnitRequest  true  "Novos valores (nome é ignorado)"
// @Success      200   {object}  dto.UnitResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/config/units/{id} [put]
func (h *ConfigHandler) UpdateUnit(c *fiber.Ctx) error {
	var in dto.UnitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.unitUC.Update(GetTenantID(c), c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toUnitResponse(out))
}

// DeleteUnit godoc
// @Summary      Remover unidade receptora
// @Tags         config
// @Security     Bearer
// @Param        id  path  string  true  "ID da unidade"
// @Success      204
// @Router       /api/config/units/{id} [delete]
func (h *ConfigHandler) DeleteUnit(c *fiber.Ctx) error {
	if err := h.unitUC.Delete(GetTenantID(c), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Statuses ──────────────────────────────────────────────────────────────────

// CreateStatus godoc
// @Summary      Criar status do fluxo
// @Tags         config
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StatusRequest  true  "Dados do status"
// @Success      201   {object}  dto.StatusResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/config/statuses [post]
func (h *ConfigHandler) CreateStatus(c *fiber.Ctx) error {
	var in dto.StatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.statusUC.Create(GetTenantID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toStatusResponse(*out))
}

// ListStatuses godoc
// @Summary      Listar statuses do fluxo na ordem configurada
// @Tags         config
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StatusResponse
// @Router       /api/config/statuses [get]
func (h *ConfigHandler) ListStatuses(c *fiber.Ctx) error {
	defs, err := h.statusUC.List(GetTenantID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	out := make([]dto.StatusResponse, 0, len(defs))
	for _, s := range defs {
		out = append(out, toStatusResponse(s))
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Atualizar cor, flag final e posição do status
// @Tags         config
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do status"
// @Param        body  body  dto.StatusRequest  true  "Novos valores"
// @Success      200   {object}  dto.StatusResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/config/statuses/{id} [put]
func (h *ConfigHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.StatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.statusUC.Update(GetTenantID(c), c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toStatusResponse(*out))
}

// DeleteStatus godoc
// @Summary      Remover status do fluxo
// @Tags         config
// @Security     Bearer
// @Param        id  path  string  true  "ID do status"
// @Success      204
// @Router       /api/config/statuses/{id} [delete]
func (h *ConfigHandler) DeleteStatus(c *fiber.Ctx) error {
	if err := h.statusUC.Delete(GetTenantID(c), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func toUnitResponse(u *entity.Unit) dto.UnitResponse {
	return dto.UnitResponse{
		ID:             u.ID,
		Name:           u.Name,
		DefaultSLADays: u.DefaultSLADays,
		AnalysisType:   u.AnalysisType,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func toStatusResponse(s entity.StatusDef) dto.StatusResponse {
	return dto.StatusResponse{
		ID:       s.ID,
		Name:     s.Name,
		Color:    s.Color,
		IsFinal:  s.IsFinal,
		Position: s.Position,
	}
}
