package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seplan-goias/tramita-api/internal/application/dto"
	"github.com/seplan-goias/tramita-api/internal/application/tramitacao"
	"github.com/seplan-goias/tramita-api/internal/domain/entity"
)

// CaseHandler trata as requisições HTTP de processos (protegido).
type CaseHandler struct {
	uc *tramitacao.UseCase
}

// NewCaseHandler constrói o handler.
func NewCaseHandler(uc *tramitacao.UseCase) *CaseHandler {
	return &CaseHandler{uc: uc}
}

func actorFrom(c *fiber.Ctx) tramitacao.Actor {
	return tramitacao.Actor{ID: GetUserID(c), Name: GetActorName(c)}
}

// GetActorName nome do ator para auditoria. O token só carrega IDs; o nome
// legível vem do header opcional X-Actor-Name preenchido pelo front.
func GetActorName(c *fiber.Ctx) string {
	if name := c.Get("X-Actor-Name"); name != "" {
		return name
	}
	return GetUserID(c)
}

// Create godoc
// @Summary      Registrar processo
// @Tags         cases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCaseRequest  true  "Dados do processo"
// @Success      201   {object}  dto.CaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cases [post]
func (h *CaseHandler) Create(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "tenant_id obrigatório"})
	}
	var in dto.CreateCaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), tramitacao.CreateInput{
		TenantID:     tenantID,
		Actor:        actorFrom(c),
		SEI:          in.SEI,
		Type:         in.Type,
		Value:        in.Value,
		Municipality: in.Municipality,
		AuthorName:   in.AuthorName,
		Object:       in.Object,
		Status:       in.Status,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToCaseResponse(out))
}

// GetByID godoc
// @Summary      Obter processo por ID
// @Tags         cases
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do processo"
// @Success      200  {object}  dto.CaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cases/{id} [get]
func (h *CaseHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id obrigatório"})
	}
	out, err := h.uc.Get(c.Context(), GetTenantID(c), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ToCaseResponse(out))
}

// List godoc
// @Summary      Listar processos
// @Tags         cases
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.CaseResponse
// @Router       /api/cases [get]
func (h *CaseHandler) List(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "tenant_id obrigatório"})
	}
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	cases, err := h.uc.List(c.Context(), tenantID, limit, offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	out := make([]dto.CaseResponse, 0, len(cases))
	for _, cs := range cases {
		out = append(out, dto.ToCaseResponse(cs))
	}
	return c.JSON(out)
}

// Transition godoc
// @Summary      Tramitar processo para uma ou mais unidades
// @Tags         cases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do processo"
// @Param        body  body  dto.TransitionRequest  true  "Destinos, status e prioridade"
// @Success      200   {object}  dto.CaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      423   {object}  dto.ErrorResponse
// @Router       /api/cases/{id}/transition [post]
func (h *CaseHandler) Transition(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id obrigatório"})
	}
	var in dto.TransitionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityNormal
	}
	out, err := h.uc.Transition(c.Context(), tramitacao.TransitionInput{
		TenantID:           GetTenantID(c),
		Actor:              actorFrom(c),
		CaseID:             id,
		DestinationUnitIDs: in.DestinationUnitIDs,
		NewStatus:          in.NewStatus,
		Priority:           priority,
		Remarks:            in.Remarks,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ToCaseResponse(out))
}

// RetroactiveEdit godoc
// @Summary      Reescrever retroativamente o histórico do processo
// @Tags         cases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do processo"
// @Param        body  body  dto.RetroactiveEditRequest  true  "Histórico completo reescrito"
// @Success      200   {object}  dto.CaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cases/{id}/history [put]
func (h *CaseHandler) RetroactiveEdit(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id obrigatório"})
	}
	var in dto.RetroactiveEditRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	movs := make([]tramitacao.MovementEdit, 0, len(in.Movements))
	for _, m := range in.Movements {
		movs = append(movs, tramitacao.MovementEdit{
			ID:        m.ID,
			FromUnit:  m.FromUnit,
			ToUnit:    m.ToUnit,
			DateIn:    m.DateIn,
			DateOut:   m.DateOut,
			HandledBy: m.HandledBy,
			Remarks:   m.Remarks,
		})
	}
	out, err := h.uc.RetroactiveEdit(c.Context(), tramitacao.RetroactiveEditInput{
		TenantID:    GetTenantID(c),
		Actor:       actorFrom(c),
		CaseID:      id,
		Movements:   movs,
		Finalizing:  in.Finalizing,
		FinalStatus: in.FinalStatus,
		Confirmed:   in.Confirmed,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ToCaseResponse(out))
}

// Delete godoc
// @Summary      Excluir processo com justificativa
// @Tags         cases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do processo"
// @Param        body  body  dto.DeleteCaseRequest  true  "Justificativa da exclusão"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cases/{id} [delete]
func (h *CaseHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id obrigatório"})
	}
	var in dto.DeleteCaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.uc.Delete(c.Context(), GetTenantID(c), actorFrom(c), id, in.Justification); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
