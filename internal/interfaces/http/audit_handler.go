package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seplan-goias/tramita-api/internal/application/dto"
	"github.com/seplan-goias/tramita-api/internal/application/usecase"
)

// AuditHandler consulta read-only da trilha de auditoria (admin/gestor).
type AuditHandler struct {
	uc *usecase.AuditUseCase
}

// NewAuditHandler constrói o handler.
func NewAuditHandler(uc *usecase.AuditUseCase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// List godoc
// @Summary      Listar a trilha de auditoria (mais recente primeiro)
// @Tags         audit
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"   default(50)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.AuditEntryDTO
// @Router       /api/audit [get]
func (h *AuditHandler) List(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "tenant_id obrigatório"})
	}
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.uc.List(tenantID, limit, offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
