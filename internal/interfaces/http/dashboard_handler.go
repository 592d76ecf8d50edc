package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seplan-goias/tramita-api/internal/application/analytics"
	"github.com/seplan-goias/tramita-api/internal/application/dto"
)

// DashboardHandler trata as requisições do painel gerencial (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumo do painel (totais, histograma, ranking, urgência)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        group_by  query  string  false  "type | author | municipality"  default(type)
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "tenant_id obrigatório"})
	}
	groupBy := c.Query("group_by", analytics.GroupByType)
	out, err := h.uc.GetSummary(c.Context(), tenantID, groupBy)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Calendar godoc
// @Summary      Calendário de vencimentos dos processos abertos
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CalendarDayDTO
// @Router       /api/dashboard/calendar [get]
func (h *DashboardHandler) Calendar(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "tenant_id obrigatório"})
	}
	out, err := h.uc.GetCalendar(c.Context(), tenantID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
