package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seplan-goias/tramita-api/internal/application/dto"
	"github.com/seplan-goias/tramita-api/internal/application/usecase"
)

// AIHandler expõe o resumo de processos assistido por IA (protegido).
type AIHandler struct {
	uc *usecase.SummaryUseCase
}

// NewAIHandler constrói o handler.
func NewAIHandler(uc *usecase.SummaryUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// Summarize godoc
// @Summary      Resumo em linguagem natural da situação do processo
// @Description  O resumo é auxiliar e nunca autoritativo. Falhas do LLM
// @Description  degradam para um texto substitutivo com degraded=true.
// @Tags         ai
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do processo"
// @Success      200  {object}  dto.CaseSummaryDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cases/{id}/summary [get]
func (h *AIHandler) Summarize(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id obrigatório"})
	}
	out, err := h.uc.SummarizeCase(c.Context(), GetTenantID(c), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
