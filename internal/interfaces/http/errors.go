package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/seplan-goias/tramita-api/internal/application/dto"
	"github.com/seplan-goias/tramita-api/internal/domain"
)

// Hint devolvido quando o banco não está provisionado ou o esquema divergiu.
const setupHint = "execute o script scripts/setup_db.sql no banco configurado"

// respondDomainError traduz erros de domínio para status HTTP. Usa errors.Is
// porque os use cases embrulham com %w.
func respondDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNoDestination),
		errors.Is(err, domain.ErrEmptyJustification),
		errors.Is(err, domain.ErrNoMovements),
		errors.Is(err, domain.ErrUnknownStatus):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrCaseLocked):
		// 423 Locked: status final trava a tramitação; não é erro transitório.
		return c.Status(fiber.StatusLocked).JSON(dto.ErrorResponse{Code: "CASE_LOCKED", Message: err.Error()})
	case errors.Is(err, domain.ErrConfirmationRequired):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFIRMATION_REQUIRED", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	case errors.Is(err, domain.ErrTableNotProvisioned):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "DB_NOT_PROVISIONED", Message: err.Error(), Hint: setupHint})
	case errors.Is(err, domain.ErrSchemaMismatch):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "DB_SCHEMA_MISMATCH", Message: err.Error(), Hint: setupHint})
	case errors.Is(err, domain.ErrPermissionDenied):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "DB_PERMISSION", Message: err.Error(), Hint: setupHint})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
