package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/seplan-goias/tramita-api/internal/domain"
)

// Códigos SQLSTATE que o motor distingue para o chamador. A UI ramifica em
// cada um: tabela ausente oferece o script de setup; coluna ausente indica
// migração pendente; permissão negada indica GRANT faltando.
const (
	codeUndefinedTable        = "42P01"
	codeUndefinedColumn       = "42703"
	codeInsufficientPrivilege = "42501"
	codeUniqueViolation       = "23505"
)

// mapError traduz erros do PostgreSQL para os sentinelas de domínio,
// preservando o erro original na cadeia (%w) para diagnóstico.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUndefinedTable:
			return fmt.Errorf("%s: %w: %s", op, domain.ErrTableNotProvisioned, pgErr.Message)
		case codeUndefinedColumn:
			return fmt.Errorf("%s: %w: %s", op, domain.ErrSchemaMismatch, pgErr.Message)
		case codeInsufficientPrivilege:
			return fmt.Errorf("%s: %w: %s", op, domain.ErrPermissionDenied, pgErr.Message)
		case codeUniqueViolation:
			return fmt.Errorf("%s: %w", op, domain.ErrDuplicate)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// isUniqueViolation verifica se um erro é violação de constraint única (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == codeUniqueViolation
	}
	return err != nil && strings.Contains(err.Error(), codeUniqueViolation)
}
