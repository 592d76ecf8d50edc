package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/seplan-goias/tramita-api/internal/domain"
)

func pgErr(code string) error {
	return &pgconn.PgError{Code: code, Message: "detalhe do servidor"}
}

func TestMapError_TraduzCodigosSQLSTATE(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"tabela ausente", pgErr("42P01"), domain.ErrTableNotProvisioned},
		{"coluna ausente", pgErr("42703"), domain.ErrSchemaMismatch},
		{"permissão negada", pgErr("42501"), domain.ErrPermissionDenied},
		{"violação de unicidade", pgErr("23505"), domain.ErrDuplicate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError("insert processo", tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.Contains(t, got.Error(), "insert processo", "operação preservada na mensagem")
		})
	}
}

func TestMapError_ErroEmbrulhadoTambemCasa(t *testing.T) {
	wrapped := fmt.Errorf("exec: %w", pgErr("42P01"))
	assert.ErrorIs(t, mapError("get processo", wrapped), domain.ErrTableNotProvisioned)
}

func TestMapError_CodigoDesconhecidoPassaAdiante(t *testing.T) {
	original := errors.New("connection refused")
	got := mapError("list processos", original)
	assert.ErrorIs(t, got, original)
	assert.NotErrorIs(t, got, domain.ErrTableNotProvisioned)
}

func TestMapError_NilPermaneceNil(t *testing.T) {
	assert.NoError(t, mapError("qualquer", nil))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(pgErr("23505")))
	assert.False(t, isUniqueViolation(pgErr("42P01")))
	assert.False(t, isUniqueViolation(nil))
}
