package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound             = errors.New("recurso não encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrUnauthorized         = errors.New("não autorizado")
	ErrForbidden            = errors.New("acesso negado")
	ErrUserNotFound         = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists   = errors.New("o e-mail já está cadastrado")
	ErrCaseLocked           = errors.New("processo em status final, tramitação bloqueada")
	ErrNoDestination        = errors.New("a tramitação exige ao menos uma unidade de destino")
	ErrEmptyJustification   = errors.New("a exclusão exige justificativa")
	ErrNoMovements          = errors.New("o histórico deve manter ao menos uma movimentação")
	ErrConfirmationRequired = errors.New("a finalização retroativa exige confirmação explícita")
	ErrUnknownStatus        = errors.New("status não configurado")

	// Erros da camada de persistência, distinguidos para que o chamador possa
	// oferecer o script de setup em vez de um erro genérico.
	ErrTableNotProvisioned = errors.New("tabela não provisionada no banco")
	ErrSchemaMismatch      = errors.New("esquema do banco desatualizado (coluna ausente)")
	ErrPermissionDenied    = errors.New("permissão negada pelo banco")
)
