package repository

import "context"

// Tipos de mudança notificados pelo store.
const (
	ChangeInsert = "INSERT"
	ChangeUpdate = "UPDATE"
	ChangeDelete = "DELETE"
)

// ChangeEvent uma mudança em processos ou auditoria, difundida a todos os
// assinantes do tenant (contrato pub/sub, não polling).
type ChangeEvent struct {
	Kind     string // INSERT, UPDATE, DELETE
	Entity   string // "case", "audit"
	EntityID string
	TenantID string
}

// Subscriber define o porto de notificação de mudanças do store.
// Subscribe bloqueia até ctx ser cancelado; handler é chamado para cada
// evento do tenant indicado (tenantID vazio recebe todos).
type Subscriber interface {
	Subscribe(ctx context.Context, tenantID string, handler func(ChangeEvent)) error
}
