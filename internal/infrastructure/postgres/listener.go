package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/seplan-goias/tramita-api/internal/domain/repository"
)

var _ repository.Subscriber = (*Listener)(nil)

// Canal de notificação. Triggers em processos e auditoria fazem
// pg_notify('tramita_changes', json) a cada INSERT/UPDATE/DELETE.
const notifyChannel = "tramita_changes"

// Listener assinante de mudanças via LISTEN/NOTIFY do PostgreSQL.
// Nada de polling: a conexão fica bloqueada em WaitForNotification e os
// eventos chegam empurrados pelo servidor.
type Listener struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

// NewListener constrói o assinante sobre o pool.
func NewListener(pool *pgxpool.Pool, log zerolog.Logger) *Listener {
	return &Listener{pool: pool, log: log}
}

// payload do pg_notify emitido pelos triggers.
type notifyPayload struct {
	Kind     string `json:"kind"`
	Entity   string `json:"entity"`
	EntityID string `json:"entity_id"`
	TenantID string `json:"tenant_id"`
}

// Subscribe bloqueia ouvindo o canal até ctx ser cancelado. handler recebe
// cada evento do tenant indicado; tenantID vazio recebe todos. Se a conexão
// cair, reconecta com backoff em vez de devolver erro.
func (l *Listener) Subscribe(ctx context.Context, tenantID string, handler func(repository.ChangeEvent)) error {
	backoff := time.Second
	for {
		err := l.listen(ctx, tenantID, handler)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		l.log.Warn().Err(err).Dur("retry_in", backoff).Msg("conexão LISTEN caiu, reconectando")
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return ctx.Err()
		}
		if backoff < 30*time.Second {
			backoff *= 2
		}
	}
}

func (l *Listener) listen(ctx context.Context, tenantID string, handler func(repository.ChangeEvent)) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return mapError("acquire listen conn", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+notifyChannel); err != nil {
		return mapError("listen", err)
	}

	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}
		var p notifyPayload
		if err := json.Unmarshal([]byte(n.Payload), &p); err != nil {
			l.log.Warn().Err(err).Str("payload", n.Payload).Msg("payload de notificação inválido")
			continue
		}
		if tenantID != "" && p.TenantID != tenantID {
			continue
		}
		handler(repository.ChangeEvent{
			Kind:     p.Kind,
			Entity:   p.Entity,
			EntityID: p.EntityID,
			TenantID: p.TenantID,
		})
	}
}
