package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/seplan-goias/tramita-api/internal/application/tramitacao"
	"github.com/seplan-goias/tramita-api/internal/domain/repository"
)

var _ tramitacao.TxRunner = (*TxRunner)(nil)

// TxRunner executa casos de uso dentro de uma transação pgx, entregando ao
// callback repositórios atados à tx. Commit só acontece se fn devolver nil;
// qualquer erro (inclusive pânico em fn) causa rollback.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o executor transacional sobre o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run abre a transação, invoca fn com os repositórios transacionais e confirma.
func (t *TxRunner) Run(ctx context.Context, fn func(
	caseRepo repository.CaseRepository,
	auditRepo repository.AuditRepository,
) error) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return mapError("begin tx", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(NewCaseRepository(tx), NewAuditRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return mapError("commit tx", err)
	}
	return nil
}
