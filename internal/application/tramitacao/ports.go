package tramitacao

import (
	"context"

	"github.com/seplan-goias/tramita-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Garante que processo, movimentações e trilha
// de auditoria sejam gravados atomicamente: se o store falhar, nada do estado
// em memória confirmado pelo motor reflete a escrita parcial.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		caseRepo repository.CaseRepository,
		auditRepo repository.AuditRepository,
	) error) error
}
