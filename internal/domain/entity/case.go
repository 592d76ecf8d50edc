package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de emenda orçamentária.
const (
	CaseTypeImpositiva            = "Impositiva"
	CaseTypeGoiasEmCrescimento    = "Goiás em Crescimento"
	CaseTypeRecursoProprio        = "Recurso Próprio"
	CaseTypeTransferenciaEspecial = "Transferência Especial"
)

// Prioridades de tramitação.
const (
	PriorityNormal       = "NORMAL"
	PriorityUrgente      = "URGENTE"
	PriorityUrgentissimo = "URGENTISSIMO"
)

// CurrentUnitSeparator une os nomes das unidades quando o processo é
// tramitado para vários destinos ao mesmo tempo (fan-out).
const CurrentUnitSeparator = " / "

// Case representa um processo administrativo de emenda orçamentária.
// Movements é append-only na operação normal; só a edição retroativa
// (privilegiada e auditada) reescreve o histórico.
type Case struct {
	ID           string
	TenantID     string
	SEI          string // número do processo SEI
	Type         string
	Value        decimal.Decimal // valor da emenda, nunca negativo
	Municipality string
	AuthorName   string
	Object       string // descrição do objeto da emenda
	Status       string // rótulo livre, casado contra StatusDef.Name
	CurrentUnit  string // unidade(s) atual(is); fan-out usa CurrentUnitSeparator
	Movements    []Movement
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// LastMovement devolve a última movimentação do histórico (ordem de append),
// ou nil se o processo ainda aguarda a primeira tramitação. É a movimentação
// usada para o selo de SLA e para a lista de urgência.
func (c *Case) LastMovement() *Movement {
	if len(c.Movements) == 0 {
		return nil
	}
	return &c.Movements[len(c.Movements)-1]
}

// ValidCaseType informa se o tipo de emenda pertence à enumeração fixa.
func ValidCaseType(t string) bool {
	switch t {
	case CaseTypeImpositiva, CaseTypeGoiasEmCrescimento, CaseTypeRecursoProprio, CaseTypeTransferenciaEspecial:
		return true
	}
	return false
}
