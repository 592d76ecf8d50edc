package entity

import "time"

// Ações auditáveis.
const (
	AuditActionCreate   = "CREATE"
	AuditActionUpdate   = "UPDATE"
	AuditActionDelete   = "DELETE"
	AuditActionMove     = "MOVE"
	AuditActionSecurity = "SECURITY"
)

// Severidades de auditoria.
const (
	AuditSeverityInfo     = "INFO"
	AuditSeverityWarn     = "WARN"
	AuditSeverityCritical = "CRITICAL"
)

// AuditEntry registro imutável e append-only de quem fez o quê.
// Nunca é alterado nem excluído; não está sujeito à trava de status final.
type AuditEntry struct {
	ID        string
	TenantID  string
	ActorID   string
	ActorName string
	Action    string // CREATE, UPDATE, DELETE, MOVE, SECURITY
	Details   string // texto livre (inclui justificativas de exclusão)
	Severity  string // INFO, WARN, CRITICAL
	Timestamp time.Time
}
