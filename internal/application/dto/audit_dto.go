package dto

import "time"

// AuditEntryDTO registro de auditoria serializado.
type AuditEntryDTO struct {
	ID        string    `json:"id"`
	ActorID   string    `json:"actor_id"`
	ActorName string    `json:"actor_name"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	Severity  string    `json:"severity"`
	Timestamp time.Time `json:"timestamp"`
}
