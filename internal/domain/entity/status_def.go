package entity

import "time"

// StatusDef um nó do fluxo de tramitação.
type StatusDef struct {
	ID        string
	TenantID  string
	Name      string // único por tenant
	Color     string // apresentação apenas
	IsFinal   bool   // true trava o processo que alcançar este status
	Position  int    // ordem de exibição; o primeiro é o status inicial
	CreatedAt time.Time
	UpdatedAt time.Time
}
