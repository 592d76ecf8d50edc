package entity

import "time"

// Papéis válidos para User.
const (
	RoleAdmin    = "admin"
	RoleGestor   = "gestor"
	RoleConsulta = "consulta"
)

// User representa um usuário do sistema (pertence a um tenant/órgão).
type User struct {
	ID           string
	TenantID     string
	Email        string
	PasswordHash string // hash bcrypt, nunca plano no domínio após persistir
	Name         string
	Role         string // admin, gestor, consulta
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
