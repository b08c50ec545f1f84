package entity

import "time"

// Roles de usuario de la aplicación.
const (
	RoleAdmin    = "admin"
	RoleVendedor = "vendedor"
)

// User representa un usuario del sistema (admin o vendedor).
type User struct {
	ID           string
	Username     string
	Name         string
	PasswordHash string
	Role         string // RoleAdmin | RoleVendedor
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidRole verifica que el rol sea uno de los soportados.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleVendedor
}
