package repository

import "github.com/tu-usuario/ventas-api/internal/domain/entity"

// UserRepository puerto de persistencia de usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByUsername(username string) (*entity.User, error)

	// ListAdminIDs retorna los IDs de usuarios activos con rol admin
	// (destinatarios de las notificaciones de sistema).
	ListAdminIDs() ([]string, error)
}
