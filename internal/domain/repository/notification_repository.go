package repository

import "github.com/tu-usuario/ventas-api/internal/domain/entity"

// NotificationRepository puerto de persistencia de notificaciones.
type NotificationRepository interface {
	Create(n *entity.Notification) error

	// FindExisting busca una notificación del usuario con el mismo link y tipo
	// (para no duplicar avisos recurrentes). Retorna nil si no existe.
	FindExisting(userID, link, notifType string) (*entity.Notification, error)

	// UpdateMessage reemplaza el mensaje y marca la notificación como no leída.
	UpdateMessage(id, message string) error

	ListByUser(userID string, limit int) ([]*entity.Notification, error)
	UnreadCount(userID string) (int, error)
	MarkRead(id, userID string) error
}
