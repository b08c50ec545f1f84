package entity

import "time"

// Tipos de notificación.
const (
	NotificationTypeError   = "error"   // producto agotado
	NotificationTypeWarning = "warning" // bajo stock
	NotificationTypeInfo    = "info"    // garantía expirada
)

// Notification notificación de sistema dirigida a un usuario.
type Notification struct {
	ID        string
	UserID    string
	Message   string
	Type      string
	Link      string
	IsRead    bool
	CreatedAt time.Time
}
