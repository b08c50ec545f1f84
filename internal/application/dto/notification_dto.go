package dto

import "time"

// NotificationResponse notificación visible para el usuario.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Link      string    `json:"link,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// UnreadCountResponse conteo de notificaciones no leídas.
type UnreadCountResponse struct {
	Count int `json:"count"`
}
