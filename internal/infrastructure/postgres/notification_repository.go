package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación de NotificationRepository (usable con pool o tx).
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Create persiste una notificación.
func (r *NotificationRepo) Create(n *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, message, type, link, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		n.ID, n.UserID, n.Message, n.Type, nullIfEmpty(n.Link), n.IsRead, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// FindExisting busca una notificación del usuario con el mismo link y tipo.
func (r *NotificationRepo) FindExisting(userID, link, notifType string) (*entity.Notification, error) {
	query := `
		SELECT id, user_id, message, type, COALESCE(link, ''), is_read, created_at
		FROM notifications
		WHERE user_id = $1 AND link = $2 AND type = $3
		ORDER BY created_at DESC
		LIMIT 1`
	var n entity.Notification
	err := r.q.QueryRow(context.Background(), query, userID, link, notifType).Scan(
		&n.ID, &n.UserID, &n.Message, &n.Type, &n.Link, &n.IsRead, &n.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find notification: %w", err)
	}
	return &n, nil
}

// UpdateMessage reemplaza el mensaje y vuelve a marcar la notificación como no leída.
func (r *NotificationRepo) UpdateMessage(id, message string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE notifications SET message = $2, is_read = FALSE WHERE id = $1`,
		id, message,
	)
	if err != nil {
		return fmt.Errorf("update notification: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByUser lista las notificaciones del usuario, más recientes primero.
func (r *NotificationRepo) ListByUser(userID string, limit int) ([]*entity.Notification, error) {
	query := `
		SELECT id, user_id, message, type, COALESCE(link, ''), is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.Type, &n.Link, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// UnreadCount cuenta las notificaciones no leídas del usuario.
func (r *NotificationRepo) UnreadCount(userID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = FALSE`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return count, nil
}

// MarkRead marca como leída una notificación, solo si pertenece al usuario.
func (r *NotificationRepo) MarkRead(id, userID string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
