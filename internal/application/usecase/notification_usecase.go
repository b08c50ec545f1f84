package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
	"github.com/tu-usuario/ventas-api/pkg/logger"
)

// NotificationUseCase genera y consulta notificaciones de sistema. La
// generación corre al consultar el listado: detecta productos agotados, stock
// bajo agregado y garantías vencidas, y avisa a todos los administradores sin
// duplicar avisos ya emitidos.
type NotificationUseCase struct {
	txRunner          MaintenanceTxRunner
	notifRepo         repository.NotificationRepository
	userRepo          repository.UserRepository
	lowStockThreshold int64
	log               *logger.Logger
}

// NewNotificationUseCase construye el caso de uso de notificaciones.
func NewNotificationUseCase(
	txRunner MaintenanceTxRunner,
	notifRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	lowStockThreshold int64,
	log *logger.Logger,
) *NotificationUseCase {
	return &NotificationUseCase{
		txRunner:          txRunner,
		notifRepo:         notifRepo,
		userRepo:          userRepo,
		lowStockThreshold: lowStockThreshold,
		log:               log,
	}
}

// ListForUser genera las notificaciones de sistema pendientes y retorna las
// del usuario, más recientes primero.
func (uc *NotificationUseCase) ListForUser(ctx context.Context, userID string, limit int) ([]dto.NotificationResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if err := uc.generateSystemNotifications(ctx); err != nil {
		// La generación es mejor-esfuerzo: un fallo no debe ocultar las
		// notificaciones ya persistidas.
		uc.log.Warn().Err(err).Msg("fallo generando notificaciones de sistema")
	}
	notifications, err := uc.notifRepo.ListByUser(userID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, dto.NotificationResponse{
			ID:        n.ID,
			Message:   n.Message,
			Type:      n.Type,
			Link:      n.Link,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}
	return out, nil
}

// UnreadCount retorna cuántas notificaciones no leídas tiene el usuario.
func (uc *NotificationUseCase) UnreadCount(userID string) (*dto.UnreadCountResponse, error) {
	count, err := uc.notifRepo.UnreadCount(userID)
	if err != nil {
		return nil, err
	}
	return &dto.UnreadCountResponse{Count: count}, nil
}

// MarkRead marca como leída una notificación del usuario.
func (uc *NotificationUseCase) MarkRead(id, userID string) error {
	return uc.notifRepo.MarkRead(id, userID)
}

// generateSystemNotifications corre las tres detecciones en una transacción.
// Los destinatarios son todos los administradores activos.
func (uc *NotificationUseCase) generateSystemNotifications(ctx context.Context) error {
	adminIDs, err := uc.userRepo.ListAdminIDs()
	if err != nil {
		return err
	}
	if len(adminIDs) == 0 {
		return nil
	}

	return uc.txRunner.RunMaintenance(ctx, func(
		productRepo repository.ProductRepository,
		warrantyRepo repository.WarrantyRepository,
		notifRepo repository.NotificationRepository,
	) error {
		if err := uc.notifyOutOfStock(productRepo, notifRepo, adminIDs); err != nil {
			return err
		}
		if err := uc.notifyLowStock(productRepo, notifRepo, adminIDs); err != nil {
			return err
		}
		return uc.notifyExpiredWarranties(warrantyRepo, notifRepo, adminIDs)
	})
}

// notifyOutOfStock crea un aviso por cada producto agotado, una sola vez por
// producto y administrador.
func (uc *NotificationUseCase) notifyOutOfStock(
	productRepo repository.ProductRepository,
	notifRepo repository.NotificationRepository,
	adminIDs []string,
) error {
	products, err := productRepo.ListOutOfStock()
	if err != nil {
		return err
	}
	for _, p := range products {
		link := "/products/" + p.ID
		message := fmt.Sprintf("El producto %q está agotado", p.Name)
		for _, adminID := range adminIDs {
			existing, err := notifRepo.FindExisting(adminID, link, entity.NotificationTypeError)
			if err != nil {
				return err
			}
			if existing != nil {
				continue
			}
			if err := notifRepo.Create(&entity.Notification{
				ID:        uuid.New().String(),
				UserID:    adminID,
				Message:   message,
				Type:      entity.NotificationTypeError,
				Link:      link,
				CreatedAt: time.Now(),
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

// notifyLowStock mantiene un único aviso agregado por administrador con el
// conteo de productos bajo el umbral; si el conteo cambia, se actualiza el
// mensaje y el aviso vuelve a quedar no leído.
func (uc *NotificationUseCase) notifyLowStock(
	productRepo repository.ProductRepository,
	notifRepo repository.NotificationRepository,
	adminIDs []string,
) error {
	count, err := productRepo.CountLowStock(uc.lowStockThreshold)
	if err != nil {
		return err
	}
	if count == 0 {
		return nil
	}
	const link = "/products?low_stock=1"
	message := fmt.Sprintf("Hay %d productos con stock bajo", count)
	for _, adminID := range adminIDs {
		existing, err := notifRepo.FindExisting(adminID, link, entity.NotificationTypeWarning)
		if err != nil {
			return err
		}
		if existing != nil {
			if existing.Message != message {
				if err := notifRepo.UpdateMessage(existing.ID, message); err != nil {
					return err
				}
			}
			continue
		}
		if err := notifRepo.Create(&entity.Notification{
			ID:        uuid.New().String(),
			UserID:    adminID,
			Message:   message,
			Type:      entity.NotificationTypeWarning,
			Link:      link,
			CreatedAt: time.Now(),
		}); err != nil {
			return err
		}
	}
	return nil
}

// notifyExpiredWarranties marca como vencidas las garantías activas cuya fecha
// de fin pasó y avisa a los administradores.
func (uc *NotificationUseCase) notifyExpiredWarranties(
	warrantyRepo repository.WarrantyRepository,
	notifRepo repository.NotificationRepository,
	adminIDs []string,
) error {
	expired, err := warrantyRepo.ListExpired(time.Now())
	if err != nil {
		return err
	}
	for _, w := range expired {
		if err := warrantyRepo.UpdateStatus(w.ID, entity.WarrantyStatusExpired); err != nil {
			return err
		}
		link := "/warranties/" + w.ID
		message := fmt.Sprintf("La garantía del producto %q venció el %s", w.ProductName, w.EndDate.Format("2006-01-02"))
		for _, adminID := range adminIDs {
			existing, err := notifRepo.FindExisting(adminID, link, entity.NotificationTypeInfo)
			if err != nil {
				return err
			}
			if existing != nil {
				continue
			}
			if err := notifRepo.Create(&entity.Notification{
				ID:        uuid.New().String(),
				UserID:    adminID,
				Message:   message,
				Type:      entity.NotificationTypeInfo,
				Link:      link,
				CreatedAt: time.Now(),
			}); err != nil {
				return err
			}
		}
	}
	return nil
}
