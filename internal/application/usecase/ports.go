package usecase

import (
	"context"

	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

// QuoteTxRunner transacción para crear/actualizar cotizaciones con sus renglones.
type QuoteTxRunner interface {
	RunQuotes(ctx context.Context, fn func(quoteRepo repository.QuoteRepository) error) error
}

// MaintenanceTxRunner transacción para la generación de notificaciones de
// sistema (lecturas de productos/garantías + escrituras de notificaciones).
type MaintenanceTxRunner interface {
	RunMaintenance(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		warrantyRepo repository.WarrantyRepository,
		notifRepo repository.NotificationRepository,
	) error) error
}
