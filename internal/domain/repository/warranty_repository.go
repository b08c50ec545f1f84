package repository

import (
	"time"

	"github.com/tu-usuario/ventas-api/internal/domain/entity"
)

// WarrantyRepository puerto de persistencia de garantías.
type WarrantyRepository interface {
	Create(warranty *entity.Warranty) error
	GetByID(id string) (*entity.Warranty, error)
	Update(warranty *entity.Warranty) error
	UpdateStatus(id, status string) error
	Delete(id string) error
	List(search string, limit, offset int) ([]*entity.Warranty, int, error)

	// ListExpired retorna garantías activas cuya fecha de fin ya pasó.
	ListExpired(now time.Time) ([]*entity.Warranty, error)
}
