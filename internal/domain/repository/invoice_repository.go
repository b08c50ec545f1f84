package repository

import "github.com/tu-usuario/ventas-api/internal/domain/entity"

// InvoiceRepository puerto de persistencia de facturas.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	CreateItem(item *entity.InvoiceItem) error
	GetByID(id string) (*entity.Invoice, error) // incluye items y nombre del cliente
	GetBySaleID(saleID string) (*entity.Invoice, error)
	Update(invoice *entity.Invoice) error
	DeleteItems(invoiceID string) error
	Delete(id string) error
	List(search string, limit, offset int) ([]*entity.Invoice, int, error)
}
