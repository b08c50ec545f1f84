package repository

import "github.com/tu-usuario/ventas-api/internal/domain/entity"

// ListSalesParams paginación y filtro para el listado de ventas.
// Search aplica sobre nombre de cliente y nombres de producto de los renglones.
type ListSalesParams struct {
	Search string
	Limit  int
	Offset int
}

// SaleRepository puerto de persistencia de ventas y sus renglones.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	GetByID(id string) (*entity.Sale, error) // incluye items y nombres de cliente/producto
	UpdateHeader(sale *entity.Sale) error
	DeleteItems(saleID string) error
	Delete(id string) error
	List(params ListSalesParams) ([]*entity.Sale, int, error)
}
