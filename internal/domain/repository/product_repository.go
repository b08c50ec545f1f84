package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
)

// ListProductsParams filtros y orden para el listado de productos.
// Search ya debe venir normalizado (case folding) por la capa de aplicación.
type ListProductsParams struct {
	Search            string
	OnlyLowStock      bool
	LowStockThreshold int64
	StockOrder        string // "ASC" | "DESC" | ""
	PriceOrder        string // "ASC" | "DESC" | ""
	Limit             int
	Offset            int
}

// ProductRepository puerto de persistencia de productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateImagePath(id, imagePath string) error
	Deactivate(id string) error
	List(params ListProductsParams) ([]*entity.Product, int, error)

	// Consultas de reportes y notificaciones.
	ListLowStock(threshold int64) ([]*entity.Product, error)
	ListOutOfStock() ([]*entity.Product, error)
	CountLowStock(threshold int64) (int, error)
	TotalInventoryValue() (decimal.Decimal, error)
}
