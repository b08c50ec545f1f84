package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemInput renglón de venta recibido del cliente HTTP.
type SaleItemInput struct {
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// SaleInput datos para crear o actualizar una venta.
type SaleInput struct {
	CustomerID *string         `json:"customer_id"`
	Notes      string          `json:"notes"`
	Items      []SaleItemInput `json:"items"`
}

// ListSalesRequest filtros del listado de ventas.
type ListSalesRequest struct {
	PageRequest
	Search string `query:"search"`
}

// SaleItemResponse renglón de venta con el nombre del producto.
type SaleItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	ItemTotal   decimal.Decimal `json:"item_total"`
}

// SaleResponse venta completa con renglones y nombre del cliente.
type SaleResponse struct {
	ID           string             `json:"id"`
	CustomerID   *string            `json:"customer_id,omitempty"`
	CustomerName string             `json:"customer_name,omitempty"`
	Notes        string             `json:"notes,omitempty"`
	TotalAmount  decimal.Decimal    `json:"total_amount"`
	SaleDate     time.Time          `json:"sale_date"`
	Items        []SaleItemResponse `json:"items"`
}

// SaleListResponse listado paginado de ventas.
type SaleListResponse struct {
	Data       []SaleResponse `json:"data"`
	Pagination Pagination     `json:"pagination"`
}
