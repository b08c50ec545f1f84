package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura.
const (
	InvoiceStatusPaid   = "paid"
	InvoiceStatusUnpaid = "unpaid"
)

// Invoice representa una factura generada a partir de una venta.
// Existe a lo sumo una factura por venta.
type Invoice struct {
	ID          string
	SaleID      string
	CustomerID  *string
	InvoiceDate time.Time
	TotalAmount decimal.Decimal
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Items       []InvoiceItem

	CustomerName string
}

// InvoiceItem renglón de factura, copiado de los items de la venta al generarla.
type InvoiceItem struct {
	ID        string
	InvoiceID string
	ProductID string
	Quantity  int64
	UnitPrice decimal.Decimal
	ItemTotal decimal.Decimal

	ProductName string
}
