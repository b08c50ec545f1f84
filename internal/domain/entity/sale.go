package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta con sus renglones. TotalAmount es derivado:
// siempre igual a la suma de los ItemTotal de sus items.
type Sale struct {
	ID          string
	CustomerID  *string
	Notes       string
	TotalAmount decimal.Decimal
	SaleDate    time.Time
	Items       []SaleItem

	// CustomerName viene del JOIN con customers en las lecturas.
	CustomerName string
}

// SaleItem renglón de una venta. Cada item implica una reserva de stock
// contra su producto que debe revertirse exactamente una vez al eliminarse.
type SaleItem struct {
	ID        string
	SaleID    string
	ProductID string
	Quantity  int64
	UnitPrice decimal.Decimal
	ItemTotal decimal.Decimal

	// ProductName viene del JOIN con products en las lecturas.
	ProductName string
}

// ComputeItemTotal calcula quantity × unit_price.
func ComputeItemTotal(quantity int64, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(quantity))
}

// ComputeSaleTotal suma los totales de los renglones.
func ComputeSaleTotal(items []SaleItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.ItemTotal)
	}
	return total
}
