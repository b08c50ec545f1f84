package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockItem producto bajo el umbral de stock.
type LowStockItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Stock int64  `json:"stock"`
}

// InventoryReportResponse reporte de inventario: bajo stock y valor total al costo.
type InventoryReportResponse struct {
	LowStockItems       []LowStockItem  `json:"low_stock_items"`
	TotalInventoryValue decimal.Decimal `json:"total_inventory_value"`
	GeneratedAt         time.Time       `json:"generated_at"`
}

// SalesReportResponse reporte de ventas recientes.
type SalesReportResponse struct {
	Sales       []SaleResponse  `json:"sales"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	GeneratedAt time.Time       `json:"generated_at"`
}
