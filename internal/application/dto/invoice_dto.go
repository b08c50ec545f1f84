package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdateInvoiceRequest campos editables de una factura.
type UpdateInvoiceRequest struct {
	CustomerID  *string          `json:"customer_id"`
	InvoiceDate *time.Time       `json:"invoice_date"`
	TotalAmount *decimal.Decimal `json:"total_amount"`
	Status      string           `json:"status"`
}

// InvoiceItemResponse renglón de factura con nombre de producto.
type InvoiceItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	ItemTotal   decimal.Decimal `json:"item_total"`
}

// InvoiceResponse factura completa.
type InvoiceResponse struct {
	ID           string                `json:"id"`
	SaleID       string                `json:"sale_id"`
	CustomerID   *string               `json:"customer_id,omitempty"`
	CustomerName string                `json:"customer_name,omitempty"`
	InvoiceDate  time.Time             `json:"invoice_date"`
	TotalAmount  decimal.Decimal       `json:"total_amount"`
	Status       string                `json:"status"`
	Items        []InvoiceItemResponse `json:"items"`
}

// InvoiceListResponse listado paginado de facturas.
type InvoiceListResponse struct {
	Data       []InvoiceResponse `json:"data"`
	Pagination Pagination        `json:"pagination"`
}
