package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteItemInput renglón de cotización.
type QuoteItemInput struct {
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Notes     string          `json:"notes"`
}

// QuoteInput datos para crear o actualizar una cotización.
type QuoteInput struct {
	CustomerID *string          `json:"customer_id"`
	ValidUntil *time.Time       `json:"valid_until"`
	Notes      string           `json:"notes"`
	Status     string           `json:"status"`
	Items      []QuoteItemInput `json:"items"`
}

// QuoteItemResponse renglón con nombre de producto.
type QuoteItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	ItemTotal   decimal.Decimal `json:"item_total"`
	Notes       string          `json:"notes,omitempty"`
}

// QuoteResponse cotización completa.
type QuoteResponse struct {
	ID            string              `json:"id"`
	CustomerID    *string             `json:"customer_id,omitempty"`
	CustomerName  string              `json:"customer_name,omitempty"`
	CustomerEmail string              `json:"customer_email,omitempty"`
	CustomerPhone string              `json:"customer_phone,omitempty"`
	QuoteDate     time.Time           `json:"quote_date"`
	ValidUntil    *time.Time          `json:"valid_until,omitempty"`
	TotalAmount   decimal.Decimal     `json:"total_amount"`
	Notes         string              `json:"notes,omitempty"`
	Status        string              `json:"status"`
	Items         []QuoteItemResponse `json:"items"`
}

// QuoteListResponse listado paginado de cotizaciones.
type QuoteListResponse struct {
	Data       []QuoteResponse `json:"data"`
	Pagination Pagination      `json:"pagination"`
}
