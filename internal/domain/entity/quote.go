package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una cotización.
const (
	QuoteStatusDraft    = "draft"
	QuoteStatusSent     = "sent"
	QuoteStatusAccepted = "accepted"
	QuoteStatusRejected = "rejected"
)

// Quote representa una cotización. No afecta stock.
type Quote struct {
	ID          string
	CustomerID  *string
	QuoteDate   time.Time
	ValidUntil  *time.Time
	TotalAmount decimal.Decimal
	Notes       string
	Status      string
	Items       []QuoteItem

	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}

// QuoteItem renglón de una cotización, con nota opcional por línea.
type QuoteItem struct {
	ID        string
	QuoteID   string
	ProductID string
	Quantity  int64
	UnitPrice decimal.Decimal
	ItemTotal decimal.Decimal
	Notes     string

	ProductName string
}
