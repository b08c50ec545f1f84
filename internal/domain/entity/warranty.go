package entity

import "time"

// Estados de una garantía.
const (
	WarrantyStatusActive  = "activa"
	WarrantyStatusClaimed = "reclamada"
	WarrantyStatusExpired = "vencida"
)

// Warranty representa una garantía asociada a un producto (y opcionalmente a un cliente).
type Warranty struct {
	ID         string
	ProductID  string
	CustomerID *string
	StartDate  time.Time
	EndDate    time.Time
	Notes      string
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	ProductName  string
	CustomerName string
}

// ValidWarrantyStatus verifica que el estado sea uno de los soportados.
func ValidWarrantyStatus(s string) bool {
	return s == WarrantyStatusActive || s == WarrantyStatusClaimed || s == WarrantyStatusExpired
}
