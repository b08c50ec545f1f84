package entity

import "time"

// Customer representa un cliente del negocio.
type Customer struct {
	ID        string
	Name      string
	TaxID     string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
