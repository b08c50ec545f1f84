package entity

import "time"

// Provider representa un proveedor de productos.
type Provider struct {
	ID            string
	Name          string
	ContactPerson string
	Phone         string
	Email         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
