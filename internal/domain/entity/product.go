package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo con precios por rol.
// Stock es la cantidad disponible; solo el subsistema de ventas la descuenta.
type Product struct {
	ID                string
	Name              string
	Description       string
	Stock             int64
	Condition         string // "nuevo" | "usado" | "reacondicionado"
	Cost              decimal.Decimal
	PriceClient       decimal.Decimal
	PriceWholesale    decimal.Decimal
	PriceTechnician   decimal.Decimal
	ProviderID        *string
	ImagePath         string
	EntryDate         *time.Time
	WarrantyExpiresOn *time.Time
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// ProviderName viene del JOIN con providers en las lecturas.
	ProviderName string
}

// priceByRole tabla explícita rol -> selector de precio. El rol admin no aparece:
// ve las tres columnas completas en lugar de un precio resuelto.
var priceByRole = map[string]func(*Product) decimal.Decimal{
	RoleVendedor: func(p *Product) decimal.Decimal { return p.PriceWholesale },
}

// PriceForRole resuelve el precio visible para un rol no-admin.
// Roles sin entrada en la tabla reciben el precio de cliente final.
func (p *Product) PriceForRole(role string) decimal.Decimal {
	if sel, ok := priceByRole[role]; ok {
		return sel(p)
	}
	return p.PriceClient
}
