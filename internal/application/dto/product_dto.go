package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest datos para crear o actualizar un producto.
type CreateProductRequest struct {
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Stock             int64           `json:"stock"`
	Condition         string          `json:"condition"`
	Cost              decimal.Decimal `json:"cost"`
	PriceClient       decimal.Decimal `json:"price_client"`
	PriceWholesale    decimal.Decimal `json:"price_wholesale"`
	PriceTechnician   decimal.Decimal `json:"price_technician"`
	ProviderID        *string         `json:"provider_id"`
	EntryDate         *time.Time      `json:"entry_date"`
	WarrantyExpiresOn *time.Time      `json:"warranty_expires_on"`
}

// ListProductsRequest filtros del listado de productos.
type ListProductsRequest struct {
	PageRequest
	Search     string `query:"search"`
	LowStock   bool   `query:"low_stock"`
	StockOrder string `query:"stock_order"`
	PriceOrder string `query:"price_order"`
}

// ProductResponse vista completa (rol admin): incluye costo y las tres listas de precios.
type ProductResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Stock             int64           `json:"stock"`
	Condition         string          `json:"condition"`
	Cost              decimal.Decimal `json:"cost"`
	PriceClient       decimal.Decimal `json:"price_client"`
	PriceWholesale    decimal.Decimal `json:"price_wholesale"`
	PriceTechnician   decimal.Decimal `json:"price_technician"`
	ProviderID        *string         `json:"provider_id,omitempty"`
	ProviderName      string          `json:"provider_name,omitempty"`
	ImagePath         string          `json:"image_path,omitempty"`
	EntryDate         *time.Time      `json:"entry_date,omitempty"`
	WarrantyExpiresOn *time.Time      `json:"warranty_expires_on,omitempty"`
	IsActive          bool            `json:"is_active"`
}

// RolePricedProductResponse vista para roles no-admin: un único precio resuelto por rol.
type RolePricedProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Stock        int64           `json:"stock"`
	Condition    string          `json:"condition"`
	Price        decimal.Decimal `json:"price"`
	ImagePath    string          `json:"image_path,omitempty"`
	ProviderName string          `json:"provider_name,omitempty"`
}

// ProductListResponse listado paginado (data es ProductResponse o RolePricedProductResponse según rol).
type ProductListResponse struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// UpdateImageRequest ruta de la imagen ya subida.
type UpdateImageRequest struct {
	ImagePath string `json:"image_path"`
}
