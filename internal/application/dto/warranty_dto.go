package dto

import "time"

// WarrantyInput datos para crear o actualizar una garantía.
type WarrantyInput struct {
	ProductID  string    `json:"product_id"`
	CustomerID *string   `json:"customer_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Notes      string    `json:"notes"`
	Status     string    `json:"status"`
}

// UpdateWarrantyStatusRequest cambio de estado de una garantía.
type UpdateWarrantyStatusRequest struct {
	Status string `json:"status"`
}

// WarrantyResponse garantía con nombres de producto y cliente.
type WarrantyResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	ProductName  string    `json:"product_name"`
	CustomerID   *string   `json:"customer_id,omitempty"`
	CustomerName string    `json:"customer_name,omitempty"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Notes        string    `json:"notes,omitempty"`
	Status       string    `json:"status"`
}

// WarrantyListResponse listado paginado de garantías.
type WarrantyListResponse struct {
	Data       []WarrantyResponse `json:"data"`
	Pagination Pagination         `json:"pagination"`
}
