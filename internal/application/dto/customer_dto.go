package dto

// CustomerInput datos para crear o actualizar un cliente.
type CustomerInput struct {
	Name    string `json:"name"`
	TaxID   string `json:"tax_id"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CustomerResponse representación de un cliente.
type CustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	TaxID   string `json:"tax_id,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// CustomerListResponse listado paginado de clientes.
type CustomerListResponse struct {
	Data       []CustomerResponse `json:"data"`
	Pagination Pagination         `json:"pagination"`
}
