package dto

// PageRequest paginación para listados (page es 1-based como en el frontend).
type PageRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// Normalize aplica valores por defecto y límites.
func (p *PageRequest) Normalize() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 10
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

// Offset calcula el desplazamiento a partir de página y límite.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ListRequest paginación + búsqueda por subcadena, común a varios listados.
type ListRequest struct {
	PageRequest
	Search string `query:"search"`
}

// Pagination metadatos de página en respuestas de listado.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// NewPagination calcula los metadatos, incluido el número de páginas.
func NewPagination(total, page, limit int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{Total: total, Page: page, Limit: limit, TotalPages: totalPages}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse confirmación simple de una operación.
type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
