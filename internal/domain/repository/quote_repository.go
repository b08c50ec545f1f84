package repository

import "github.com/tu-usuario/ventas-api/internal/domain/entity"

// QuoteRepository puerto de persistencia de cotizaciones y sus renglones.
type QuoteRepository interface {
	Create(quote *entity.Quote) error
	CreateItem(item *entity.QuoteItem) error
	GetByID(id string) (*entity.Quote, error) // incluye items y datos del cliente
	UpdateHeader(quote *entity.Quote) error
	DeleteItems(quoteID string) error
	Delete(id string) error
	List(search string, limit, offset int) ([]*entity.Quote, int, error)
}
