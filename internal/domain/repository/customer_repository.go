package repository

import "github.com/tu-usuario/ventas-api/internal/domain/entity"

// CustomerRepository puerto de persistencia de clientes.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
	List(search string, limit, offset int) ([]*entity.Customer, int, error)
}
