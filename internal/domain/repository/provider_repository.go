package repository

import "github.com/tu-usuario/ventas-api/internal/domain/entity"

// ProviderRepository puerto de persistencia de proveedores.
type ProviderRepository interface {
	Create(provider *entity.Provider) error
	GetByID(id string) (*entity.Provider, error)
	Update(provider *entity.Provider) error
	Delete(id string) error
	List() ([]*entity.Provider, error)
}
