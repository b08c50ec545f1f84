package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

// ProviderUseCase CRUD de proveedores. Solo accesible para administradores.
type ProviderUseCase struct {
	providerRepo repository.ProviderRepository
}

// NewProviderUseCase construye el caso de uso de proveedores.
func NewProviderUseCase(providerRepo repository.ProviderRepository) *ProviderUseCase {
	return &ProviderUseCase{providerRepo: providerRepo}
}

// Create registra un proveedor.
func (uc *ProviderUseCase) Create(in dto.ProviderInput) (*dto.ProviderResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	provider := &entity.Provider{
		ID:            uuid.New().String(),
		Name:          strings.TrimSpace(in.Name),
		ContactPerson: in.ContactPerson,
		Phone:         in.Phone,
		Email:         in.Email,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.providerRepo.Create(provider); err != nil {
		return nil, err
	}
	return toProviderResponse(provider), nil
}

// Get obtiene un proveedor por ID.
func (uc *ProviderUseCase) Get(id string) (*dto.ProviderResponse, error) {
	provider, err := uc.providerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, domain.ErrNotFound
	}
	return toProviderResponse(provider), nil
}

// Update modifica un proveedor existente.
func (uc *ProviderUseCase) Update(id string, in dto.ProviderInput) (*dto.ProviderResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	provider, err := uc.providerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, domain.ErrNotFound
	}
	provider.Name = strings.TrimSpace(in.Name)
	provider.ContactPerson = in.ContactPerson
	provider.Phone = in.Phone
	provider.Email = in.Email
	provider.UpdatedAt = time.Now()
	if err := uc.providerRepo.Update(provider); err != nil {
		return nil, err
	}
	return toProviderResponse(provider), nil
}

// Delete elimina un proveedor. Los productos que lo referencian quedan con
// provider_id en NULL (ON DELETE SET NULL en el esquema).
func (uc *ProviderUseCase) Delete(id string) error {
	return uc.providerRepo.Delete(id)
}

// List retorna todos los proveedores ordenados por nombre.
func (uc *ProviderUseCase) List() ([]dto.ProviderResponse, error) {
	providers, err := uc.providerRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProviderResponse, 0, len(providers))
	for _, p := range providers {
		out = append(out, *toProviderResponse(p))
	}
	return out, nil
}

func toProviderResponse(p *entity.Provider) *dto.ProviderResponse {
	return &dto.ProviderResponse{
		ID:            p.ID,
		Name:          p.Name,
		ContactPerson: p.ContactPerson,
		Phone:         p.Phone,
		Email:         p.Email,
	}
}
