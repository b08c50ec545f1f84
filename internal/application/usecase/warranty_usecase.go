package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
	"github.com/tu-usuario/ventas-api/pkg/textutil"
)

// WarrantyUseCase CRUD de garantías y cambio de estado.
type WarrantyUseCase struct {
	warrantyRepo repository.WarrantyRepository
}

// NewWarrantyUseCase construye el caso de uso de garantías.
func NewWarrantyUseCase(warrantyRepo repository.WarrantyRepository) *WarrantyUseCase {
	return &WarrantyUseCase{warrantyRepo: warrantyRepo}
}

func validateWarrantyInput(in dto.WarrantyInput) error {
	if in.ProductID == "" {
		return domain.ErrInvalidInput
	}
	if in.EndDate.Before(in.StartDate) {
		return domain.ErrInvalidInput
	}
	if in.Status != "" && !entity.ValidWarrantyStatus(in.Status) {
		return domain.ErrInvalidInput
	}
	return nil
}

// Create registra una garantía; el estado por defecto es "activa".
func (uc *WarrantyUseCase) Create(in dto.WarrantyInput) (*dto.WarrantyResponse, error) {
	if err := validateWarrantyInput(in); err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = entity.WarrantyStatusActive
	}
	now := time.Now()
	warranty := &entity.Warranty{
		ID:         uuid.New().String(),
		ProductID:  in.ProductID,
		CustomerID: in.CustomerID,
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
		Notes:      in.Notes,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.warrantyRepo.Create(warranty); err != nil {
		return nil, err
	}
	return uc.Get(warranty.ID)
}

// Get obtiene una garantía con nombres de producto y cliente.
func (uc *WarrantyUseCase) Get(id string) (*dto.WarrantyResponse, error) {
	warranty, err := uc.warrantyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warranty == nil {
		return nil, domain.ErrNotFound
	}
	return toWarrantyResponse(warranty), nil
}

// Update modifica una garantía existente.
func (uc *WarrantyUseCase) Update(id string, in dto.WarrantyInput) (*dto.WarrantyResponse, error) {
	if err := validateWarrantyInput(in); err != nil {
		return nil, err
	}
	warranty, err := uc.warrantyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warranty == nil {
		return nil, domain.ErrNotFound
	}
	warranty.ProductID = in.ProductID
	warranty.CustomerID = in.CustomerID
	warranty.StartDate = in.StartDate
	warranty.EndDate = in.EndDate
	warranty.Notes = in.Notes
	if in.Status != "" {
		warranty.Status = in.Status
	}
	warranty.UpdatedAt = time.Now()
	if err := uc.warrantyRepo.Update(warranty); err != nil {
		return nil, err
	}
	return uc.Get(id)
}

// UpdateStatus cambia solo el estado (activa/reclamada/vencida).
func (uc *WarrantyUseCase) UpdateStatus(id string, in dto.UpdateWarrantyStatusRequest) error {
	if !entity.ValidWarrantyStatus(in.Status) {
		return domain.ErrInvalidInput
	}
	return uc.warrantyRepo.UpdateStatus(id, in.Status)
}

// Delete elimina una garantía.
func (uc *WarrantyUseCase) Delete(id string) error {
	return uc.warrantyRepo.Delete(id)
}

// List lista garantías paginadas buscando por nombre de producto o cliente.
func (uc *WarrantyUseCase) List(in dto.ListRequest) (*dto.WarrantyListResponse, error) {
	in.Normalize()
	warranties, total, err := uc.warrantyRepo.List(textutil.FoldSearch(in.Search), in.Limit, in.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]dto.WarrantyResponse, 0, len(warranties))
	for _, w := range warranties {
		out = append(out, *toWarrantyResponse(w))
	}
	return &dto.WarrantyListResponse{
		Data:       out,
		Pagination: dto.NewPagination(total, in.Page, in.Limit),
	}, nil
}

func toWarrantyResponse(w *entity.Warranty) *dto.WarrantyResponse {
	return &dto.WarrantyResponse{
		ID:           w.ID,
		ProductID:    w.ProductID,
		ProductName:  w.ProductName,
		CustomerID:   w.CustomerID,
		CustomerName: w.CustomerName,
		StartDate:    w.StartDate,
		EndDate:      w.EndDate,
		Notes:        w.Notes,
		Status:       w.Status,
	}
}
