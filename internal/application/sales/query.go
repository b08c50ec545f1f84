package sales

import (
	"context"

	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
	"github.com/tu-usuario/ventas-api/pkg/textutil"
)

// Get obtiene una venta con sus renglones y el nombre del cliente.
func (uc *SaleUseCase) Get(_ context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(sale), nil
}

// List lista ventas paginadas, filtradas por subcadena sobre nombre de cliente
// y nombres de producto de los renglones.
func (uc *SaleUseCase) List(_ context.Context, in dto.ListSalesRequest) (*dto.SaleListResponse, error) {
	in.Normalize()
	sales, total, err := uc.saleRepo.List(repository.ListSalesParams{
		Search: textutil.FoldSearch(in.Search),
		Limit:  in.Limit,
		Offset: in.Offset(),
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{
		Data:       out,
		Pagination: dto.NewPagination(total, in.Page, in.Limit),
	}, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:           s.ID,
		CustomerID:   s.CustomerID,
		CustomerName: s.CustomerName,
		Notes:        s.Notes,
		TotalAmount:  s.TotalAmount,
		SaleDate:     s.SaleDate,
		Items:        make([]dto.SaleItemResponse, 0, len(s.Items)),
	}
	for _, it := range s.Items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			ItemTotal:   it.ItemTotal,
		})
	}
	return resp
}
