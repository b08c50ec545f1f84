package usecase

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

// ReportUseCase reportes de solo lectura para administradores.
type ReportUseCase struct {
	productRepo       repository.ProductRepository
	saleRepo          repository.SaleRepository
	lowStockThreshold int64
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(productRepo repository.ProductRepository, saleRepo repository.SaleRepository, lowStockThreshold int64) *ReportUseCase {
	return &ReportUseCase{productRepo: productRepo, saleRepo: saleRepo, lowStockThreshold: lowStockThreshold}
}

// Inventory arma el reporte de inventario: productos bajo el umbral de stock y
// el valor total del inventario activo a precio de costo.
func (uc *ReportUseCase) Inventory() (*dto.InventoryReportResponse, error) {
	lowStock, err := uc.productRepo.ListLowStock(uc.lowStockThreshold)
	if err != nil {
		return nil, err
	}
	totalValue, err := uc.productRepo.TotalInventoryValue()
	if err != nil {
		return nil, err
	}
	items := make([]dto.LowStockItem, 0, len(lowStock))
	for _, p := range lowStock {
		items = append(items, dto.LowStockItem{ID: p.ID, Name: p.Name, Stock: p.Stock})
	}
	return &dto.InventoryReportResponse{
		LowStockItems:       items,
		TotalInventoryValue: totalValue,
		GeneratedAt:         time.Now(),
	}, nil
}

// Sales arma el reporte de ventas recientes con el monto acumulado.
func (uc *ReportUseCase) Sales(in dto.ListRequest) (*dto.SalesReportResponse, error) {
	in.Normalize()
	sales, _, err := uc.saleRepo.List(repository.ListSalesParams{
		Limit:  in.Limit,
		Offset: in.Offset(),
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	total := decimal.Zero
	for _, s := range sales {
		items := make([]dto.SaleItemResponse, 0, len(s.Items))
		for _, it := range s.Items {
			items = append(items, dto.SaleItemResponse{
				ID:          it.ID,
				ProductID:   it.ProductID,
				ProductName: it.ProductName,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
				ItemTotal:   it.ItemTotal,
			})
		}
		out = append(out, dto.SaleResponse{
			ID:           s.ID,
			CustomerID:   s.CustomerID,
			CustomerName: s.CustomerName,
			Notes:        s.Notes,
			TotalAmount:  s.TotalAmount,
			SaleDate:     s.SaleDate,
			Items:        items,
		})
		total = total.Add(s.TotalAmount)
	}
	return &dto.SalesReportResponse{
		Sales:       out,
		TotalAmount: total,
		GeneratedAt: time.Now(),
	}, nil
}
