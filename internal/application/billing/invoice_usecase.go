package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
	"github.com/tu-usuario/ventas-api/pkg/logger"
	"github.com/tu-usuario/ventas-api/pkg/textutil"
)

// InvoiceUseCase facturación: una factura se genera a partir de una venta
// existente, copiando sus renglones. Existe a lo sumo una factura por venta.
type InvoiceUseCase struct {
	txRunner    TxRunner
	invoiceRepo repository.InvoiceRepository
	log         *logger.Logger
}

// NewInvoiceUseCase construye el caso de uso de facturas. invoiceRepo (sobre
// el pool) se usa solo para lecturas y mutaciones de una sola sentencia.
func NewInvoiceUseCase(txRunner TxRunner, invoiceRepo repository.InvoiceRepository, log *logger.Logger) *InvoiceUseCase {
	return &InvoiceUseCase{txRunner: txRunner, invoiceRepo: invoiceRepo, log: log}
}

// GenerateFromSale crea la factura de una venta copiando cabecera y renglones.
// Retorna ErrDuplicate si la venta ya fue facturada y ErrNotFound si no existe.
func (uc *InvoiceUseCase) GenerateFromSale(ctx context.Context, saleID string) (*dto.InvoiceResponse, error) {
	if saleID == "" {
		return nil, domain.ErrInvalidInput
	}
	invoiceID := uuid.New().String()
	err := uc.txRunner.RunBilling(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		saleRepo repository.SaleRepository,
	) error {
		existing, err := invoiceRepo.GetBySaleID(saleID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
		sale, err := saleRepo.GetByID(saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		now := time.Now()
		invoice := &entity.Invoice{
			ID:          invoiceID,
			SaleID:      sale.ID,
			CustomerID:  sale.CustomerID,
			InvoiceDate: now,
			TotalAmount: sale.TotalAmount,
			Status:      entity.InvoiceStatusUnpaid,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := invoiceRepo.Create(invoice); err != nil {
			return err
		}
		for _, it := range sale.Items {
			if err := invoiceRepo.CreateItem(&entity.InvoiceItem{
				ID:        uuid.New().String(),
				InvoiceID: invoiceID,
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				UnitPrice: it.UnitPrice,
				ItemTotal: it.ItemTotal,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("invoice_id", invoiceID).Str("sale_id", saleID).Msg("factura generada")
	return uc.Get(invoiceID)
}

// Get obtiene una factura con renglones y nombre del cliente.
func (uc *InvoiceUseCase) Get(id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	return toInvoiceResponse(invoice), nil
}

// Update modifica los campos editables de una factura (fecha, cliente, estado,
// total). Los renglones no se editan: reflejan la venta de origen.
func (uc *InvoiceUseCase) Update(id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.Status != "" && in.Status != entity.InvoiceStatusPaid && in.Status != entity.InvoiceStatusUnpaid {
		return nil, domain.ErrInvalidInput
	}
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	if in.CustomerID != nil {
		invoice.CustomerID = in.CustomerID
	}
	if in.InvoiceDate != nil {
		invoice.InvoiceDate = *in.InvoiceDate
	}
	if in.TotalAmount != nil {
		invoice.TotalAmount = *in.TotalAmount
	}
	if in.Status != "" {
		invoice.Status = in.Status
	}
	invoice.UpdatedAt = time.Now()
	if err := uc.invoiceRepo.Update(invoice); err != nil {
		return nil, err
	}
	return uc.Get(id)
}

// Delete elimina una factura y sus renglones. La venta de origen no se toca.
func (uc *InvoiceUseCase) Delete(id string) error {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return domain.ErrNotFound
	}
	if err := uc.invoiceRepo.DeleteItems(id); err != nil {
		return err
	}
	return uc.invoiceRepo.Delete(id)
}

// List lista facturas paginadas buscando por nombre de cliente.
func (uc *InvoiceUseCase) List(in dto.ListRequest) (*dto.InvoiceListResponse, error) {
	in.Normalize()
	invoices, total, err := uc.invoiceRepo.List(textutil.FoldSearch(in.Search), in.Limit, in.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, *toInvoiceResponse(inv))
	}
	return &dto.InvoiceListResponse{
		Data:       out,
		Pagination: dto.NewPagination(total, in.Page, in.Limit),
	}, nil
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:           inv.ID,
		SaleID:       inv.SaleID,
		CustomerID:   inv.CustomerID,
		CustomerName: inv.CustomerName,
		InvoiceDate:  inv.InvoiceDate,
		TotalAmount:  inv.TotalAmount,
		Status:       inv.Status,
		Items:        make([]dto.InvoiceItemResponse, 0, len(inv.Items)),
	}
	for _, it := range inv.Items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
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
