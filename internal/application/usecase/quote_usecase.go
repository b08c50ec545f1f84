package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
	"github.com/tu-usuario/ventas-api/pkg/textutil"
)

// QuoteUseCase casos de uso de cotizaciones. Una cotización nunca toca stock;
// crear y actualizar sí son transaccionales para que cabecera y renglones
// queden consistentes.
type QuoteUseCase struct {
	txRunner  QuoteTxRunner
	quoteRepo repository.QuoteRepository
}

// NewQuoteUseCase construye el caso de uso de cotizaciones. quoteRepo (sobre
// el pool) se usa solo para lecturas.
func NewQuoteUseCase(txRunner QuoteTxRunner, quoteRepo repository.QuoteRepository) *QuoteUseCase {
	return &QuoteUseCase{txRunner: txRunner, quoteRepo: quoteRepo}
}

func validateQuoteInput(in dto.QuoteInput) error {
	if len(in.Items) == 0 {
		return domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 || item.UnitPrice.LessThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
	}
	if in.Status != "" && !validQuoteStatus(in.Status) {
		return domain.ErrInvalidInput
	}
	return nil
}

func validQuoteStatus(s string) bool {
	switch s {
	case entity.QuoteStatusDraft, entity.QuoteStatusSent, entity.QuoteStatusAccepted, entity.QuoteStatusRejected:
		return true
	}
	return false
}

func buildQuoteItems(quoteID string, in []dto.QuoteItemInput) ([]entity.QuoteItem, decimal.Decimal) {
	items := make([]entity.QuoteItem, 0, len(in))
	total := decimal.Zero
	for _, it := range in {
		itemTotal := entity.ComputeItemTotal(it.Quantity, it.UnitPrice)
		items = append(items, entity.QuoteItem{
			ID:        uuid.New().String(),
			QuoteID:   quoteID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			ItemTotal: itemTotal,
			Notes:     it.Notes,
		})
		total = total.Add(itemTotal)
	}
	return items, total
}

// Create registra una cotización con sus renglones.
func (uc *QuoteUseCase) Create(ctx context.Context, in dto.QuoteInput) (*dto.QuoteResponse, error) {
	if err := validateQuoteInput(in); err != nil {
		return nil, err
	}
	quoteID := uuid.New().String()
	status := in.Status
	if status == "" {
		status = entity.QuoteStatusDraft
	}
	err := uc.txRunner.RunQuotes(ctx, func(quoteRepo repository.QuoteRepository) error {
		items, total := buildQuoteItems(quoteID, in.Items)
		quote := &entity.Quote{
			ID:          quoteID,
			CustomerID:  in.CustomerID,
			QuoteDate:   time.Now(),
			ValidUntil:  in.ValidUntil,
			TotalAmount: total,
			Notes:       in.Notes,
			Status:      status,
		}
		if err := quoteRepo.Create(quote); err != nil {
			return err
		}
		for i := range items {
			if err := quoteRepo.CreateItem(&items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.Get(quoteID)
}

// Get obtiene una cotización con renglones y datos del cliente.
func (uc *QuoteUseCase) Get(id string) (*dto.QuoteResponse, error) {
	quote, err := uc.quoteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	return toQuoteResponse(quote), nil
}

// Update reemplaza cabecera y renglones de una cotización en una transacción.
func (uc *QuoteUseCase) Update(ctx context.Context, id string, in dto.QuoteInput) (*dto.QuoteResponse, error) {
	if err := validateQuoteInput(in); err != nil {
		return nil, err
	}
	err := uc.txRunner.RunQuotes(ctx, func(quoteRepo repository.QuoteRepository) error {
		existing, err := quoteRepo.GetByID(id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		if err := quoteRepo.DeleteItems(id); err != nil {
			return err
		}
		items, total := buildQuoteItems(id, in.Items)
		existing.CustomerID = in.CustomerID
		existing.ValidUntil = in.ValidUntil
		existing.Notes = in.Notes
		if in.Status != "" {
			existing.Status = in.Status
		}
		existing.TotalAmount = total
		if err := quoteRepo.UpdateHeader(existing); err != nil {
			return err
		}
		for i := range items {
			if err := quoteRepo.CreateItem(&items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.Get(id)
}

// Delete elimina una cotización y sus renglones.
func (uc *QuoteUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.RunQuotes(ctx, func(quoteRepo repository.QuoteRepository) error {
		existing, err := quoteRepo.GetByID(id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		if err := quoteRepo.DeleteItems(id); err != nil {
			return err
		}
		return quoteRepo.Delete(id)
	})
}

// List lista cotizaciones paginadas buscando por nombre de cliente.
func (uc *QuoteUseCase) List(in dto.ListRequest) (*dto.QuoteListResponse, error) {
	in.Normalize()
	quotes, total, err := uc.quoteRepo.List(textutil.FoldSearch(in.Search), in.Limit, in.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]dto.QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, *toQuoteResponse(q))
	}
	return &dto.QuoteListResponse{
		Data:       out,
		Pagination: dto.NewPagination(total, in.Page, in.Limit),
	}, nil
}

func toQuoteResponse(q *entity.Quote) *dto.QuoteResponse {
	resp := &dto.QuoteResponse{
		ID:            q.ID,
		CustomerID:    q.CustomerID,
		CustomerName:  q.CustomerName,
		CustomerEmail: q.CustomerEmail,
		CustomerPhone: q.CustomerPhone,
		QuoteDate:     q.QuoteDate,
		ValidUntil:    q.ValidUntil,
		TotalAmount:   q.TotalAmount,
		Notes:         q.Notes,
		Status:        q.Status,
		Items:         make([]dto.QuoteItemResponse, 0, len(q.Items)),
	}
	for _, it := range q.Items {
		resp.Items = append(resp.Items, dto.QuoteItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			ItemTotal:   it.ItemTotal,
			Notes:       it.Notes,
		})
	}
	return resp
}
