package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-api/internal/application/billing"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
	"github.com/tu-usuario/ventas-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeInvoiceRepo struct {
	invoices map[string]*entity.Invoice
	items    map[string][]entity.InvoiceItem // por invoice_id
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		invoices: make(map[string]*entity.Invoice),
		items:    make(map[string][]entity.InvoiceItem),
	}
}

func (r *fakeInvoiceRepo) Create(invoice *entity.Invoice) error {
	for _, inv := range r.invoices {
		if inv.SaleID == invoice.SaleID {
			return domain.ErrDuplicate
		}
	}
	cp := *invoice
	r.invoices[invoice.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	r.items[item.InvoiceID] = append(r.items[item.InvoiceID], *item)
	return nil
}

func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	cp.Items = append([]entity.InvoiceItem(nil), r.items[id]...)
	return &cp, nil
}

func (r *fakeInvoiceRepo) GetBySaleID(saleID string) (*entity.Invoice, error) {
	for id, inv := range r.invoices {
		if inv.SaleID == saleID {
			return r.GetByID(id)
		}
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) Update(invoice *entity.Invoice) error {
	if _, ok := r.invoices[invoice.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *invoice
	cp.Items = nil
	r.invoices[invoice.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) DeleteItems(invoiceID string) error {
	delete(r.items, invoiceID)
	return nil
}

func (r *fakeInvoiceRepo) Delete(id string) error {
	delete(r.invoices, id)
	return nil
}

func (r *fakeInvoiceRepo) List(search string, limit, offset int) ([]*entity.Invoice, int, error) {
	var out []*entity.Invoice
	for id := range r.invoices {
		inv, _ := r.GetByID(id)
		out = append(out, inv)
	}
	return out, len(out), nil
}

// fakeSaleReader implementa solo GetByID sobre un mapa fijo de ventas; el resto
// de SaleRepository no participa en la facturación.
type fakeSaleReader struct {
	sales map[string]*entity.Sale
}

func (r *fakeSaleReader) GetByID(id string) (*entity.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}

func (r *fakeSaleReader) Create(*entity.Sale) error           { return nil }
func (r *fakeSaleReader) CreateItem(*entity.SaleItem) error   { return nil }
func (r *fakeSaleReader) UpdateHeader(*entity.Sale) error     { return nil }
func (r *fakeSaleReader) DeleteItems(string) error            { return nil }
func (r *fakeSaleReader) Delete(string) error                 { return nil }
func (r *fakeSaleReader) List(repository.ListSalesParams) ([]*entity.Sale, int, error) {
	return nil, 0, nil
}

type fakeBillingTxRunner struct {
	invoiceRepo *fakeInvoiceRepo
	saleRepo    *fakeSaleReader
}

func (r *fakeBillingTxRunner) RunBilling(ctx context.Context, fn func(
	invoiceRepo repository.InvoiceRepository,
	saleRepo repository.SaleRepository,
) error) error {
	return fn(r.invoiceRepo, r.saleRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

func newTestInvoiceUseCase(sales map[string]*entity.Sale) (*billing.InvoiceUseCase, *fakeInvoiceRepo) {
	invoiceRepo := newFakeInvoiceRepo()
	runner := &fakeBillingTxRunner{
		invoiceRepo: invoiceRepo,
		saleRepo:    &fakeSaleReader{sales: sales},
	}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return billing.NewInvoiceUseCase(runner, invoiceRepo, log), invoiceRepo
}

func fixtureSale(id string) *entity.Sale {
	customerID := "c1"
	return &entity.Sale{
		ID:          id,
		CustomerID:  &customerID,
		TotalAmount: decimal.NewFromInt(800),
		SaleDate:    time.Now(),
		Items: []entity.SaleItem{
			{ID: "i1", SaleID: id, ProductID: "p1", Quantity: 3, UnitPrice: decimal.NewFromInt(100), ItemTotal: decimal.NewFromInt(300)},
			{ID: "i2", SaleID: id, ProductID: "p2", Quantity: 2, UnitPrice: decimal.NewFromInt(250), ItemTotal: decimal.NewFromInt(500)},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// GenerateFromSale
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerateFromSale_CopiaCabeceraYRenglones(t *testing.T) {
	uc, _ := newTestInvoiceUseCase(map[string]*entity.Sale{"s1": fixtureSale("s1")})

	out, err := uc.GenerateFromSale(context.Background(), "s1")
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "s1", out.SaleID)
	require.NotNil(t, out.CustomerID)
	assert.Equal(t, "c1", *out.CustomerID)
	assert.True(t, decimal.NewFromInt(800).Equal(out.TotalAmount),
		"el total de la factura debe copiar el de la venta")
	assert.Equal(t, entity.InvoiceStatusUnpaid, out.Status,
		"una factura nueva nace como no pagada")

	require.Len(t, out.Items, 2, "los renglones de la venta deben copiarse")
	assert.Equal(t, "p1", out.Items[0].ProductID)
	assert.Equal(t, int64(3), out.Items[0].Quantity)
	assert.True(t, decimal.NewFromInt(300).Equal(out.Items[0].ItemTotal))
}

func TestGenerateFromSale_VentaYaFacturada_RetornaDuplicado(t *testing.T) {
	uc, _ := newTestInvoiceUseCase(map[string]*entity.Sale{"s1": fixtureSale("s1")})

	_, err := uc.GenerateFromSale(context.Background(), "s1")
	require.NoError(t, err)

	_, err = uc.GenerateFromSale(context.Background(), "s1")
	assert.ErrorIs(t, err, domain.ErrDuplicate,
		"una venta solo puede facturarse una vez")
}

func TestGenerateFromSale_VentaInexistente(t *testing.T) {
	uc, repo := newTestInvoiceUseCase(map[string]*entity.Sale{})

	_, err := uc.GenerateFromSale(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, repo.invoices, "no debe quedar ninguna factura escrita")
}

func TestGenerateFromSale_SaleIDVacio(t *testing.T) {
	uc, _ := newTestInvoiceUseCase(map[string]*entity.Sale{})

	_, err := uc.GenerateFromSale(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_MarcaFacturaComoPagada(t *testing.T) {
	uc, _ := newTestInvoiceUseCase(map[string]*entity.Sale{"s1": fixtureSale("s1")})

	created, err := uc.GenerateFromSale(context.Background(), "s1")
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateInvoiceRequest{Status: entity.InvoiceStatusPaid})
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPaid, out.Status)
}

func TestUpdate_EstadoInvalido(t *testing.T) {
	uc, _ := newTestInvoiceUseCase(map[string]*entity.Sale{"s1": fixtureSale("s1")})

	created, err := uc.GenerateFromSale(context.Background(), "s1")
	require.NoError(t, err)

	_, err = uc.Update(created.ID, dto.UpdateInvoiceRequest{Status: "anulada"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDelete_EliminaFacturaYRenglones(t *testing.T) {
	uc, repo := newTestInvoiceUseCase(map[string]*entity.Sale{"s1": fixtureSale("s1")})

	created, err := uc.GenerateFromSale(context.Background(), "s1")
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))
	assert.Empty(t, repo.invoices)
	assert.Empty(t, repo.items)

	_, err = uc.Get(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// La venta ya no está facturada: puede generarse de nuevo.
	_, err = uc.GenerateFromSale(context.Background(), "s1")
	assert.NoError(t, err)
}

func TestDelete_FacturaInexistente(t *testing.T) {
	uc, _ := newTestInvoiceUseCase(map[string]*entity.Sale{})

	err := uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
