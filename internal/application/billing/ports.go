package billing

import (
	"context"

	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

// TxRunner transacción para generar una factura desde una venta: la lectura de
// la venta y la escritura de factura + renglones ocurren atómicamente.
type TxRunner interface {
	RunBilling(ctx context.Context, fn func(
		invoiceRepo repository.InvoiceRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// InvoicePDFGenerator genera el documento PDF de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoice(invoice *entity.Invoice) ([]byte, error)
}

// QuotePDFGenerator genera el documento PDF de una cotización.
type QuotePDFGenerator interface {
	GenerateQuote(quote *entity.Quote) ([]byte, error)
}
