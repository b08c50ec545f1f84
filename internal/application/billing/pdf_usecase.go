package billing

import (
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

// PDFUseCase genera documentos PDF de facturas y cotizaciones.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	quoteRepo   repository.QuoteRepository
	invoicePDF  InvoicePDFGenerator
	quotePDF    QuotePDFGenerator
}

// NewPDFUseCase construye el caso de uso de PDFs.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	quoteRepo repository.QuoteRepository,
	invoicePDF InvoicePDFGenerator,
	quotePDF QuotePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo: invoiceRepo,
		quoteRepo:   quoteRepo,
		invoicePDF:  invoicePDF,
		quotePDF:    quotePDF,
	}
}

// InvoicePDF genera el PDF de una factura existente.
func (uc *PDFUseCase) InvoicePDF(id string) ([]byte, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	return uc.invoicePDF.GenerateInvoice(invoice)
}

// QuotePDF genera el PDF de una cotización existente.
func (uc *PDFUseCase) QuotePDF(id string) ([]byte, error) {
	quote, err := uc.quoteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	return uc.quotePDF.GenerateQuote(quote)
}
