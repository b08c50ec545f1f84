package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-api/internal/application/billing"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
)

// InvoiceHandler maneja las peticiones HTTP para facturas (solo admin).
type InvoiceHandler struct {
	uc    *billing.InvoiceUseCase
	pdfUC *billing.PDFUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase, pdfUC *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdfUC: pdfUC}
}

// GenerateFromSale godoc
// @Summary      Generar factura desde una venta
// @Description  Copia cabecera y renglones de la venta. A lo sumo una factura por venta (409 si ya existe).
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        saleId  path  string  true  "ID de la venta"
// @Success      201  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/invoices/from-sale/{saleId} [post]
func (h *InvoiceHandler) GenerateFromSale(c *fiber.Ctx) error {
	out, err := h.uc.GenerateFromSale(c.Context(), c.Params("saleId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una factura.
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List lista facturas paginadas.
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	var in dto.ListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.List(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update modifica los campos editables de la factura.
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina una factura. La venta de origen no se toca.
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Status: "ok", Message: "factura eliminada"})
}

// PDF descarga el PDF de la factura.
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	data, err := h.pdfUC.InvoicePDF(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="factura.pdf"`)
	return c.Send(data)
}
