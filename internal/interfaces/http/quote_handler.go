package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-api/internal/application/billing"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/application/usecase"
)

// QuoteHandler maneja las peticiones HTTP para cotizaciones (protegido).
type QuoteHandler struct {
	uc    *usecase.QuoteUseCase
	pdfUC *billing.PDFUseCase
}

// NewQuoteHandler construye el handler.
func NewQuoteHandler(uc *usecase.QuoteUseCase, pdfUC *billing.PDFUseCase) *QuoteHandler {
	return &QuoteHandler{uc: uc, pdfUC: pdfUC}
}

// Create registra una cotización. No afecta stock.
func (h *QuoteHandler) Create(c *fiber.Ctx) error {
	var in dto.QuoteInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una cotización.
func (h *QuoteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List lista cotizaciones paginadas.
func (h *QuoteHandler) List(c *fiber.Ctx) error {
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

// Update reemplaza cabecera y renglones de la cotización.
func (h *QuoteHandler) Update(c *fiber.Ctx) error {
	var in dto.QuoteInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina una cotización.
func (h *QuoteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Status: "ok", Message: "cotización eliminada"})
}

// PDF godoc
// @Summary      Descargar PDF de la cotización
// @Tags         quotes
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la cotización"
// @Success      200 {file} binary
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/quotes/{id}/pdf [get]
func (h *QuoteHandler) PDF(c *fiber.Ctx) error {
	data, err := h.pdfUC.QuotePDF(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="cotizacion.pdf"`)
	return c.Send(data)
}
