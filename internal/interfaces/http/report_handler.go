package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/application/usecase"
)

// ReportHandler maneja las peticiones HTTP para reportes (solo admin).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Inventory godoc
// @Summary      Reporte de inventario
// @Description  Productos bajo el umbral de stock y valor total del inventario a precio de costo.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventoryReportResponse
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	out, err := h.uc.Inventory()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Sales retorna el reporte de ventas recientes.
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	var in dto.ListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.Sales(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
