package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kumishop/kumi-api/internal/application/analytics"
)

// DashboardHandler expone el resumen financiero del panel (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del día y del mes en curso
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context(), time.Now())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
