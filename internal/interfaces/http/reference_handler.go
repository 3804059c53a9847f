package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kumishop/kumi-api/internal/application/usecase"
)

// ReferenceHandler expone los catálogos del formulario de venta (protegido).
type ReferenceHandler struct {
	uc *usecase.ReferenceUseCase
}

// NewReferenceHandler construye el handler.
func NewReferenceHandler(uc *usecase.ReferenceUseCase) *ReferenceHandler {
	return &ReferenceHandler{uc: uc}
}

// LoadAll godoc
// @Summary      Catálogos de referencia (canales, estados, métodos de pago, envíos)
// @Tags         reference
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReferenceDataResponse
// @Router       /api/reference [get]
func (h *ReferenceHandler) LoadAll(c *fiber.Ctx) error {
	out, err := h.uc.LoadAll(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
