package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/kumishop/kumi-api/internal/application/dto"
)

var validate = validator.New()

// parseAndValidate parsea el body JSON y aplica las reglas `validate` del DTO.
// Si algo falla escribe la respuesta 400 y devuelve false; el handler debe
// retornar nil en ese caso.
func parseAndValidate(c *fiber.Ctx, out any) bool {
	if err := c.BodyParser(out); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		return false
	}
	if err := validate.Struct(out); err != nil {
		var fields []dto.FieldError
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, ve := range verrs {
				fields = append(fields, dto.FieldError{
					Field:   ve.Field(),
					Message: "falla la regla '" + ve.Tag() + "'",
				})
			}
		}
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "datos inválidos",
			Fields:  fields,
		})
		return false
	}
	return true
}
