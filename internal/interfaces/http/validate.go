package http

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/tienda-ropa/internal/application/dto"
)

// validate instancia compartida del validador de structs (tags `validate`).
var validate = validator.New()

// parseAndValidate parsea el body JSON al struct y aplica las reglas de
// validación declaradas en sus tags. Devuelve una respuesta 400 ya escrita
// si algo falla (el handler debe retornar de inmediato).
func parseAndValidate(c *fiber.Ctx, out any) (ok bool, err error) {
	if err := c.BodyParser(out); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(out); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(err)})
	}
	return true, nil
}

// validationMessage arma un mensaje legible a partir de los errores de campo.
func validationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return "datos inválidos"
	}
	var parts []string
	for _, fe := range verrs {
		parts = append(parts, strings.ToLower(fe.Field())+": regla '"+fe.Tag()+"' no cumplida")
	}
	return strings.Join(parts, "; ")
}
