package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/BankClients-api/internal/application/dto"
	"github.com/jhoicas/BankClients-api/pkg/logger"
)

const internalMessage = "error interno del servidor"

// ErrorHandler respuesta por defecto para los errores que los handlers no resuelven.
// Los *fiber.Error conservan su código; el resto es 500 con mensaje genérico y el detalle va al log.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	if log == nil {
		log = logger.Nop()
	}
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: codeFor(fe.Code), Message: fe.Message})
		}
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error no controlado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: internalMessage})
	}
}

func codeFor(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusUnprocessableEntity:
		return "UNPROCESSABLE"
	case fiber.StatusRequestTimeout, fiber.StatusGatewayTimeout:
		return "TIMEOUT"
	default:
		return "INTERNAL"
	}
}
