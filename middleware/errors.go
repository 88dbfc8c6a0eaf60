package middleware

import (
	"errors"
	"log"

	"reinvent/services/serverrors"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse maps service errors onto the JSON envelope. Unknown errors
// are logged and reported as a 500 with the fallback message.
func ErrorResponse(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, serverrors.ErrNotFound):
		return JsonResponse(c, fiber.StatusNotFound, false, err.Error(), nil)
	case errors.Is(err, serverrors.ErrValidation):
		return JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	case errors.Is(err, serverrors.ErrNoCapacity):
		return JsonResponse(c, fiber.StatusConflict, false, err.Error(), nil)
	case errors.Is(err, serverrors.ErrTerminalState):
		return JsonResponse(c, fiber.StatusConflict, false, err.Error(), nil)
	case errors.Is(err, serverrors.ErrExternal):
		return JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	default:
		log.Printf("Internal error: %v", err)
		return JsonResponse(c, fiber.StatusInternalServerError, false, fallback, nil)
	}
}
