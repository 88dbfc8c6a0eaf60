package trainerValidator

import (
	"strconv"
	"strings"

	"reinvent/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreateTrainerRequest struct {
	Name           string  `json:"name" validate:"required"`
	Email          string  `json:"email" validate:"omitempty,email"`
	Specialization string  `json:"specialization"`
	Bio            string  `json:"bio"`
	HourlyRate     float64 `json:"hourly_rate" validate:"gte=0"`
}

func CreateTrainer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateTrainerRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[fieldErr.Field()] = "Invalid value for " + fieldErr.Field() + "!"
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateTrainer", reqData)
		return c.Next()
	}
}

func TrainerID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid trainer ID!", nil)
		}
		c.Locals("trainerID", uint(id))
		return c.Next()
	}
}
