package programValidator

import (
	"strconv"
	"strings"

	"reinvent/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreateProgramRequest struct {
	Name            string  `json:"name" validate:"required"`
	ShortName       string  `json:"short_name"`
	Description     string  `json:"description"`
	DurationDays    int     `json:"duration_days" validate:"gte=0"`
	Price           float64 `json:"price" validate:"gte=0"`
	ProgramType     string  `json:"program_type" validate:"required"`
	MaxParticipants int     `json:"max_participants" validate:"omitempty,gte=1"`
	FeaturedImage   string  `json:"featured_image"`
}

func CreateProgram() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateProgramRequest)

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

		// max_participants must stay positive; default applies when omitted
		if reqData.MaxParticipants == 0 {
			reqData.MaxParticipants = 20
		}

		c.Locals("validatedCreateProgram", reqData)
		return c.Next()
	}
}

// ProgramPatchRequest is a merge patch over program fields.
type ProgramPatchRequest struct {
	Name            *string  `json:"name"`
	ShortName       *string  `json:"short_name"`
	Description     *string  `json:"description"`
	DurationDays    *int     `json:"duration_days"`
	Price           *float64 `json:"price"`
	ProgramType     *string  `json:"program_type"`
	MaxParticipants *int     `json:"max_participants"`
	FeaturedImage   *string  `json:"featured_image"`
	IsActive        *bool    `json:"is_active"`
}

func UpdateProgram() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requireIDParam(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid program ID!", nil)
		}
		c.Locals("programID", id)

		reqData := new(ProgramPatchRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.MaxParticipants != nil && *reqData.MaxParticipants < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "max_participants must be greater than 0!", nil)
		}
		if reqData.Price != nil && *reqData.Price < 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "price must not be negative!", nil)
		}

		c.Locals("validatedProgramPatch", reqData)
		return c.Next()
	}
}

func ProgramID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requireIDParam(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid program ID!", nil)
		}
		c.Locals("programID", id)
		return c.Next()
	}
}

func requireIDParam(c *fiber.Ctx) (uint, error) {
	idStr := strings.TrimSpace(c.Params("id"))
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, fiber.ErrBadRequest
	}
	return uint(id), nil
}
