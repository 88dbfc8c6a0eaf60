package bookingValidator

import (
	"strconv"
	"strings"
	"time"

	"reinvent/middleware"
	"reinvent/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

const dateLayout = "2006-01-02"

// CreateBookingRequest accepts either an existing account (user_id) or a
// guest checkout (client_name + client_email).
type CreateBookingRequest struct {
	UserID              *uint    `json:"user_id"`
	ClientName          string   `json:"client_name"`
	ClientEmail         string   `json:"client_email" validate:"omitempty,email"`
	ClientPhone         string   `json:"client_phone"`
	Company             string   `json:"company"`
	Position            string   `json:"position"`
	ProgramID           uint     `json:"program_id" validate:"required"`
	TrainerID           *uint    `json:"trainer_id"`
	StartDate           string   `json:"start_date" validate:"required"`
	EndDate             string   `json:"end_date" validate:"required"`
	TotalAmount         *float64 `json:"total_amount"`
	Location            string   `json:"location"`
	SpecialRequirements string   `json:"special_requirements"`
	PaymentMethod       string   `json:"payment_method"`

	Start time.Time `json:"-"`
	End   time.Time `json:"-"`
}

func CreateBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateBookingRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.UserID == nil {
			if strings.TrimSpace(reqData.ClientName) == "" || strings.TrimSpace(reqData.ClientEmail) == "" {
				errors["user"] = "Either user_id or client information (client_name, client_email) is required!"
			}
		}

		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[fieldErr.Field()] = "Invalid value for " + fieldErr.Field() + "!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		start, err := time.Parse(dateLayout, reqData.StartDate)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "start_date must be YYYY-MM-DD!", nil)
		}
		end, err := time.Parse(dateLayout, reqData.EndDate)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "end_date must be YYYY-MM-DD!", nil)
		}
		if end.Before(start) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "end_date must not be before start_date!", nil)
		}

		reqData.Start = start
		reqData.End = end

		c.Locals("validatedCreateBooking", reqData)
		return c.Next()
	}
}

// BookingPatchRequest carries a merge patch: absent fields leave the booking
// unchanged.
type BookingPatchRequest struct {
	BookingStatus       *string `json:"booking_status"`
	PaymentStatus       *string `json:"payment_status"`
	SpecialRequirements *string `json:"special_requirements"`
	PaymentReference    *string `json:"payment_reference"`
}

func UpdateBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requireIDParam(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid booking ID!", nil)
		}
		c.Locals("bookingID", id)

		reqData := new(BookingPatchRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.BookingStatus != nil {
			switch *reqData.BookingStatus {
			case models.BookingPending, models.BookingConfirmed, models.BookingPaid, models.BookingCancelled:
			default:
				errors["booking_status"] = "booking_status must be pending, confirmed, paid or cancelled!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBookingPatch", reqData)
		return c.Next()
	}
}

func BookingID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requireIDParam(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid booking ID!", nil)
		}
		c.Locals("bookingID", id)
		return c.Next()
	}
}

// AvailabilityRequest is the availability query: program and date range.
type AvailabilityRequest struct {
	ProgramID uint      `json:"-"`
	Start     time.Time `json:"-"`
	End       time.Time `json:"-"`
}

func Availability() fiber.Handler {
	return func(c *fiber.Ctx) error {
		programIDStr := c.Query("program_id")
		startStr := c.Query("start_date")
		endStr := c.Query("end_date")

		if programIDStr == "" || startStr == "" || endStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false,
				"Missing required parameters: program_id, start_date, end_date!", nil)
		}

		programID, err := strconv.Atoi(programIDStr)
		if err != nil || programID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid program_id!", nil)
		}

		start, err := time.Parse(dateLayout, startStr)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "start_date must be YYYY-MM-DD!", nil)
		}
		end, err := time.Parse(dateLayout, endStr)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "end_date must be YYYY-MM-DD!", nil)
		}

		c.Locals("validatedAvailability", &AvailabilityRequest{
			ProgramID: uint(programID),
			Start:     start,
			End:       end,
		})
		return c.Next()
	}
}

// ListBookingsRequest filters the booking list.
type ListBookingsRequest struct {
	UserID *uint
	Status string
}

func ListBookings() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := &ListBookingsRequest{Status: c.Query("status")}

		if userIDStr := c.Query("user_id"); userIDStr != "" {
			userID, err := strconv.Atoi(userIDStr)
			if err != nil || userID <= 0 {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user_id!", nil)
			}
			id := uint(userID)
			reqData.UserID = &id
		}

		c.Locals("validatedListBookings", reqData)
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
