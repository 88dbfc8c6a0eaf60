package bookingController

import (
	"reinvent/middleware"
	bookingService "reinvent/services/booking"
	bookingValidator "reinvent/validators/booking"

	"github.com/gofiber/fiber/v2"
)

// Controller exposes the booking service over HTTP.
type Controller struct {
	bookings *bookingService.Service
}

func NewController(bookings *bookingService.Service) *Controller {
	return &Controller{bookings: bookings}
}

// GetBookings returns bookings, optionally filtered by user_id and status.
func (ctl *Controller) GetBookings(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedListBookings").(*bookingValidator.ListBookingsRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	bookings, err := ctl.bookings.ListBookings(reqData.UserID, reqData.Status)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to fetch bookings!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bookings fetched successfully!", fiber.Map{
		"bookings": bookings,
	})
}

// GetBooking returns one booking with user, program, trainer and sessions.
func (ctl *Controller) GetBooking(c *fiber.Ctx) error {
	bookingID := c.Locals("bookingID").(uint)

	booking, err := ctl.bookings.GetBooking(bookingID)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to fetch booking!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Booking fetched successfully!", booking)
}

// CreateBooking creates a booking plus its session series. Guest checkouts
// resolve or create the user account first.
func (ctl *Controller) CreateBooking(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateBooking").(*bookingValidator.CreateBookingRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	in := bookingService.CreateBookingInput{
		UserID:              reqData.UserID,
		ProgramID:           reqData.ProgramID,
		TrainerID:           reqData.TrainerID,
		StartDate:           reqData.Start,
		EndDate:             reqData.End,
		TotalAmount:         reqData.TotalAmount,
		Location:            reqData.Location,
		SpecialRequirements: reqData.SpecialRequirements,
		PaymentMethod:       reqData.PaymentMethod,
	}
	if reqData.UserID == nil {
		in.Guest = &bookingService.GuestProfile{
			Name:     reqData.ClientName,
			Email:    reqData.ClientEmail,
			Phone:    reqData.ClientPhone,
			Company:  reqData.Company,
			Position: reqData.Position,
		}
	}

	booking, err := ctl.bookings.CreateBooking(in)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to create booking!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Booking created successfully!", booking)
}

// UpdateBooking applies a merge patch: absent fields keep their value.
func (ctl *Controller) UpdateBooking(c *fiber.Ctx) error {
	bookingID := c.Locals("bookingID").(uint)
	reqData, ok := c.Locals("validatedBookingPatch").(*bookingValidator.BookingPatchRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	booking, err := ctl.bookings.UpdateBooking(bookingID, bookingService.BookingPatch{
		BookingStatus:       reqData.BookingStatus,
		PaymentStatus:       reqData.PaymentStatus,
		SpecialRequirements: reqData.SpecialRequirements,
		PaymentReference:    reqData.PaymentReference,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to update booking!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Booking updated successfully!", booking)
}

// CancelBooking cancels the booking and every session in its series.
func (ctl *Controller) CancelBooking(c *fiber.Ctx) error {
	bookingID := c.Locals("bookingID").(uint)

	if err := ctl.bookings.CancelBooking(bookingID); err != nil {
		return middleware.ErrorResponse(c, err, "Failed to cancel booking!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Booking cancelled successfully!", nil)
}

// ConfirmBooking moves a pending booking to confirmed.
func (ctl *Controller) ConfirmBooking(c *fiber.Ctx) error {
	bookingID := c.Locals("bookingID").(uint)

	booking, err := ctl.bookings.ConfirmBooking(bookingID)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to confirm booking!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Booking confirmed successfully!", booking)
}

// CheckAvailability reports remaining spots for a program and date range.
func (ctl *Controller) CheckAvailability(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAvailability").(*bookingValidator.AvailabilityRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	availability, err := ctl.bookings.CheckAvailability(reqData.ProgramID, reqData.Start, reqData.End)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to check availability!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Availability checked successfully!", availability)
}
