package bookingRoutes

import (
	bookingController "reinvent/controllers/booking"
	"reinvent/middleware"
	bookingValidator "reinvent/validators/booking"

	"github.com/gofiber/fiber/v2"
)

// SetupBookingRoutes sets up booking and availability routes. Creation and
// availability stay public so guest checkouts work without an account.
func SetupBookingRoutes(app *fiber.App, ctl *bookingController.Controller) {
	app.Get("/availability", bookingValidator.Availability(), ctl.CheckAvailability)
	app.Post("/bookings", bookingValidator.CreateBooking(), ctl.CreateBooking)

	app.Get("/bookings", middleware.JWTMiddleware, bookingValidator.ListBookings(), ctl.GetBookings)
	app.Get("/bookings/:id", middleware.JWTMiddleware, bookingValidator.BookingID(), ctl.GetBooking)
	app.Put("/bookings/:id", middleware.JWTMiddleware, bookingValidator.UpdateBooking(), ctl.UpdateBooking)
	app.Post("/bookings/:id/cancel", middleware.JWTMiddleware, bookingValidator.BookingID(), ctl.CancelBooking)
	app.Post("/bookings/:id/confirm", middleware.JWTMiddleware, bookingValidator.BookingID(), ctl.ConfirmBooking)
}
