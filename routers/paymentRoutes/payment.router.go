package paymentRoutes

import (
	paymentController "reinvent/controllers/payment"
	"reinvent/middleware"
	paymentValidator "reinvent/validators/payment"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentRoutes sets up checkout, webhook and enrollment routes. The
// webhook endpoint is authenticated by its signature, not by JWT.
func SetupPaymentRoutes(app *fiber.App, ctl *paymentController.Controller) {
	app.Post("/create-checkout-session", paymentValidator.CreateCheckoutSession(), ctl.CreateCheckoutSession)
	app.Post("/webhook", ctl.Webhook)
	app.Get("/verify-payment/:sessionId", paymentValidator.SessionID(), ctl.VerifyPayment)

	app.Get("/enrollment-status/:id", middleware.JWTMiddleware, paymentValidator.EnrollmentID(), ctl.EnrollmentStatus)
	app.Get("/user-enrollments/:id", middleware.JWTMiddleware, paymentValidator.UserID(), ctl.UserEnrollments)
}
