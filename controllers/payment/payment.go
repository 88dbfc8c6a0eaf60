package paymentController

import (
	"log"

	"reinvent/config"
	"reinvent/middleware"
	paymentService "reinvent/services/payments"
	paymentValidator "reinvent/validators/payment"

	"github.com/gofiber/fiber/v2"
)

// Controller exposes checkout creation and webhook reconciliation.
type Controller struct {
	payments *paymentService.Service
}

func NewController(payments *paymentService.Service) *Controller {
	return &Controller{payments: payments}
}

// CreateCheckoutSession creates a pending enrollment and a checkout session
// at the payment processor.
func (ctl *Controller) CreateCheckoutSession(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateCheckout").(*paymentValidator.CreateCheckoutRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	origin := c.Get("Origin")
	if origin == "" {
		origin = config.AppConfig.FrontendURL
	}

	result, err := ctl.payments.CreateCheckout(reqData.ProgramID, reqData.UserID, reqData.CustomerEmail, origin)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to create checkout session!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Checkout session created!", result)
}

// Webhook receives payment processor events. Signature or payload problems
// are the caller's 400; reconciliation errors are logged and swallowed so the
// processor sees success and internal bookkeeping stays idempotent on
// redelivery.
func (ctl *Controller) Webhook(c *fiber.Ctx) error {
	payload := c.Body()
	sigHeader := c.Get("Stripe-Signature")

	event, err := paymentService.ParseEvent(payload, sigHeader, config.AppConfig.StripeWebhookSecret)
	if err != nil {
		log.Printf("Webhook rejected: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid webhook payload or signature!", nil)
	}

	if err := ctl.payments.ApplyEvent(event); err != nil {
		log.Printf("Error processing webhook event %s (%s): %v", event.ID, event.Type, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Webhook processed!", nil)
}

// VerifyPayment cross-checks a checkout session against the stored enrollment.
func (ctl *Controller) VerifyPayment(c *fiber.Ctx) error {
	sessionID := c.Locals("sessionID").(string)

	verification, err := ctl.payments.VerifyPayment(sessionID)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to verify payment!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment verified!", verification)
}

// EnrollmentStatus returns one enrollment with its program.
func (ctl *Controller) EnrollmentStatus(c *fiber.Ctx) error {
	enrollmentID := c.Locals("enrollmentID").(uint)

	enrollment, err := ctl.payments.EnrollmentStatus(enrollmentID)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to fetch enrollment!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment fetched successfully!", enrollment)
}

// UserEnrollments lists a user's enrollments, newest first.
func (ctl *Controller) UserEnrollments(c *fiber.Ctx) error {
	userID := c.Locals("targetUserID").(uint)

	enrollments, err := ctl.payments.UserEnrollments(userID)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Failed to fetch enrollments!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
	})
}
