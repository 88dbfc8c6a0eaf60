package utils

import (
	"fmt"

	"reinvent/models"
)

// Notifier is the email/ops side-channel handed to the payment service. Calls
// run in goroutines so webhook handling never blocks on external services.
type Notifier struct{}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) Welcome(user models.User, programName string) {
	go SendWelcomeEmail(user.Email, user.FirstName, programName)
}

func (n *Notifier) PaymentFailed(user models.User) {
	go SendPaymentFailedEmail(user.Email, user.FirstName)
	go SendOpsAlert("PAYMENT-FAILED", fmt.Sprintf("Payment failed for user %d (%s)", user.ID, user.Email))
}
