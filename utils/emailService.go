package utils

import (
	"fmt"
	"log"

	"reinvent/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail delivers an HTML email through SendGrid. Delivery is best effort:
// a missing API key downgrades to a log line so local environments keep
// working.
func SendEmail(to, subject, htmlBody string) error {
	if config.AppConfig.SendGridAPIKey == "" {
		log.Printf("SENDGRID_API_KEY not set, skipping email %q to %s", subject, to)
		return nil
	}

	from := mail.NewEmail("Reinvent Coaching", config.AppConfig.EmailSender)
	message := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridAPIKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", to, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("SendGrid rejected email to %s: %d %s", to, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid rejected email, code: %d", resp.StatusCode)
	}

	log.Printf("Email %q sent to %s", subject, to)
	return nil
}

// HTML wrapper shared by all outgoing emails
func getEmailTemplate(title, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1B3A2D; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1B3A2D; line-height: 1.6; }
			.footer { padding: 20px; text-align: center; font-size: 12px; color: #999999; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>%s</h1></div>
			<div class="content">%s</div>
			<div class="footer">Reinvent Coaching &middot; You are receiving this because of activity on your account.</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendWelcomeEmail greets a user after a completed enrollment payment.
func SendWelcomeEmail(email, name, programName string) error {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your payment went through and you are now enrolled in <strong>%s</strong>.</p>
		<p>Head over to your dashboard to see your schedule and get started.</p>
	`, name, programName)
	return SendEmail(email, "Welcome to "+programName, getEmailTemplate("Welcome aboard!", body))
}

// SendPaymentFailedEmail tells a user their enrollment payment did not go
// through.
func SendPaymentFailedEmail(email, name string) error {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Unfortunately your payment could not be processed, so your enrollment is on hold.</p>
		<p>Please try again from the program page, or contact support if the problem persists.</p>
	`, name)
	return SendEmail(email, "Payment failed", getEmailTemplate("Payment Failed", body))
}
