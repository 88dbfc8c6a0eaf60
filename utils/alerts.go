package utils

import (
	"log"
	"time"

	"reinvent/config"

	"github.com/go-resty/resty/v2"
)

// SendOpsAlert posts an alert to the configured ops webhook (Slack-compatible
// incoming webhook). No-op when OPS_ALERT_WEBHOOK_URL is unset.
func SendOpsAlert(event, message string) {
	url := config.AppConfig.OpsAlertWebhookURL
	if url == "" {
		return
	}

	client := resty.New().SetTimeout(10 * time.Second)
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"text": "[" + event + "] " + message,
		}).
		Post(url)
	if err != nil {
		log.Printf("Failed to send ops alert: %v", err)
		return
	}
	if resp.StatusCode() >= 400 {
		log.Printf("Ops alert webhook rejected request: %d %s", resp.StatusCode(), resp.String())
	}
}
