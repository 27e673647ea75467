package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"time"

	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// ResendEmailResponse represents the response from Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// ContactNotifier forwards new contact messages to the site owner through
// the Resend API.
type ContactNotifier struct {
	apiKey    string
	fromEmail string
	toEmail   string
	client    *http.Client
	logger    zerolog.Logger
}

// NewContactNotifier builds a notifier from configuration. Returns nil when
// notifications are disabled or not fully configured, which callers treat as
// "no notifier".
//
// Required configuration:
//   - RESEND_API_KEY: Resend API key
//   - RESEND_FROM_EMAIL: sender address (e.g. "Portfolio <noreply@example.com>")
//   - CONTACT_NOTIFY_EMAIL: recipient address
//
// Optional:
//   - CONTACT_NOTIFICATIONS: set to false to disable even when configured
func NewContactNotifier(cfg map[string]string) *ContactNotifier {
	logger := log.With().Str("serviceName", "contactNotifier").Logger()

	if !config.GetBool(cfg, "CONTACT_NOTIFICATIONS", true) {
		logger.Info().Msg("Contact notifications disabled by configuration")
		return nil
	}

	apiKey := config.GetString(cfg, "RESEND_API_KEY", "")
	fromEmail := config.GetString(cfg, "RESEND_FROM_EMAIL", "")
	toEmail := config.GetString(cfg, "CONTACT_NOTIFY_EMAIL", "")
	if apiKey == "" || fromEmail == "" || toEmail == "" {
		logger.Info().Msg("Contact notifications not configured, skipping")
		return nil
	}

	return &ContactNotifier{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		toEmail:   toEmail,
		client:    &http.Client{Timeout: 15 * time.Second},
		logger:    logger,
	}
}

// Notify sends an email summarizing a newly received contact message.
func (n *ContactNotifier) Notify(message *models.ContactMessage) error {
	payload := ResendEmailRequest{
		From:    n.fromEmail,
		To:      []string{n.toEmail},
		Subject: fmt.Sprintf("New contact message: %s", message.Subject),
		Html: fmt.Sprintf(
			"<p><strong>From:</strong> %s &lt;%s&gt;</p><p>%s</p>",
			html.EscapeString(message.Name),
			html.EscapeString(message.Email),
			html.EscapeString(message.Message),
		),
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequest("POST", resendEndpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create Resend API request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+n.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to Resend API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ResendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil {
			return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, errorResp.Message)
		}
		return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var emailResponse ResendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		n.logger.Warn().Err(err).Msg("Failed to parse Resend email response, but email was sent")
	} else {
		n.logger.Info().Str("emailId", emailResponse.ID).Msg("Sent contact notification email")
	}

	return nil
}
