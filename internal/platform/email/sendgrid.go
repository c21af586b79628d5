package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"taskmanager_backend/internal/app/config"
	"taskmanager_backend/internal/feature/auth/usecase"
)

const sendGridBaseURL = "https://api.sendgrid.com"

// SendGridSender delivers reset mails through the SendGrid v3 REST API.
type SendGridSender struct {
	apiKey   string
	from     string
	fromName string
	baseURL  string
	client   *http.Client
}

var _ usecase.ResetMailer = (*SendGridSender)(nil)

// NewSendGridSender creates a SendGridSender. The client must carry a
// timeout; the send attempt is bounded by it.
func NewSendGridSender(cfg config.EmailConfig, client *http.Client) (*SendGridSender, error) {
	if cfg.SendGridAPIKey == "" {
		return nil, fmt.Errorf("sendgrid sender: SENDGRID_API_KEY is required")
	}
	return &SendGridSender{
		apiKey:   cfg.SendGridAPIKey,
		from:     cfg.From,
		fromName: cfg.FromName,
		baseURL:  sendGridBaseURL,
		client:   client,
	}, nil
}

// sendGridAddress, sendGridContent and sendGridRequest mirror the subset of
// the v3 mail/send payload this service uses.
type sendGridAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sendGridContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sendGridRequest struct {
	Personalizations []struct {
		To []sendGridAddress `json:"to"`
	} `json:"personalizations"`
	From    sendGridAddress   `json:"from"`
	Subject string            `json:"subject"`
	Content []sendGridContent `json:"content"`
}

// SendPasswordReset posts the reset mail to the SendGrid API.
func (s *SendGridSender) SendPasswordReset(ctx context.Context, toEmail, toName, resetURL string) error {
	html, text := resetBodies(toName, resetURL)

	payload := sendGridRequest{
		From:    sendGridAddress{Email: s.from, Name: s.fromName},
		Subject: resetSubject,
		Content: []sendGridContent{
			{Type: "text/plain", Value: text},
			{Type: "text/html", Value: html},
		},
	}
	payload.Personalizations = []struct {
		To []sendGridAddress `json:"to"`
	}{
		{To: []sendGridAddress{{Email: toEmail, Name: toName}}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("sendgrid sender: %w", err)
	}

	u := s.baseURL + "/v3/mail/send"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("sendgrid sender: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("sendgrid sender: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		// The error body is short; include it for diagnosis.
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("sendgrid sender: http %d: %s", res.StatusCode, msg)
	}
	return nil
}
