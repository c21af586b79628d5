package email

import (
	"context"
	"errors"
	"log/slog"

	"taskmanager_backend/internal/feature/auth/usecase"
)

// ErrNotConfigured is returned by the development sender so the caller can
// fall back to surfacing the reset token directly.
var ErrNotConfigured = errors.New("email delivery is not configured")

// NoopSender is the development-mode sender used when no provider is
// configured. It logs the reset link and reports the send as failed, which
// makes the forgot-password handler return the development fallback response.
type NoopSender struct{}

var _ usecase.ResetMailer = (*NoopSender)(nil)

// NewNoopSender creates a NoopSender.
func NewNoopSender() *NoopSender {
	return &NoopSender{}
}

// SendPasswordReset logs the link instead of delivering it.
func (s *NoopSender) SendPasswordReset(_ context.Context, toEmail, _, resetURL string) error {
	slog.Info("password reset requested with no email provider configured",
		"to", toEmail, "reset_url", resetURL)
	return ErrNotConfigured
}
