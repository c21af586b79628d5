package di

import (
	"log/slog"

	"taskmanager_backend/internal/app/config"
	"taskmanager_backend/internal/feature/auth/usecase"
	"taskmanager_backend/internal/platform/email"
	platformhttp "taskmanager_backend/internal/platform/http"
)

// NewResetMailer selects the ResetMailer implementation from configuration.
// The choice is made exactly once here; a misconfigured provider degrades to
// the development sender with a warning instead of failing startup.
func NewResetMailer(cfg config.EmailConfig) usecase.ResetMailer {
	switch cfg.Provider {
	case config.EmailProviderSMTP:
		sender, err := email.NewSMTPSender(cfg)
		if err != nil {
			slog.Warn("SMTP mailer unavailable, falling back to development sender", "error", err)
			return email.NewNoopSender()
		}
		slog.Info("email delivery via SMTP", "host", cfg.SMTPHost)
		return sender

	case config.EmailProviderSendGrid:
		sender, err := email.NewSendGridSender(cfg, platformhttp.NewHTTPClient(cfg.Timeout))
		if err != nil {
			slog.Warn("SendGrid mailer unavailable, falling back to development sender", "error", err)
			return email.NewNoopSender()
		}
		slog.Info("email delivery via SendGrid")
		return sender

	default:
		slog.Info("email delivery not configured, reset tokens will be surfaced in responses")
		return email.NewNoopSender()
	}
}
