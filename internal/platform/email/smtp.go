package email

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"taskmanager_backend/internal/app/config"
	"taskmanager_backend/internal/feature/auth/usecase"
)

// SMTPSender delivers reset mails over SMTP.
type SMTPSender struct {
	client   *mail.Client
	from     string
	fromName string
}

var _ usecase.ResetMailer = (*SMTPSender)(nil)

// NewSMTPSender creates an SMTPSender from the email configuration. The
// connection is dialed per send; the client timeout bounds the attempt.
func NewSMTPSender(cfg config.EmailConfig) (*SMTPSender, error) {
	if cfg.SMTPHost == "" {
		return nil, fmt.Errorf("smtp sender: SMTP_HOST is required")
	}

	opts := []mail.Option{
		mail.WithPort(cfg.SMTPPort),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(cfg.Timeout),
	}
	if cfg.SMTPUser != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.SMTPUser),
			mail.WithPassword(cfg.SMTPPassword),
		)
	}

	client, err := mail.NewClient(cfg.SMTPHost, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp sender: %w", err)
	}

	return &SMTPSender{client: client, from: cfg.From, fromName: cfg.FromName}, nil
}

// SendPasswordReset sends the reset link to the given address.
func (s *SMTPSender) SendPasswordReset(ctx context.Context, toEmail, toName, resetURL string) error {
	msg := mail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.from); err != nil {
		return fmt.Errorf("smtp sender: invalid from address: %w", err)
	}
	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("smtp sender: invalid recipient: %w", err)
	}
	msg.Subject(resetSubject)

	html, text := resetBodies(toName, resetURL)
	msg.SetBodyString(mail.TypeTextPlain, text)
	msg.AddAlternativeString(mail.TypeTextHTML, html)

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp sender: %w", err)
	}
	return nil
}
