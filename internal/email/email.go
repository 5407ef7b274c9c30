package email

import (
	"context"
	"fmt"
	"html"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogSender logs emails instead of sending them. Used in ENV=local.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger.With("component", "email")}
}

func (s *LogSender) Send(ctx context.Context, to, subject, _ string) error {
	s.logger.InfoContext(ctx, "email (local dev)", "to", to, "subject", subject)
	return nil
}

// ResendSender sends emails via the Resend API. Used in staging/production.
type ResendSender struct {
	client *resend.Client
	from   string
}

func (s *ResendSender) Send(ctx context.Context, to, subject, body string) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Html:    body,
	}
	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}

// NewSender returns a LogSender for ENV=local, ResendSender otherwise.
func NewSender(env, apiKey, from string, logger *slog.Logger) Sender {
	if env == "local" {
		return NewLogSender(logger)
	}
	return &ResendSender{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

// PasswordChanged renders the notice sent after a successful password change.
func PasswordChanged(firstName string) (subject, body string) {
	greeting := "Hi"
	if firstName != "" {
		greeting = "Hi " + html.EscapeString(firstName)
	}
	subject = "Your password was changed"
	body = fmt.Sprintf(
		`<p>%s,</p><p>The password for your account was just changed. If this wasn't you, reset your password and contact support.</p>`,
		greeting,
	)
	return subject, body
}
