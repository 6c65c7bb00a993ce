// Package email delivers transactional mail, currently just the welcome
// message sent after registration.
package email

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

type Sender interface {
	Send(ctx context.Context, to, subject, html string) error
}

// LogSender writes the email to the log instead of sending it. Used when
// ENV=local so development does not need Resend credentials.
type LogSender struct {
	logger *slog.Logger
}

func (s *LogSender) Send(_ context.Context, to, subject, html string) error {
	s.logger.Info("email (local dev)", "to", to, "subject", subject, "body", html)
	return nil
}

// ResendSender delivers mail through the Resend API.
type ResendSender struct {
	client *resend.Client
	from   string
}

func (s *ResendSender) Send(ctx context.Context, to, subject, html string) error {
	req := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}
	if _, err := s.client.Emails.SendWithContext(ctx, req); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}

// NewSender picks the implementation for the environment: LogSender for
// local, ResendSender everywhere else.
func NewSender(env, apiKey, from string, logger *slog.Logger) Sender {
	if env == "local" {
		return &LogSender{logger: logger}
	}
	return &ResendSender{client: resend.NewClient(apiKey), from: from}
}
