// Package mailer sends the transactional mails of the local credential gateway.
package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"gin-booking/internal/pkg/config"
	"gin-booking/internal/pkg/errs"

	"gopkg.in/gomail.v2"
)

type Mailer interface {
	SendPasswordReset(ctx context.Context, to, link string) error
}

// New returns an SMTP mailer, or a mailer that only logs when no SMTP host is configured.
func New(cfg config.MailConfig, logger *slog.Logger) Mailer {
	if cfg.Host == "" {
		return &LogMailer{logger: logger}
	}
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		logger: logger,
	}
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	logger *slog.Logger
}

func (m *SMTPMailer) SendPasswordReset(_ context.Context, to, link string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Reset your password")
	msg.SetBody("text/plain", resetText(link))
	msg.AddAlternative("text/html", resetHTML(link))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return errs.Wrap(err, "send password reset mail")
	}
	m.logger.Info("password reset mail sent", "to", to)
	return nil
}

type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) SendPasswordReset(_ context.Context, to, link string) error {
	m.logger.Info("password reset mail (SMTP disabled)", "to", to, "link", link)
	return nil
}

func resetText(link string) string {
	return fmt.Sprintf("Follow this link to reset your password:\n\n%s\n\nIf you didn't ask to reset your password, you can ignore this email.\n", link)
}

func resetHTML(link string) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
	<p>Follow this link to reset your password:</p>
	<p><a href="%[1]s">%[1]s</a></p>
	<p>If you didn't ask to reset your password, you can ignore this email.</p>
</div>`, link)
}
