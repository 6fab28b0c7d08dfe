// Package mail delivers outbound notification mail over SMTP.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"epro/config"
	"epro/internal/domain/service"
)

// smtpMailer sends plain-text mail through a single SMTP relay.
type smtpMailer struct {
	addr string
	from string
}

// noopMailer drops every message. Used when mail is disabled in config so the
// rest of the system never has to check.
type noopMailer struct {
	logger *slog.Logger
}

// NewMailer returns an SMTP-backed Mailer, or a no-op one when mail is
// disabled or unconfigured.
func NewMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	if cfg == nil || cfg.Mail == nil || !cfg.Mail.Enabled {
		return &noopMailer{logger: logger}
	}

	return &smtpMailer{
		addr: fmt.Sprintf("%s:%d", cfg.Mail.Host, cfg.Mail.Port),
		from: cfg.Mail.From,
	}
}

// Send delivers a plain-text message to a single recipient.
func (m *smtpMailer) Send(_ context.Context, to, subject, body string) error {
	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		body,
	}, "\r\n")

	return smtp.SendMail(m.addr, nil, m.from, []string{to}, []byte(msg))
}

// Send logs and discards the message.
func (m *noopMailer) Send(_ context.Context, to, subject, _ string) error {
	if m.logger != nil {
		m.logger.Debug("Mail disabled, dropping message",
			slog.String("to", to),
			slog.String("subject", subject))
	}

	return nil
}
