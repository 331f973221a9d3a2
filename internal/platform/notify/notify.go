// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package notify delivers transactional email (verification and password-reset links).

The auth service only depends on the pass/fail contract of [Dispatcher]; the
concrete provider is chosen once at startup from configuration.

Providers:

  - log: writes the message to the structured log (development only).
  - smtp: any SMTP relay via net/smtp.
  - mailgun: Mailgun HTTP API.
  - sendgrid: SendGrid v3 HTTP API.
*/
package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"

	"github.com/taibuivan/hirelane/internal/platform/config"
)

// ErrDispatchFailed wraps every provider failure.
var ErrDispatchFailed = errors.New("notify: email could not be sent")

// Message is a plain-text email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Dispatcher sends a message and reports success or failure.
//
// Implementations must be safe for concurrent use.
type Dispatcher interface {
	Send(ctx context.Context, message Message) error
}

// Sender is the display name and address messages are sent from.
type Sender struct {
	Name    string
	Address string
}

// String renders the sender as an RFC 5322 address.
func (s Sender) String() string {
	return (&mail.Address{Name: s.Name, Address: s.Address}).String()
}

// New builds the dispatcher selected by cfg.Provider.
func New(cfg config.Mail, logger *slog.Logger) (Dispatcher, error) {
	from := Sender{Name: cfg.FromName, Address: cfg.FromAddress}

	switch cfg.Provider {
	case config.MailProviderLog:
		return NewLogDispatcher(logger), nil
	case config.MailProviderSMTP:
		return NewSMTPDispatcher(SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     from,
		}), nil
	case config.MailProviderMailgun:
		return NewMailgunDispatcher(cfg.MailgunDomain, cfg.MailgunAPIKey, from), nil
	case config.MailProviderSendGrid:
		return NewSendGridDispatcher(cfg.SendGridAPIKey, from), nil
	default:
		return nil, fmt.Errorf("notify: unknown provider %q", cfg.Provider)
	}
}

// LogDispatcher writes messages to the log instead of sending them.
//
// The body carries live links, so it is only emitted at debug level.
type LogDispatcher struct {
	logger *slog.Logger
}

// NewLogDispatcher returns a dispatcher that never fails.
func NewLogDispatcher(logger *slog.Logger) *LogDispatcher {
	return &LogDispatcher{logger: logger}
}

// Send implements [Dispatcher].
func (dispatcher *LogDispatcher) Send(ctx context.Context, message Message) error {
	dispatcher.logger.InfoContext(ctx, "email_logged",
		slog.String("to", message.To),
		slog.String("subject", message.Subject),
	)
	dispatcher.logger.DebugContext(ctx, "email_logged_body", slog.String("body", message.Body))
	return nil
}

func dispatchError(provider string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrDispatchFailed, provider, err)
}
