// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package notify

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"
)

// SMTPConfig holds the relay settings.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     Sender
}

// SMTPDispatcher sends plain-text email through an SMTP relay.
type SMTPDispatcher struct {
	cfg      SMTPConfig
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPDispatcher returns a dispatcher for the given relay.
func NewSMTPDispatcher(cfg SMTPConfig) *SMTPDispatcher {
	return &SMTPDispatcher{cfg: cfg, sendMail: smtp.SendMail}
}

// Send implements [Dispatcher].
func (dispatcher *SMTPDispatcher) Send(ctx context.Context, message Message) error {
	if err := ctx.Err(); err != nil {
		return dispatchError("smtp", err)
	}

	var auth smtp.Auth
	if dispatcher.cfg.Username != "" {
		auth = smtp.PlainAuth("", dispatcher.cfg.Username, dispatcher.cfg.Password, dispatcher.cfg.Host)
	}

	address := net.JoinHostPort(dispatcher.cfg.Host, dispatcher.cfg.Port)
	payload := buildMIME(dispatcher.cfg.From, message)

	if err := dispatcher.sendMail(address, auth, dispatcher.cfg.From.Address, []string{message.To}, payload); err != nil {
		return dispatchError("smtp", err)
	}
	return nil
}

// buildMIME renders a minimal RFC 5322 plain-text message.
func buildMIME(from Sender, message Message) []byte {
	var builder strings.Builder
	fmt.Fprintf(&builder, "From: %s\r\n", from.String())
	fmt.Fprintf(&builder, "To: %s\r\n", message.To)
	fmt.Fprintf(&builder, "Subject: %s\r\n", message.Subject)
	builder.WriteString("MIME-Version: 1.0\r\n")
	builder.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	builder.WriteString("\r\n")
	builder.WriteString(strings.ReplaceAll(message.Body, "\n", "\r\n"))
	return []byte(builder.String())
}
