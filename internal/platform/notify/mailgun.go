// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package notify

import (
	"context"

	"github.com/mailgun/mailgun-go/v4"
)

// MailgunDispatcher sends email through the Mailgun HTTP API.
type MailgunDispatcher struct {
	client *mailgun.MailgunImpl
	from   Sender
}

// NewMailgunDispatcher returns a dispatcher bound to a Mailgun sending domain.
func NewMailgunDispatcher(domain, apiKey string, from Sender) *MailgunDispatcher {
	return &MailgunDispatcher{
		client: mailgun.NewMailgun(domain, apiKey),
		from:   from,
	}
}

// Send implements [Dispatcher].
func (dispatcher *MailgunDispatcher) Send(ctx context.Context, message Message) error {
	msg := dispatcher.client.NewMessage(dispatcher.from.String(), message.Subject, message.Body, message.To)

	if _, _, err := dispatcher.client.Send(ctx, msg); err != nil {
		return dispatchError("mailgun", err)
	}
	return nil
}
