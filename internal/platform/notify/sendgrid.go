// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package notify

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const sendGridEndpoint = "https://api.sendgrid.com/v3/mail/send"

// SendGridDispatcher sends email through the SendGrid v3 API.
type SendGridDispatcher struct {
	apiKey   string
	endpoint string
	from     Sender
}

// NewSendGridDispatcher returns a dispatcher authenticated with apiKey.
func NewSendGridDispatcher(apiKey string, from Sender) *SendGridDispatcher {
	return &SendGridDispatcher{apiKey: apiKey, endpoint: sendGridEndpoint, from: from}
}

// Send implements [Dispatcher].
//
// A fresh client is built per call because the SendGrid client mutates its
// embedded request on every send.
func (dispatcher *SendGridDispatcher) Send(ctx context.Context, message Message) error {
	from := mail.NewEmail(dispatcher.from.Name, dispatcher.from.Address)
	to := mail.NewEmail("", message.To)
	email := mail.NewSingleEmailPlainText(from, message.Subject, to, message.Body)

	client := sendgrid.NewSendClient(dispatcher.apiKey)
	client.BaseURL = dispatcher.endpoint

	response, err := client.SendWithContext(ctx, email)
	if err != nil {
		return dispatchError("sendgrid", err)
	}
	if response.StatusCode != http.StatusAccepted {
		return dispatchError("sendgrid", fmt.Errorf("unexpected status %d", response.StatusCode))
	}
	return nil
}
