// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package notify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/smtp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/hirelane/internal/platform/config"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

/*
TestNew selects the provider from configuration.
*/
func TestNew(t *testing.T) {
	tests := []struct {
		provider string
		want     any
	}{
		{config.MailProviderLog, &LogDispatcher{}},
		{config.MailProviderSMTP, &SMTPDispatcher{}},
		{config.MailProviderMailgun, &MailgunDispatcher{}},
		{config.MailProviderSendGrid, &SendGridDispatcher{}},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			dispatcher, err := New(config.Mail{
				Provider:       tt.provider,
				FromAddress:    "no-reply@hirelane.io",
				SMTPHost:       "smtp.local",
				SMTPPort:       "2525",
				MailgunDomain:  "mg.hirelane.io",
				MailgunAPIKey:  "key",
				SendGridAPIKey: "SG.key",
			}, discard)
			require.NoError(t, err)
			assert.IsType(t, tt.want, dispatcher)
		})
	}

	_, err := New(config.Mail{Provider: "fax"}, discard)
	assert.Error(t, err)
}

/*
TestSMTPDispatcher_Send checks envelope and message rendering.
*/
func TestSMTPDispatcher_Send(t *testing.T) {
	dispatcher := NewSMTPDispatcher(SMTPConfig{
		Host: "smtp.local", Port: "2525", Username: "u", Password: "p",
		From: Sender{Name: "Hirelane", Address: "no-reply@hirelane.io"},
	})

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	dispatcher.sendMail = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	err := dispatcher.Send(context.Background(), Message{To: "a@x.com", Subject: "Verify Your Account", Body: "line1\nline2"})
	require.NoError(t, err)

	assert.Equal(t, "smtp.local:2525", gotAddr)
	assert.Equal(t, "no-reply@hirelane.io", gotFrom)
	assert.Equal(t, []string{"a@x.com"}, gotTo)
	assert.Contains(t, string(gotMsg), "Subject: Verify Your Account\r\n")
	assert.Contains(t, string(gotMsg), "line1\r\nline2")
}

/*
TestSMTPDispatcher_Failure wraps relay errors.
*/
func TestSMTPDispatcher_Failure(t *testing.T) {
	dispatcher := NewSMTPDispatcher(SMTPConfig{Host: "smtp.local", Port: "25"})
	dispatcher.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("421 service not available")
	}

	err := dispatcher.Send(context.Background(), Message{To: "a@x.com"})
	assert.ErrorIs(t, err, ErrDispatchFailed)
}

/*
TestSendGridDispatcher_Send exercises the HTTP contract against a stub server.
*/
func TestSendGridDispatcher_Send(t *testing.T) {
	status := http.StatusAccepted
	var payload map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "Bearer SG.key", request.Header.Get("Authorization"))
		_ = json.NewDecoder(request.Body).Decode(&payload)
		writer.WriteHeader(status)
	}))
	t.Cleanup(server.Close)

	dispatcher := NewSendGridDispatcher("SG.key", Sender{Name: "Hirelane", Address: "no-reply@hirelane.io"})
	dispatcher.endpoint = server.URL + "/v3/mail/send"

	err := dispatcher.Send(context.Background(), Message{To: "a@x.com", Subject: "Password Reset Request", Body: "link"})
	require.NoError(t, err)
	assert.Equal(t, "Password Reset Request", payload["subject"])

	status = http.StatusUnauthorized
	err = dispatcher.Send(context.Background(), Message{To: "a@x.com", Subject: "s", Body: "b"})
	assert.ErrorIs(t, err, ErrDispatchFailed)
}

/*
TestLogDispatcher never fails.
*/
func TestLogDispatcher(t *testing.T) {
	assert.NoError(t, NewLogDispatcher(discard).Send(context.Background(), Message{To: "a@x.com"}))
}
