package mail

import (
	"context"
	"net/smtp"
	"testing"
	"time"

	"folio/config"
	"folio/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedMail struct {
	addr string
	auth smtp.Auth
	from string
	to   []string
	body string
}

func newTestMailer(t *testing.T, cfg config.MailConfig, sendErr error) (*smtpMailer, *capturedMail) {
	t.Helper()

	captured := &capturedMail{}
	mailer := &smtpMailer{
		cfg: cfg,
		send: func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			captured.addr = addr
			captured.auth = a
			captured.from = from
			captured.to = to
			captured.body = string(msg)

			return sendErr
		},
		now: func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) },
	}

	return mailer, captured
}

func TestSMTPMailer_Disabled(t *testing.T) {
	mailer := NewSMTPMailer(&config.Config{Mail: &config.MailConfig{}})

	assert.False(t, mailer.Enabled())
	err := mailer.Send(context.Background(), service.MailMessage{To: "me@example.com"})
	assert.ErrorIs(t, err, service.ErrMailerDisabled)
}

func TestSMTPMailer_Send(t *testing.T) {
	mailer, captured := newTestMailer(t, config.MailConfig{
		Enable:   true,
		Host:     "smtp.example.com",
		Port:     2525,
		Username: "user",
		Password: "secret",
		From:     "noreply@example.com",
	}, nil)

	err := mailer.Send(context.Background(), service.MailMessage{
		To:      "me@example.com",
		Subject: "Reset your password",
		Text:    "Open https://example.com/reset?token=abc",
		HTML:    "<a href=\"https://example.com/reset?token=abc\">Reset</a>",
	})
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:2525", captured.addr)
	assert.NotNil(t, captured.auth)
	assert.Equal(t, "noreply@example.com", captured.from)
	assert.Equal(t, []string{"me@example.com"}, captured.to)
	assert.Contains(t, captured.body, "Subject: Reset your password\r\n")
	assert.Contains(t, captured.body, "Content-Type: multipart/alternative; boundary=")
	assert.Contains(t, captured.body, "text/plain; charset=UTF-8")
	assert.Contains(t, captured.body, "text/html; charset=UTF-8")
}

func TestSMTPMailer_SendWithoutAuthAndDefaultPort(t *testing.T) {
	mailer, captured := newTestMailer(t, config.MailConfig{
		Enable: true,
		Host:   "localhost",
		From:   "noreply@example.com",
	}, nil)

	require.NoError(t, mailer.Send(context.Background(), service.MailMessage{To: "me@example.com", Text: "hi"}))
	assert.Equal(t, "localhost:587", captured.addr)
	assert.Nil(t, captured.auth)
	assert.NotContains(t, captured.body, "text/html")
}

func TestSMTPMailer_SendFailure(t *testing.T) {
	mailer, _ := newTestMailer(t, config.MailConfig{Enable: true, Host: "localhost", From: "a@b.c"},
		errors.New("connection refused"))

	err := mailer.Send(context.Background(), service.MailMessage{To: "me@example.com", Text: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
