package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrMailerDisabled is returned by Send when no mail transport is configured.
var ErrMailerDisabled = errors.New("mailer disabled")

// MailMessage is a single outbound e-mail.
type MailMessage struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Mailer delivers transactional e-mail such as password reset links.
type Mailer interface {
	Enabled() bool
	Send(ctx context.Context, msg MailMessage) error
}
