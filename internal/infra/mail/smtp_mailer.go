// Package mail delivers transactional e-mail over SMTP.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"mime/quotedprintable"
	"net"
	"net/smtp"
	"net/textproto"
	"strconv"
	"time"

	"folio/config"
	"folio/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type smtpMailer struct {
	cfg  config.MailConfig
	send sendFunc
	now  func() time.Time
}

// NewSMTPMailer returns a Mailer backed by net/smtp. When mail is disabled every Send fails with
// service.ErrMailerDisabled so callers can choose their fallback.
func NewSMTPMailer(cfg *config.Config) service.Mailer {
	mailCfg := config.MailConfig{}
	if cfg.Mail != nil {
		mailCfg = *cfg.Mail
	}

	return &smtpMailer{cfg: mailCfg, send: smtp.SendMail, now: time.Now}
}

func (m *smtpMailer) Enabled() bool {
	return m.cfg.Enable
}

func (m *smtpMailer) Send(ctx context.Context, msg service.MailMessage) error {
	if !m.cfg.Enable {
		return service.ErrMailerDisabled
	}
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	body, err := m.compose(msg)
	if err != nil {
		return err
	}

	port := m.cfg.Port
	if port == 0 {
		port = 587
	}
	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(port))

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	if err := m.send(addr, auth, m.cfg.From, []string{msg.To}, body); err != nil {
		return errors.Wrap(err, "smtp send")
	}

	return nil
}

// compose renders a multipart/alternative message carrying both the text and HTML bodies.
func (m *smtpMailer) compose(msg service.MailMessage) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&buf, "To: %s\r\n", msg.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", msg.Subject)
	fmt.Fprintf(&buf, "Date: %s\r\n", m.now().UTC().Format(time.RFC1123Z))
	fmt.Fprintf(&buf, "Message-ID: <%s@folio>\r\n", uuid.NewString())
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%s\r\n\r\n", writer.Boundary())

	parts := []struct {
		contentType string
		content     string
	}{
		{contentType: "text/plain; charset=UTF-8", content: msg.Text},
		{contentType: "text/html; charset=UTF-8", content: msg.HTML},
	}
	for _, p := range parts {
		if p.content == "" {
			continue
		}
		header := textproto.MIMEHeader{}
		header.Set("Content-Type", p.contentType)
		header.Set("Content-Transfer-Encoding", "quoted-printable")

		partWriter, err := writer.CreatePart(header)
		if err != nil {
			return nil, errors.Wrap(err, "create mime part")
		}
		qp := quotedprintable.NewWriter(partWriter)
		if _, err := qp.Write([]byte(p.content)); err != nil {
			return nil, errors.Wrap(err, "write mime part")
		}
		if err := qp.Close(); err != nil {
			return nil, errors.Wrap(err, "close mime part")
		}
	}

	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "close multipart body")
	}

	return buf.Bytes(), nil
}
