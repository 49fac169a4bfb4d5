// Package mailer sends email through an SMTP relay. It wraps
// github.com/wneessen/go-mail behind a small Sender interface so the
// service layer can be tested against a fake relay.
package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
)

// Sender delivers one email message. Implementations must be safe for
// concurrent use by multiple request handlers.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Message is one outbound email. TextBody and HTMLBody may both be set;
// the HTML part is then attached as an alternative.
type Message struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
	// ReplyTo is an optional "Name <addr>" or bare address.
	ReplyTo string
}

// Config holds SMTP relay connection settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	// Secure enables implicit SSL/TLS (port 465). When false the client
	// negotiates STARTTLS instead.
	Secure bool
	// FromAddress is the envelope sender for every message.
	FromAddress string
	// FromName is the display name paired with FromAddress.
	FromName string
	// Timeout for dial and send. Zero means 30 seconds.
	Timeout time.Duration
}

// SMTPSender sends messages through the configured relay. Each Send
// dials a fresh connection; the relay owns pooling and transport.
type SMTPSender struct {
	cfg Config
}

// NewSMTPSender creates an SMTPSender with the given configuration.
func NewSMTPSender(cfg Config) *SMTPSender {
	if cfg.Port == 0 {
		cfg.Port = 465
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &SMTPSender{cfg: cfg}
}

var _ Sender = (*SMTPSender)(nil)

// Send delivers msg synchronously. Any relay or addressing failure is
// returned to the caller; there is no retry.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return fmt.Errorf("mailer: no recipient")
	}

	m := mail.NewMsg()
	if err := m.FromFormat(s.cfg.FromName, s.cfg.FromAddress); err != nil {
		return fmt.Errorf("mailer: invalid from address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("mailer: invalid to address: %w", err)
	}
	if msg.ReplyTo != "" {
		if err := m.ReplyTo(msg.ReplyTo); err != nil {
			return fmt.Errorf("mailer: invalid reply-to address: %w", err)
		}
	}
	m.Subject(msg.Subject)

	switch {
	case msg.TextBody != "" && msg.HTMLBody != "":
		m.SetBodyString(mail.TypeTextPlain, msg.TextBody)
		m.AddAlternativeString(mail.TypeTextHTML, msg.HTMLBody)
	case msg.HTMLBody != "":
		m.SetBodyString(mail.TypeTextHTML, msg.HTMLBody)
	default:
		m.SetBodyString(mail.TypeTextPlain, msg.TextBody)
	}

	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithTimeout(s.cfg.Timeout),
	}
	if s.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}
	if s.cfg.Secure {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPortPolicy(mail.TLSMandatory))
	}

	c, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("mailer: create client: %w", err)
	}
	if err := c.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("mailer: send: %w", err)
	}
	return nil
}
