package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
)

// SMTPConfig holds SMTP server configuration.
type SMTPConfig struct {
	Host     string
	Port     int // 587 for STARTTLS, 465 for implicit TLS
	Username string
	// Password is consulted on every Send when Username is set.
	Password func() string
	UseSSL   bool
	Timeout  time.Duration
}

// SMTPSender delivers over SMTP using go-mail.
type SMTPSender struct {
	cfg SMTPConfig
}

// NewSMTPSender creates an SMTP sender
func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp: host is required")
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	if cfg.Port == 465 {
		cfg.UseSSL = true
	}
	if cfg.Password == nil {
		cfg.Password = func() string { return "" }
	}
	cfg.Timeout = withDefaultTimeout(cfg.Timeout)
	return &SMTPSender{cfg: cfg}, nil
}

// Name returns the provider name
func (s *SMTPSender) Name() string {
	return "smtp"
}

// Send implements Sender
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	var password string
	if s.cfg.Username != "" {
		password = s.cfg.Password()
		if password == "" {
			return fmt.Errorf("%w: SMTP_PASSWORD", ErrMissingCredential)
		}
	}

	m := mail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return fmt.Errorf("smtp: invalid from address: %w", err)
	}
	if err := m.To(msg.To...); err != nil {
		return fmt.Errorf("smtp: invalid to address: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTML)

	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithTimeout(s.cfg.Timeout),
	}
	if s.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(password),
		)
	}
	if s.cfg.UseSSL {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPortPolicy(mail.TLSMandatory))
	}

	c, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("smtp: failed to create client: %w", err)
	}

	if err := c.DialAndSendWithContext(ctx, m); err != nil {
		return &ProviderError{Provider: s.Name(), Detail: err.Error(), Err: err}
	}
	return nil
}
