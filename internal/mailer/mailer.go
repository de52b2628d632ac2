// Package mailer delivers notification emails through a transactional
// email provider. Each Sender makes exactly one delivery attempt per call;
// retrying is left to the caller.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"contactrelay/internal/config"
)

var (
	// ErrMissingCredential is returned when the provider credential is not configured.
	ErrMissingCredential = errors.New("mailer: provider credential is not set")
	// ErrInvalidMessage is returned for messages without recipients, subject or body.
	ErrInvalidMessage = errors.New("mailer: invalid message")
)

// Sender delivers one email message.
type Sender interface {
	// Send makes a single delivery attempt.
	Send(ctx context.Context, msg Message) error
	// Name identifies the provider in logs and metrics.
	Name() string
}

// Message is the provider-neutral notification payload.
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// Validate checks that the message can be handed to a provider
func (m Message) Validate() error {
	switch {
	case m.From == "":
		return fmt.Errorf("%w: sender is empty", ErrInvalidMessage)
	case len(m.To) == 0:
		return fmt.Errorf("%w: no recipients", ErrInvalidMessage)
	case m.Subject == "":
		return fmt.Errorf("%w: subject is empty", ErrInvalidMessage)
	case m.HTML == "":
		return fmt.Errorf("%w: body is empty", ErrInvalidMessage)
	}
	return nil
}

// ProviderError describes a failed delivery attempt.
// Detail holds the provider's response and must only be logged.
type ProviderError struct {
	Provider string
	Status   int   // HTTP status, 0 when no response was received
	Code     int64 // provider-specific error code, if any
	Detail   string
	Err      error
}

func (e *ProviderError) Error() string {
	switch {
	case e.Status != 0:
		return fmt.Sprintf("%s: unexpected status %d", e.Provider, e.Status)
	case e.Code != 0:
		return fmt.Sprintf("%s: error code %d", e.Provider, e.Code)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("%s: delivery failed", e.Provider)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// New builds the Sender selected by cfg.Provider.
func New(cfg *config.EmailConfig, logger *zap.Logger) (Sender, error) {
	switch cfg.Provider {
	case config.ProviderResend:
		return NewResendSender(cfg.ResendBaseURL, config.EnvSecret(config.ResendAPIKeyEnv), cfg.Timeout), nil
	case config.ProviderPostmark:
		return NewPostmarkSender(cfg.PostmarkBaseURL, config.EnvSecret(config.PostmarkServerTokenEnv), cfg.Timeout), nil
	case config.ProviderSMTP:
		s, err := NewSMTPSender(SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: config.EnvSecret(config.SMTPPasswordEnv),
			UseSSL:   cfg.SMTPUseSSL,
			Timeout:  cfg.Timeout,
		})
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.ProviderLog:
		return NewLogSender(logger), nil
	}
	return nil, fmt.Errorf("mailer: unknown provider %q", cfg.Provider)
}

func withDefaultTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return 10 * time.Second
	}
	return d
}
