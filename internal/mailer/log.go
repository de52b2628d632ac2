package mailer

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// LogSender writes messages to the logger instead of delivering them.
// It is only selectable in debug mode.
type LogSender struct {
	logger *zap.Logger
}

// NewLogSender creates a LogSender
func NewLogSender(logger *zap.Logger) *LogSender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogSender{logger: logger}
}

// Name returns the provider name
func (s *LogSender) Name() string {
	return "log"
}

// Send implements Sender
func (s *LogSender) Send(_ context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	s.logger.Info("email not delivered (log provider)",
		zap.String("from", msg.From),
		zap.String("to", strings.Join(msg.To, ",")),
		zap.String("subject", msg.Subject),
		zap.Int("html_bytes", len(msg.HTML)),
	)
	return nil
}
