package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"contactrelay/gen/relay"
	"contactrelay/internal/config"
	"contactrelay/internal/domain"
	"contactrelay/internal/mailer"
	"contactrelay/internal/metrics"
	apperrors "contactrelay/pkg/errors"
)

// Client-facing messages. None of them carries request or provider detail.
const (
	MsgEmptyBody       = "Empty request body"
	MsgBodyTooLarge    = "Request body too large"
	MsgInvalidFormat   = "Invalid request format. Please try again."
	MsgFieldsRequired  = "All fields are required"
	MsgFieldsInvalid   = "One or more fields are invalid"
	MsgSendFailed      = "Failed to send message. Please try again later."
	MsgMessageReceived = "Message received! We'll get back to you soon."
)

// RelayService implements the relay service
type RelayService struct {
	sender       mailer.Sender
	from         string
	to           []string
	prefix       string
	timeout      time.Duration
	maxBodyBytes int64
	logger       *zap.Logger
}

// NewRelayService creates a new relay service
func NewRelayService(sender mailer.Sender, emailCfg *config.EmailConfig, relayCfg *config.RelayConfig, logger *zap.Logger) *RelayService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RelayService{
		sender:       sender,
		from:         emailCfg.From,
		to:           append([]string(nil), emailCfg.To...),
		prefix:       emailCfg.SubjectPrefix,
		timeout:      emailCfg.Timeout,
		maxBodyBytes: relayCfg.MaxBodyBytes,
		logger:       logger.Named("relay"),
	}
}

// Send implements the send method: read, parse, validate, sanitize,
// dispatch once and respond. Every failure is returned as a goa
// ServiceError carrying only a client-safe message.
func (s *RelayService) Send(ctx context.Context, body io.ReadCloser) (*relay.SendResult, error) {
	log := s.logger.With(zap.String("submission_id", uuid.NewString()))
	log.Info("submission received")

	submission, err := s.receive(body)
	if err == nil {
		err = s.dispatch(ctx, log, submission)
	}
	if err != nil {
		return nil, s.fail(log, err)
	}

	metrics.RecordContactSubmission(metrics.OutcomeSent)
	log.Info("submission relayed", zap.String("provider", s.sender.Name()))
	return &relay.SendResult{
		Success: true,
		Message: MsgMessageReceived,
	}, nil
}

// receive reads and checks the request body. It never includes the raw
// body in the returned error.
func (s *RelayService) receive(body io.ReadCloser) (domain.ContactSubmission, error) {
	var submission domain.ContactSubmission
	if body == nil {
		return submission, apperrors.New(apperrors.ErrCodeBadRequest, MsgEmptyBody)
	}
	defer body.Close()

	raw, err := io.ReadAll(io.LimitReader(body, s.maxBodyBytes+1))
	if err != nil {
		return submission, apperrors.Wrap(apperrors.ErrCodeBadRequest, MsgInvalidFormat, fmt.Errorf("read body: %w", err))
	}
	if int64(len(raw)) > s.maxBodyBytes {
		return submission, apperrors.New(apperrors.ErrCodeBadRequest, MsgBodyTooLarge)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return submission, apperrors.New(apperrors.ErrCodeBadRequest, MsgEmptyBody)
	}

	if err := json.Unmarshal(raw, &submission); err != nil {
		return submission, apperrors.Wrap(apperrors.ErrCodeBadRequest, MsgInvalidFormat, describeJSONError(err, len(raw)))
	}

	if missing := submission.MissingFields(); len(missing) > 0 {
		return submission, apperrors.Wrap(apperrors.ErrCodeBadRequest, MsgFieldsRequired, fmt.Errorf("missing fields: %v", missing))
	}

	if fieldErrs := submission.Validate(); fieldErrs.HasErrors() {
		return submission, apperrors.Wrap(apperrors.ErrCodeValidation, MsgFieldsInvalid, fmt.Errorf("field errors: %v", fieldErrs))
	}

	return submission, nil
}

// dispatch sends exactly one notification for the submission.
func (s *RelayService) dispatch(ctx context.Context, log *zap.Logger, submission domain.ContactSubmission) error {
	if len(s.to) == 0 {
		return apperrors.New(apperrors.ErrCodeConfiguration, "no notification recipient configured")
	}

	safe := sanitize(submission)
	msg := mailer.Message{
		From:    s.from,
		To:      s.to,
		Subject: notificationSubject(s.prefix, safe),
		HTML:    notificationHTML(safe),
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	err := s.sender.Send(ctx, msg)
	metrics.RecordEmailDispatch(s.sender.Name(), time.Since(start), err)
	if err == nil {
		return nil
	}

	var perr *mailer.ProviderError
	switch {
	case errors.Is(err, mailer.ErrMissingCredential):
		return apperrors.Wrap(apperrors.ErrCodeConfiguration, "provider credential missing", err)
	case errors.As(err, &perr):
		log.Error("email provider rejected message",
			zap.String("provider", perr.Provider),
			zap.Int("status", perr.Status),
			zap.Int64("code", perr.Code),
			zap.String("detail", perr.Detail),
		)
		return apperrors.Wrap(apperrors.ErrCodeUpstream, "provider call failed", err)
	}
	return apperrors.Wrap(apperrors.ErrCodeInternalError, "dispatch failed", err)
}

// fail logs err and converts it into the ServiceError returned to the caller.
func (s *RelayService) fail(log *zap.Logger, err error) error {
	if apperrors.IsClientError(err) {
		var appErr *apperrors.AppError
		errors.As(err, &appErr)
		metrics.RecordContactSubmission(metrics.OutcomeRejected)
		log.Warn("submission rejected", zap.String("code", string(appErr.Code)), zap.Error(err))
		return RelayBadRequest(appErr.Message)
	}

	metrics.RecordContactSubmission(metrics.OutcomeFailed)
	log.Error("submission failed", zap.String("code", string(apperrors.CodeOf(err))), zap.Error(err))
	return RelayInternal(MsgSendFailed)
}

// describeJSONError keeps the parser's position information for logs
// without copying any of the body into the error.
func describeJSONError(err error, size int) error {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		return fmt.Errorf("malformed JSON at offset %d of %d bytes", syntaxErr.Offset, size)
	case errors.As(err, &typeErr):
		return fmt.Errorf("field %q has type %s, want %s", typeErr.Field, typeErr.Value, typeErr.Type)
	}
	return fmt.Errorf("undecodable JSON body of %d bytes", size)
}
