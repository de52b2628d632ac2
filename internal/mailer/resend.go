package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// maxDetailBytes bounds how much of a provider response is kept for logging.
const maxDetailBytes = 4096

// ResendSender posts messages to the Resend HTTP API with a bearer key.
type ResendSender struct {
	baseURL string
	apiKey  func() string
	client  *http.Client
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// NewResendSender creates a Resend sender. apiKey is consulted on every Send.
func NewResendSender(baseURL string, apiKey func() string, timeout time.Duration) *ResendSender {
	return &ResendSender{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: withDefaultTimeout(timeout)},
	}
}

// Name returns the provider name
func (s *ResendSender) Name() string {
	return "resend"
}

// Send posts msg to /emails. Any non-2xx status is returned as *ProviderError.
func (s *ResendSender) Send(ctx context.Context, msg Message) error {
	key := s.apiKey()
	if key == "" {
		return fmt.Errorf("%w: RESEND_API_KEY", ErrMissingCredential)
	}
	if err := msg.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(resendRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		HTML:    msg.HTML,
	})
	if err != nil {
		return fmt.Errorf("resend: failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("resend: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+key)

	resp, err := s.client.Do(req)
	if err != nil {
		return &ProviderError{Provider: s.Name(), Err: err}
	}
	defer resp.Body.Close()

	detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxDetailBytes))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &ProviderError{
			Provider: s.Name(),
			Status:   resp.StatusCode,
			Detail:   string(detail),
		}
	}
	return nil
}
