package mailer

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mrz1836/postmark"
)

// PostmarkSender delivers through Postmark's transactional API.
type PostmarkSender struct {
	baseURL     string
	serverToken func() string
	httpClient  *http.Client
}

// NewPostmarkSender creates a Postmark sender. An empty baseURL keeps the
// SDK default; serverToken is consulted on every Send.
func NewPostmarkSender(baseURL string, serverToken func() string, timeout time.Duration) *PostmarkSender {
	return &PostmarkSender{
		baseURL:     strings.TrimRight(baseURL, "/"),
		serverToken: serverToken,
		httpClient:  &http.Client{Timeout: withDefaultTimeout(timeout)},
	}
}

// Name returns the provider name
func (s *PostmarkSender) Name() string {
	return "postmark"
}

// Send implements Sender
func (s *PostmarkSender) Send(ctx context.Context, msg Message) error {
	token := s.serverToken()
	if token == "" {
		return fmt.Errorf("%w: POSTMARK_SERVER_TOKEN", ErrMissingCredential)
	}
	if err := msg.Validate(); err != nil {
		return err
	}

	client := postmark.NewClient(token, "")
	client.HTTPClient = s.httpClient
	if s.baseURL != "" {
		client.BaseURL = s.baseURL
	}

	resp, err := client.SendEmail(ctx, postmark.Email{
		From:     msg.From,
		To:       strings.Join(msg.To, ","),
		Subject:  msg.Subject,
		HTMLBody: msg.HTML,
	})
	if err != nil {
		return &ProviderError{Provider: s.Name(), Detail: err.Error(), Err: err}
	}
	if resp.ErrorCode > 0 {
		return &ProviderError{
			Provider: s.Name(),
			Code:     int64(resp.ErrorCode),
			Detail:   resp.Message,
		}
	}
	return nil
}
