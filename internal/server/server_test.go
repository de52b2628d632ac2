package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"contactrelay/internal/config"
	"contactrelay/internal/mailer"
	"contactrelay/internal/services"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []mailer.Message
	err  error
}

func (s *recordingSender) Name() string { return "recording" }

func (s *recordingSender) Send(_ context.Context, msg mailer.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, msg)
	return s.err
}

func (s *recordingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func testConfig(t *testing.T, extra map[string]string) *config.Config {
	t.Helper()
	vars := map[string]string{
		"EMAIL_TO": "owner@example.com",
		"DEBUG":    "true",
	}
	for k, v := range extra {
		vars[k] = v
	}
	cfg, err := config.LoadFromMap(vars)
	require.NoError(t, err)
	return cfg
}

func newTestHandler(t *testing.T, cfg *config.Config, sender mailer.Sender) http.Handler {
	t.Helper()
	relaySvc := services.NewRelayService(sender, &cfg.Email, &cfg.Relay, zap.NewNop())
	healthSvc := services.NewHealthService(cfg.App.Name)
	return New(cfg, zap.NewNop(), relaySvc, healthSvc)
}

const validSubmission = `{"name":"Ada","email":"ada@example.com","subject":"Hello","message":"Just saying hello to you."}`

func post(h http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/send-contact-email", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

func assertCORS(t *testing.T, h http.Header) {
	t.Helper()
	assert.Equal(t, "*", h.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "authorization, x-client-info, apikey, content-type", h.Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "POST, OPTIONS", h.Get("Access-Control-Allow-Methods"))
}

func TestPreflight(t *testing.T) {
	sender := &recordingSender{}
	h := newTestHandler(t, testConfig(t, nil), sender)

	for _, path := range []string{"/send-contact-email", "/anything"} {
		req := httptest.NewRequest(http.MethodOptions, path, nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
		assertCORS(t, rec.Header())
	}
	assert.Zero(t, sender.count())
}

func TestSendContactEmail_Success(t *testing.T) {
	sender := &recordingSender{}
	h := newTestHandler(t, testConfig(t, nil), sender)

	rec := post(h, validSubmission)

	require.Equal(t, http.StatusOK, rec.Code)
	assertCORS(t, rec.Header())
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, services.MsgMessageReceived, body["message"])
	assert.Equal(t, 1, sender.count())
}

func TestSendContactEmail_BadRequest(t *testing.T) {
	sender := &recordingSender{}
	h := newTestHandler(t, testConfig(t, nil), sender)

	tests := []struct {
		name string
		body string
		want string
	}{
		{"empty", "", services.MsgEmptyBody},
		{"invalid json", "{not json", services.MsgInvalidFormat},
		{"missing field", `{"name":"Ada","email":"ada@example.com","subject":"Hello"}`, services.MsgFieldsRequired},
		{"invalid email", `{"name":"Ada","email":"nope","subject":"Hello","message":"Just saying hello."}`, services.MsgFieldsInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(h, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assertCORS(t, rec.Header())
			body := decode(t, rec)
			assert.Equal(t, tt.want, body["error"])
			assert.NotContains(t, body, "success")
		})
	}
	assert.Zero(t, sender.count())
}

func TestSendContactEmail_ProviderFailure(t *testing.T) {
	sender := &recordingSender{err: &mailer.ProviderError{Provider: "recording", Status: 401, Detail: "invalid api key"}}
	h := newTestHandler(t, testConfig(t, nil), sender)

	rec := post(h, validSubmission)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assertCORS(t, rec.Header())
	body := decode(t, rec)
	assert.Equal(t, services.MsgSendFailed, body["error"])
	assert.NotContains(t, rec.Body.String(), "invalid api key")
	assert.Equal(t, 1, sender.count())
}

func TestSendContactEmail_WrongMethod(t *testing.T) {
	h := newTestHandler(t, testConfig(t, nil), &recordingSender{})

	req := httptest.NewRequest(http.MethodGet, "/send-contact-email", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.GreaterOrEqual(t, rec.Code, 400)
	assertCORS(t, rec.Header())
}

func TestHealthEndpoint(t *testing.T) {
	cfg := testConfig(t, map[string]string{"APP_NAME": "relay-test"})
	h := newTestHandler(t, cfg, &recordingSender{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "relay-test", body["service"])
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestHandler(t, testConfig(t, nil), &recordingSender{})
	post(h, validSubmission)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "contact_submissions_total")
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}

func TestRateLimit_RejectsAfterBurst(t *testing.T) {
	cfg := testConfig(t, map[string]string{
		"RATE_LIMIT_PER_MINUTE": "1",
		"RATE_LIMIT_BURST":      "2",
	})
	sender := &recordingSender{}
	h := newTestHandler(t, cfg, sender)

	assert.Equal(t, http.StatusOK, post(h, validSubmission).Code)
	assert.Equal(t, http.StatusOK, post(h, validSubmission).Code)

	rec := post(h, validSubmission)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assertCORS(t, rec.Header())
	assert.Equal(t, MsgTooManyRequests, decode(t, rec)["error"])
	assert.Equal(t, 2, sender.count())

	// Health checks are not limited
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	hrec := httptest.NewRecorder()
	h.ServeHTTP(hrec, req)
	assert.Equal(t, http.StatusOK, hrec.Code)
}

func TestRateLimiter_Disabled(t *testing.T) {
	assert.Nil(t, NewRateLimiter(&config.RateLimitConfig{PerMinute: 0, Burst: 5}))

	var l *RateLimiter
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusAccepted) })
	rec := httptest.NewRecorder()
	l.Middleware(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestRateLimiter_RefillsAndSeparatesClients(t *testing.T) {
	l := NewRateLimiter(&config.RateLimitConfig{PerMinute: 60, Burst: 1})
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.2"))

	now = now.Add(time.Second)
	assert.True(t, l.Allow("10.0.0.1"))
}

func TestRateLimiter_SweepsIdleClients(t *testing.T) {
	l := NewRateLimiter(&config.RateLimitConfig{PerMinute: 60, Burst: 1})
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	l.Allow("10.0.0.1")
	now = now.Add(2 * idleLimiterTTL)
	l.Allow("10.0.0.2")

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.NotContains(t, l.clients, "10.0.0.1")
	assert.Contains(t, l.clients, "10.0.0.2")
}
