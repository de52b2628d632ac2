package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactrelay/internal/config"
)

func baseVars() map[string]string {
	return map[string]string{
		"EMAIL_TO": "owner@example.com",
	}
}

func TestLoadFromMap_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFromMap(baseVars())
	require.NoError(t, err)

	assert.Equal(t, "Contact Relay", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8000", cfg.App.Addr())
	assert.Equal(t, config.ProviderResend, cfg.Email.Provider)
	assert.Equal(t, []string{"owner@example.com"}, cfg.Email.To)
	assert.Equal(t, "New Contact: ", cfg.Email.SubjectPrefix)
	assert.Equal(t, 10*time.Second, cfg.Email.Timeout)
	assert.Equal(t, "https://api.resend.com", cfg.Email.ResendBaseURL)
	assert.Equal(t, int64(16384), cfg.Relay.MaxBodyBytes)
	assert.Equal(t, 0, cfg.RateLimit.PerMinute)
	assert.Equal(t, "*", cfg.CORS.AllowedOrigin)
	assert.Equal(t, []string{"POST", "OPTIONS"}, cfg.CORS.AllowedMethods)
	assert.Equal(t, []string{"authorization", "x-client-info", "apikey", "content-type"}, cfg.CORS.AllowedHeaders)
	assert.Equal(t, config.ResendAPIKeyEnv, cfg.Email.CredentialEnv())
}

func TestLoadFromMap_Overrides(t *testing.T) {
	t.Parallel()

	vars := baseVars()
	vars["EMAIL_TO"] = " a@example.com , b@example.com "
	vars["EMAIL_PROVIDER"] = "Postmark"
	vars["EMAIL_TIMEOUT"] = "3s"
	vars["RATE_LIMIT_PER_MINUTE"] = "6"
	vars["PORT"] = "9090"

	cfg, err := config.LoadFromMap(vars)
	require.NoError(t, err)

	assert.Equal(t, []string{"a@example.com", "b@example.com"}, cfg.Email.To)
	assert.Equal(t, config.ProviderPostmark, cfg.Email.Provider)
	assert.Equal(t, 3*time.Second, cfg.Email.Timeout)
	assert.Equal(t, 6, cfg.RateLimit.PerMinute)
	assert.Equal(t, "0.0.0.0:9090", cfg.App.Addr())
	assert.Equal(t, config.PostmarkServerTokenEnv, cfg.Email.CredentialEnv())
}

func TestLoadFromMap_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		vars    map[string]string
		message string
	}{
		{"missing recipient", map[string]string{}, "EMAIL_TO must be set"},
		{"bad recipient", map[string]string{"EMAIL_TO": "nobody"}, "EMAIL_TO contains an invalid address"},
		{"unknown provider", map[string]string{"EMAIL_TO": "o@example.com", "EMAIL_PROVIDER": "pigeon"}, "unknown EMAIL_PROVIDER"},
		{"smtp without host", map[string]string{"EMAIL_TO": "o@example.com", "EMAIL_PROVIDER": "smtp"}, "SMTP_HOST must be set"},
		{"log outside debug", map[string]string{"EMAIL_TO": "o@example.com", "EMAIL_PROVIDER": "log"}, "only allowed with DEBUG=true"},
		{"zero timeout", map[string]string{"EMAIL_TO": "o@example.com", "EMAIL_TIMEOUT": "0s"}, "EMAIL_TIMEOUT must be greater than 0"},
		{"zero body limit", map[string]string{"EMAIL_TO": "o@example.com", "MAX_BODY_BYTES": "0"}, "MAX_BODY_BYTES must be greater than 0"},
		{"burst missing", map[string]string{"EMAIL_TO": "o@example.com", "RATE_LIMIT_PER_MINUTE": "5", "RATE_LIMIT_BURST": "0"}, "RATE_LIMIT_BURST"},
		{"malformed duration", map[string]string{"EMAIL_TO": "o@example.com", "EMAIL_TIMEOUT": "soon"}, "failed to parse environment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := config.LoadFromMap(tt.vars)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoadFromMap_LogProviderInDebug(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFromMap(map[string]string{
		"EMAIL_TO":       "o@example.com",
		"EMAIL_PROVIDER": "log",
		"DEBUG":          "true",
	})
	require.NoError(t, err)
	assert.Empty(t, cfg.Email.CredentialEnv())
}

func TestEnvSecret_ReadsAtCallTime(t *testing.T) {
	secret := config.EnvSecret("CONTACTRELAY_TEST_SECRET")

	t.Setenv("CONTACTRELAY_TEST_SECRET", "")
	assert.Empty(t, secret())

	t.Setenv("CONTACTRELAY_TEST_SECRET", "  re_123  ")
	assert.Equal(t, "re_123", secret())
}
