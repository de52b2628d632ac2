package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"contactrelay/internal/domain"
)

// Supported email providers
const (
	ProviderResend   = "resend"
	ProviderPostmark = "postmark"
	ProviderSMTP     = "smtp"
	ProviderLog      = "log"
)

// Config holds application configuration
type Config struct {
	App       AppConfig
	CORS      CORSConfig
	Email     EmailConfig
	Relay     RelayConfig
	RateLimit RateLimitConfig
}

// AppConfig holds application-level configuration
type AppConfig struct {
	Name     string `env:"APP_NAME" envDefault:"Contact Relay"`
	Version  string `env:"APP_VERSION" envDefault:"1.0.0"`
	Env      string `env:"APP_ENV" envDefault:"dev"`
	Debug    bool   `env:"DEBUG" envDefault:"false"`
	Port     string `env:"PORT" envDefault:"8000"`
	Host     string `env:"HOST" envDefault:"0.0.0.0"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigin  string   `env:"CORS_ALLOWED_ORIGIN" envDefault:"*"`
	AllowedMethods []string `env:"CORS_ALLOWED_METHODS" envDefault:"POST,OPTIONS" envSeparator:","`
	AllowedHeaders []string `env:"CORS_ALLOWED_HEADERS" envDefault:"authorization,x-client-info,apikey,content-type" envSeparator:","`
}

// EmailConfig holds email provider configuration.
// Credentials are not stored here; they are read through Secret at send time.
type EmailConfig struct {
	Provider        string        `env:"EMAIL_PROVIDER" envDefault:"resend"`
	From            string        `env:"EMAIL_FROM" envDefault:"Portfolio Contact <onboarding@resend.dev>"`
	To              []string      `env:"EMAIL_TO" envSeparator:","`
	SubjectPrefix   string        `env:"EMAIL_SUBJECT_PREFIX" envDefault:"New Contact: "`
	Timeout         time.Duration `env:"EMAIL_TIMEOUT" envDefault:"10s"`
	ResendBaseURL   string        `env:"RESEND_BASE_URL" envDefault:"https://api.resend.com"`
	PostmarkBaseURL string        `env:"POSTMARK_BASE_URL"`
	SMTPHost        string        `env:"SMTP_HOST"`
	SMTPPort        int           `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername    string        `env:"SMTP_USERNAME"`
	SMTPUseSSL      bool          `env:"SMTP_USE_SSL" envDefault:"false"`
}

// RelayConfig holds request handling limits for the relay endpoint
type RelayConfig struct {
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"16384"`
}

// RateLimitConfig holds the optional per-client rate limit.
// A zero PerMinute disables limiting.
type RateLimitConfig struct {
	PerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"0"`
	Burst     int `env:"RATE_LIMIT_BURST" envDefault:"5"`
}

// Secret returns the current value of a credential
type Secret func() string

// EnvSecret reads key from the process environment on every call
func EnvSecret(key string) Secret {
	return func() string {
		return strings.TrimSpace(os.Getenv(key))
	}
}

// Environment variables holding provider credentials
const (
	ResendAPIKeyEnv        = "RESEND_API_KEY"
	PostmarkServerTokenEnv = "POSTMARK_SERVER_TOKEN"
	SMTPPasswordEnv        = "SMTP_PASSWORD"
)

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	return parse(env.Options{})
}

// LoadFromMap parses configuration from the given variables only.
func LoadFromMap(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.Email.Provider = strings.ToLower(strings.TrimSpace(cfg.Email.Provider))
	cfg.Email.To = trimAll(cfg.Email.To)
	cfg.CORS.AllowedMethods = trimAll(cfg.CORS.AllowedMethods)
	cfg.CORS.AllowedHeaders = trimAll(cfg.CORS.AllowedHeaders)

	// Validate configuration
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if cfg.App.Port == "" {
		return fmt.Errorf("PORT must be set")
	}
	if len(cfg.Email.To) == 0 {
		return fmt.Errorf("EMAIL_TO must be set")
	}
	for _, addr := range cfg.Email.To {
		if !domain.IsValidEmail(addr) {
			return fmt.Errorf("EMAIL_TO contains an invalid address: %q", addr)
		}
	}
	if cfg.Email.From == "" {
		return fmt.Errorf("EMAIL_FROM must be set")
	}
	if cfg.Email.Timeout <= 0 {
		return fmt.Errorf("EMAIL_TIMEOUT must be greater than 0")
	}
	switch cfg.Email.Provider {
	case ProviderResend, ProviderPostmark:
	case ProviderSMTP:
		if cfg.Email.SMTPHost == "" {
			return fmt.Errorf("SMTP_HOST must be set when EMAIL_PROVIDER=smtp")
		}
	case ProviderLog:
		if !cfg.App.Debug {
			return fmt.Errorf("EMAIL_PROVIDER=log is only allowed with DEBUG=true")
		}
	default:
		return fmt.Errorf("unknown EMAIL_PROVIDER %q", cfg.Email.Provider)
	}
	if cfg.Relay.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be greater than 0")
	}
	if cfg.RateLimit.PerMinute < 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must not be negative")
	}
	if cfg.RateLimit.PerMinute > 0 && cfg.RateLimit.Burst <= 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must be greater than 0 when rate limiting is enabled")
	}
	return nil
}

// CredentialEnv returns the environment variable that holds the
// credential for the configured provider, or "" if none is needed.
func (c *EmailConfig) CredentialEnv() string {
	switch c.Provider {
	case ProviderResend:
		return ResendAPIKeyEnv
	case ProviderPostmark:
		return PostmarkServerTokenEnv
	case ProviderSMTP:
		if c.SMTPUsername != "" {
			return SMTPPasswordEnv
		}
	}
	return ""
}

// Addr returns the listen address
func (c *AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
