// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, token issuer) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// minSecretLength is the shortest HMAC signing secret accepted at startup.
const minSecretLength = 32

// Supported MAIL_PROVIDER values.
const (
	MailProviderLog      = "log"
	MailProviderSMTP     = "smtp"
	MailProviderMailgun  = "mailgun"
	MailProviderSendGrid = "sendgrid"
)

// # Configuration Schema

// Config holds all runtime configuration for the Hirelane API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// PublicBaseURL prefixes verification and reset links sent by email.
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`

	// ClientURL is the browser origin allowed by CORS outside development.
	ClientURL string `env:"CLIENT_URL"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis)
	RedisURL string `env:"REDIS_URL,required,notEmpty"`

	// MetricsEnabled exposes GET /metrics.
	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"true"`

	Tokens Tokens
	Mail   Mail
}

// Tokens holds the signing secrets and lifetimes of every credential the
// service issues.
type Tokens struct {
	AccessSecret  string `env:"ACCESS_TOKEN_SECRET,required,notEmpty"`
	RefreshSecret string `env:"REFRESH_TOKEN_SECRET,required,notEmpty"`

	AccessTTL       time.Duration `env:"ACCESS_TOKEN_TTL"       envDefault:"15m"`
	RefreshTTL      time.Duration `env:"REFRESH_TOKEN_TTL"      envDefault:"168h"`
	VerificationTTL time.Duration `env:"VERIFICATION_TOKEN_TTL" envDefault:"1h"`
	ResetTTL        time.Duration `env:"RESET_TOKEN_TTL"        envDefault:"10m"`
}

// Mail selects and configures the outbound email provider.
type Mail struct {
	Provider    string `env:"MAIL_PROVIDER"     envDefault:"log"`
	FromName    string `env:"MAIL_FROM_NAME"    envDefault:"Hirelane"`
	FromAddress string `env:"MAIL_FROM_ADDRESS" envDefault:"no-reply@hirelane.local"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     string `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`

	MailgunDomain string `env:"MAILGUN_DOMAIN"`
	MailgunAPIKey string `env:"MAILGUN_API_KEY"`

	SendGridAPIKey string `env:"SENDGRID_API_KEY"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct and validates it.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks cross-field rules that struct tags cannot express.
func (c *Config) Validate() error {
	var errs []error

	if len(c.Tokens.AccessSecret) < minSecretLength {
		errs = append(errs, fmt.Errorf("config: ACCESS_TOKEN_SECRET must be at least %d bytes", minSecretLength))
	}
	if len(c.Tokens.RefreshSecret) < minSecretLength {
		errs = append(errs, fmt.Errorf("config: REFRESH_TOKEN_SECRET must be at least %d bytes", minSecretLength))
	}
	if c.Tokens.AccessSecret == c.Tokens.RefreshSecret {
		errs = append(errs, errors.New("config: access and refresh signing secrets must differ"))
	}

	for name, ttl := range map[string]time.Duration{
		"ACCESS_TOKEN_TTL":       c.Tokens.AccessTTL,
		"REFRESH_TOKEN_TTL":      c.Tokens.RefreshTTL,
		"VERIFICATION_TOKEN_TTL": c.Tokens.VerificationTTL,
		"RESET_TOKEN_TTL":        c.Tokens.ResetTTL,
	} {
		if ttl <= 0 {
			errs = append(errs, fmt.Errorf("config: %s must be positive", name))
		}
	}

	if err := c.Mail.validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (m Mail) validate() error {
	switch m.Provider {
	case MailProviderLog:
		return nil
	case MailProviderSMTP:
		if m.SMTPHost == "" || m.SMTPPort == "" {
			return errors.New("config: SMTP_HOST and SMTP_PORT are required for the smtp provider")
		}
	case MailProviderMailgun:
		if m.MailgunDomain == "" || m.MailgunAPIKey == "" {
			return errors.New("config: MAILGUN_DOMAIN and MAILGUN_API_KEY are required for the mailgun provider")
		}
	case MailProviderSendGrid:
		if m.SendGridAPIKey == "" {
			return errors.New("config: SENDGRID_API_KEY is required for the sendgrid provider")
		}
	default:
		return fmt.Errorf("config: unknown MAIL_PROVIDER %q", m.Provider)
	}

	if m.FromAddress == "" {
		return errors.New("config: MAIL_FROM_ADDRESS is required")
	}
	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// AllowedOrigin returns the browser origin trusted by CORS.
func (c *Config) AllowedOrigin() string {
	return c.ClientURL
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
