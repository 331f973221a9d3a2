// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, cookie settings, and cross-cutting keys that are
shared between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Sessions: JWT issuer and refresh cookie configuration.
  - Storage: Schema names and Redis key prefixes.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "hirelane-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	// Outbound email sends share it.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Startup

const (
	// StartupRetryBase is the first backoff interval when dialing dependencies.
	StartupRetryBase = 500 * time.Millisecond

	// StartupMaxRetries bounds connection attempts for PostgreSQL and Redis.
	StartupMaxRetries = 5
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
	HeaderAuthorization = "Authorization"
)

// # Sessions

const (
	// AuthIssuer is the standard 'iss' claim in JWTs.
	AuthIssuer = "hirelane.app"

	// SessionCookieName is the cookie carrying the refresh token.
	SessionCookieName = "jwt"

	// SessionCookiePath scopes the session cookie.
	SessionCookiePath = "/"

	// SessionCookieMaxAge matches the refresh token lifetime.
	SessionCookieMaxAge = 7 * 24 * time.Hour
)

// # Credential Entropy

const (
	// VerificationTokenBytes is the random length of email verification tokens.
	VerificationTokenBytes = 32

	// ResetTokenBytes is the random length of password reset tokens.
	ResetTokenBytes = 20
)

// # JSON Field Identifiers

// Keys shared by hand-built JSON bodies and structured log attributes.
const (
	FieldError   = "error"
	FieldCode    = "code"
	FieldStatus  = "status"
	FieldApp     = "app"
	FieldVersion = "version"
	FieldChecks  = "checks"
)

// # Database Schemas

const (
	SchemaUsers   = "users"
	SchemaRecruit = "recruit"
)

// # Redis Prefixes (Key Taxonomy)

const (
	RedisPrefixVerifyToken    = "auth:verify_token:"
	RedisPrefixSessionVersion = "auth:session_version:"
)
