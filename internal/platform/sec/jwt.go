// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides cryptographic primitives and session token management.
//
// # Architecture
//
// This package isolates security-sensitive code (hashing, random tokens, JWT
// signing) from the domain logic. The auth service consumes it through small
// interfaces so tests can swap in deterministic implementations.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenUse distinguishes access tokens from refresh tokens inside the claims.
//
// The two kinds are also signed with different secrets, so a refresh token
// never verifies as an access token even if the use claim were forged.
type TokenUse string

const (
	UseAccess  TokenUse = "access"
	UseRefresh TokenUse = "refresh"
)

// Verification failures. Callers branch on these with [errors.Is].
var (
	ErrTokenExpired          = errors.New("sec: token expired")
	ErrTokenMalformed        = errors.New("sec: token malformed")
	ErrTokenSignatureInvalid = errors.New("sec: token signature invalid")
	ErrTokenInvalid          = errors.New("sec: token invalid")
)

// SessionClaims is the payload of both access and refresh tokens.
//
// The account ID travels in the standard 'sub' claim. Version is only set on
// refresh tokens and is compared with the account's current session version
// to support revocation.
type SessionClaims struct {
	jwt.RegisteredClaims

	Use     TokenUse `json:"use"`
	Version int64    `json:"ver,omitempty"`
}

// AccountID returns the subject of the token.
func (c *SessionClaims) AccountID() string {
	return c.Subject
}

// SessionConfig configures a [SessionIssuer].
type SessionConfig struct {
	AccessSecret  []byte
	RefreshSecret []byte
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	Issuer        string

	// Now overrides the clock. Defaults to [time.Now].
	Now func() time.Time
}

// SessionIssuer signs and verifies HS256 session tokens.
type SessionIssuer struct {
	cfg SessionConfig
}

// NewSessionIssuer validates cfg and returns an issuer.
func NewSessionIssuer(cfg SessionConfig) (*SessionIssuer, error) {
	if len(cfg.AccessSecret) == 0 || len(cfg.RefreshSecret) == 0 {
		return nil, errors.New("sec: signing secrets must not be empty")
	}
	if cfg.AccessTTL <= 0 || cfg.RefreshTTL <= 0 {
		return nil, errors.New("sec: token lifetimes must be positive")
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &SessionIssuer{cfg: cfg}, nil
}

// IssueAccess signs a short-lived access token for accountID.
func (issuer *SessionIssuer) IssueAccess(accountID string) (string, error) {
	return issuer.sign(accountID, UseAccess, 0)
}

// IssueRefresh signs a long-lived refresh token bound to the given session version.
func (issuer *SessionIssuer) IssueRefresh(accountID string, version int64) (string, error) {
	return issuer.sign(accountID, UseRefresh, version)
}

// VerifyAccess checks an access token and returns its claims.
func (issuer *SessionIssuer) VerifyAccess(tokenString string) (*SessionClaims, error) {
	return issuer.verify(tokenString, UseAccess)
}

// VerifyRefresh checks a refresh token and returns its claims.
func (issuer *SessionIssuer) VerifyRefresh(tokenString string) (*SessionClaims, error) {
	return issuer.verify(tokenString, UseRefresh)
}

func (issuer *SessionIssuer) sign(accountID string, use TokenUse, version int64) (string, error) {
	currentTime := issuer.cfg.Now()

	secret, ttl := issuer.cfg.AccessSecret, issuer.cfg.AccessTTL
	if use == UseRefresh {
		secret, ttl = issuer.cfg.RefreshSecret, issuer.cfg.RefreshTTL
	}

	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			Issuer:    issuer.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(ttl)),
		},
		Use:     use,
		Version: version,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign %s token: %w", use, err)
	}

	return signedToken, nil
}

func (issuer *SessionIssuer) verify(tokenString string, use TokenUse) (*SessionClaims, error) {
	secret := issuer.cfg.AccessSecret
	if use == UseRefresh {
		secret = issuer.cfg.RefreshSecret
	}

	parserOptions := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(issuer.cfg.Now),
		jwt.WithExpirationRequired(),
	}
	if issuer.cfg.Issuer != "" {
		parserOptions = append(parserOptions, jwt.WithIssuer(issuer.cfg.Issuer))
	}

	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	}, parserOptions...)
	if err != nil {
		return nil, classify(err)
	}

	if !token.Valid || claims.Use != use || claims.Subject == "" {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// classify maps jwt parser errors onto the package sentinels.
func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %w", ErrTokenSignatureInvalid, err)
	default:
		return fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}
}
