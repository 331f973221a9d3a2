// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"time"
)

// ErrAccountNotFound is returned by [AccountRepository] when no row matches.
//
// It never reaches clients; the service maps it to the taxonomy entry of the
// flow that hit it.
var ErrAccountNotFound = errors.New("auth: account not found")

// # Account Data Access

// AccountRepository defines the data access contract for accounts.
//
// Emails are compared in their normalized form. Every write to the reset
// fields sets or clears digest and expiry together.
type AccountRepository interface {

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Account: Hydrated entity
		  - error: ErrAccountNotFound or database retrieval failures
	*/
	FindByID(context context.Context, id string) (*Account, error)

	/*
		FindByEmail returns the account with the given email.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *Account: Hydrated entity
		  - error: ErrAccountNotFound or database retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*Account, error)

	/*
		Create persists a brand-new account.

		Parameters:
		  - context: context.Context
		  - account: *Account (timestamps are filled in on success)

		Returns:
		  - error: Unique violations or persistence failures
	*/
	Create(context context.Context, account *Account) error

	/*
		MarkVerified flips isVerified to true.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: ErrAccountNotFound or persistence failures
	*/
	MarkVerified(context context.Context, id string) error

	/*
		SetResetToken stores a reset digest together with its absolute expiry.

		Parameters:
		  - context: context.Context
		  - id: string
		  - digest: string (SHA-256 hex of the plaintext token)
		  - expiry: time.Time

		Returns:
		  - error: ErrAccountNotFound or persistence failures
	*/
	SetResetToken(context context.Context, id, digest string, expiry time.Time) error

	/*
		ClearResetToken removes both reset fields.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: ErrAccountNotFound or persistence failures
	*/
	ClearResetToken(context context.Context, id string) error

	/*
		FindByResetToken returns the account whose digest matches and whose
		expiry is after now.

		Parameters:
		  - context: context.Context
		  - digest: string
		  - now: time.Time

		Returns:
		  - *Account: Hydrated entity
		  - error: ErrAccountNotFound or database retrieval failures
	*/
	FindByResetToken(context context.Context, digest string, now time.Time) (*Account, error)

	/*
		ResetPassword replaces the password hash and clears the reset fields,
		provided the stored digest still equals digest.

		Parameters:
		  - context: context.Context
		  - id: string
		  - digest: string
		  - passwordHash: string

		Returns:
		  - error: ErrAccountNotFound when the digest was already consumed
	*/
	ResetPassword(context context.Context, id, digest, passwordHash string) error
}

// # One-Time Tokens

// VerificationTokenStore holds email verification tokens with a server-side TTL.
type VerificationTokenStore interface {

	/*
		Create generates and persists a new token for the account.

		Parameters:
		  - context: context.Context
		  - accountID: string

		Returns:
		  - string: Plaintext token value to embed in the link
		  - error: Generation or persistence failures
	*/
	Create(context context.Context, accountID string) (string, error)

	// Exists reports whether the token is live, without consuming it.
	Exists(context context.Context, accountID, token string) (bool, error)

	/*
		Consume atomically finds and deletes the token.

		Description: Of any number of concurrent calls with the same pair, at
		most one reports true. Absent, expired and wrong values are indistinguishable.

		Parameters:
		  - context: context.Context
		  - accountID: string
		  - token: string

		Returns:
		  - bool: Whether the token existed and was consumed
		  - error: Connectivity errors only
	*/
	Consume(context context.Context, accountID, token string) (bool, error)
}

// # Session Revocation

// SessionVersionStore tracks the per-account session version embedded in
// refresh tokens. Bumping it invalidates every refresh token issued before.
type SessionVersionStore interface {

	/*
		Current returns the account's session version (0 when never revoked).

		Parameters:
		  - context: context.Context
		  - accountID: string

		Returns:
		  - int64: Current version
		  - error: Connectivity errors
	*/
	Current(context context.Context, accountID string) (int64, error)

	/*
		Revoke increments the account's session version.

		Parameters:
		  - context: context.Context
		  - accountID: string

		Returns:
		  - int64: New version
		  - error: Connectivity errors
	*/
	Revoke(context context.Context, accountID string) (int64, error)
}
