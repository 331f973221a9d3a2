// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package account serves the signed-in account's own view of itself.

It reads identities through the auth account store and ends sessions through
the auth session version store, so it owns no tables of its own.

# Security

All endpoints require an access token. Any role may call them.
*/
package account

import (
	"context"

	"github.com/taibuivan/hirelane/internal/users/auth"
)

// Accounts looks up account identities.
type Accounts interface {
	FindByID(context context.Context, id string) (*auth.Account, error)
}

// Sessions ends every refresh session of an account.
type Sessions interface {
	Revoke(context context.Context, accountID string) (int64, error)
}

// MessageSessionsRevoked confirms that every refresh token was invalidated.
const MessageSessionsRevoked = "All sessions have been signed out"
