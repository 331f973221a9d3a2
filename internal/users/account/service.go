// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/taibuivan/hirelane/internal/platform/ctxutil"
	"github.com/taibuivan/hirelane/internal/users/auth"
)

// # Service Layer

// Service answers self-service requests of an authenticated account.
type Service struct {
	accounts Accounts
	sessions Sessions
}

// NewService constructs a new [Service].
func NewService(accounts Accounts, sessions Sessions) *Service {
	return &Service{accounts: accounts, sessions: sessions}
}

/*
GetProfile returns the public projection of the caller's account.

Returns:
  - *auth.Profile: id, name, email and role
  - error: ErrUserNotFound (401) once the account no longer exists
*/
func (service *Service) GetProfile(context context.Context, accountID string) (*auth.Profile, error) {
	account, err := service.accounts.FindByID(context, accountID)
	if err != nil {
		if errors.Is(err, auth.ErrAccountNotFound) {
			return nil, auth.ErrUserNotFound.WithStatus(http.StatusUnauthorized)
		}
		return nil, fmt.Errorf("account_service_get_profile_failed: %w", err)
	}

	profile := account.Profile()
	return &profile, nil
}

/*
RevokeSessions invalidates every refresh token issued to the account so far.

Access tokens already handed out stay valid until they expire.
*/
func (service *Service) RevokeSessions(context context.Context, accountID string) error {
	version, err := service.sessions.Revoke(context, accountID)
	if err != nil {
		return fmt.Errorf("account_service_revoke_sessions_failed: %w", err)
	}

	ctxutil.GetLogger(context).InfoContext(context, "sessions_revoked",
		slog.String("account_id", accountID),
		slog.Int64("session_version", version),
	)
	return nil
}
