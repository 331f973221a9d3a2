// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/taibuivan/hirelane/internal/platform/apperr"
	"github.com/taibuivan/hirelane/internal/platform/constants"
	"github.com/taibuivan/hirelane/internal/platform/ctxutil"
	"github.com/taibuivan/hirelane/internal/platform/respond"
	"github.com/taibuivan/hirelane/internal/platform/sec"
)

// AccessVerifier verifies bearer access tokens.
//
// Only the access secret is consulted; refresh tokens never authenticate API calls.
type AccessVerifier interface {
	VerifyAccess(tokenString string) (*sec.SessionClaims, error)
}

// RoleResolver looks up the current role of an account.
//
// Roles are not embedded in access tokens, so a role change takes effect on
// the next request.
type RoleResolver interface {
	RoleOf(ctx context.Context, accountID string) (sec.UserRole, error)
}

// Authenticate extracts and verifies the JWT from the Authorization header.
//
// # Flow
//  1. Check for 'Authorization: Bearer <token>' header.
//  2. If absent, request proceeds as anonymous.
//  3. If present, verify it via [AccessVerifier].
//  4. Inject [*sec.SessionClaims] into the request context for downstream use.
func Authenticate(verifier AccessVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get(constants.HeaderAuthorization)

			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			scheme, tokenString, found := strings.Cut(authHeader, " ")
			if !found || !strings.EqualFold(scheme, "bearer") || tokenString == "" {
				respond.Error(writer, request, apperr.Unauthorized("Invalid authorization format"))
				return
			}

			claims, err := verifier.VerifyAccess(tokenString)
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
				return
			}

			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// Must be registered in the router AFTER [Authenticate].
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetAuthUser(request.Context()) == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// RequireRole blocks requests whose account does not hold exactly the given role.
//
// Must be registered AFTER [Authenticate]; it implies [RequireAuth].
//
// # Flow
//  1. Check that [*sec.SessionClaims] exists in context.
//  2. Resolve the account's current role. A deleted account is treated as unauthenticated.
//  3. Compare with a single equality check; abort with 403 on mismatch.
func RequireRole(role sec.UserRole, resolver RoleResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims := ctxutil.GetAuthUser(request.Context())
			if claims == nil {
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
				return
			}

			current, err := resolver.RoleOf(request.Context(), claims.AccountID())
			if err != nil {
				if ae := apperr.As(err); ae != nil && ae.HTTPStatus == http.StatusNotFound {
					respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
					return
				}
				respond.Error(writer, request, err)
				return
			}

			if !current.Is(role) {
				respond.Error(writer, request, apperr.Forbidden("Insufficient permissions"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
