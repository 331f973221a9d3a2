// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"

	"github.com/taibuivan/hirelane/internal/platform/apperr"
)

// # Error Taxonomy

// Every lifecycle flow fails with exactly one of these. They are shared
// sentinels; attach causes with WithCause, never mutate them.
var (
	ErrAlreadyExists         = apperr.New("ALREADY_EXISTS", "User already exists", http.StatusBadRequest)
	ErrInvalidLink           = apperr.New("INVALID_LINK", "Invalid link", http.StatusBadRequest)
	ErrInvalidOrExpiredLink  = apperr.New("INVALID_OR_EXPIRED_TOKEN", "Invalid or expired link", http.StatusBadRequest)
	ErrInvalidOrExpiredToken = apperr.New("INVALID_OR_EXPIRED_TOKEN", "Invalid or expired token", http.StatusBadRequest)
	ErrInvalidCredentials    = apperr.New("INVALID_CREDENTIALS", "Invalid credentials", http.StatusUnauthorized)
	ErrNotCandidate          = apperr.New("FORBIDDEN", "Access denied: Not a candidate", http.StatusForbidden)
	ErrUnsupportedAuthMethod = apperr.New("UNSUPPORTED_AUTH_METHOD", "Authentication method not supported", http.StatusUnauthorized)
	ErrEmailNotVerified      = apperr.New("EMAIL_NOT_VERIFIED", "Please verify your email before logging in", http.StatusUnauthorized)
	ErrNoRefreshToken        = apperr.New("NO_REFRESH_TOKEN", "No refresh token found", http.StatusUnauthorized)
	ErrInvalidRefreshToken   = apperr.New("INVALID_REFRESH_TOKEN", "Invalid refresh token", http.StatusForbidden)
	ErrUserNotFound          = apperr.New("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	ErrEmailDispatchFailed   = apperr.New("EMAIL_DISPATCH_FAILED", "Email could not be sent", http.StatusInternalServerError)
)
