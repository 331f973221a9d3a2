// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/hirelane/internal/platform/apperr"
)

/*
TestAppError_WithCause verifies that sentinels are copied, not mutated.
*/
func TestAppError_WithCause(t *testing.T) {
	sentinel := apperr.New("EMAIL_DISPATCH_FAILED", "Email could not be sent", http.StatusInternalServerError)
	cause := errors.New("smtp: connection refused")

	wrapped := sentinel.WithCause(cause)

	assert.Nil(t, sentinel.Cause)
	assert.Equal(t, cause, wrapped.Cause)
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, sentinel.Code, wrapped.Code)
}

/*
TestAppError_WithStatus verifies status overrides keep the code.
*/
func TestAppError_WithStatus(t *testing.T) {
	sentinel := apperr.New("USER_NOT_FOUND", "User not found", http.StatusNotFound)

	overridden := sentinel.WithStatus(http.StatusUnauthorized)

	assert.Equal(t, http.StatusNotFound, sentinel.HTTPStatus)
	assert.Equal(t, http.StatusUnauthorized, overridden.HTTPStatus)
	assert.Equal(t, "USER_NOT_FOUND", overridden.Code)
}

/*
TestAs checks extraction through wrapped chains.
*/
func TestAs(t *testing.T) {
	err := fmt.Errorf("outer: %w", apperr.Forbidden("nope"))

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "FORBIDDEN", ae.Code)
	assert.Nil(t, apperr.As(errors.New("plain")))
}
