// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/hirelane/internal/platform/apperr"
	"github.com/taibuivan/hirelane/internal/platform/dberr"
)

/*
TestWrap covers the SQLSTATE classification.
*/
func TestWrap(t *testing.T) {
	assert.Nil(t, dberr.Wrap(nil, "noop"))

	assert.Equal(t, dberr.ErrNotFound, dberr.Wrap(fmt.Errorf("scan: %w", pgx.ErrNoRows), "find"))

	unique := &pgconn.PgError{Code: pgerrcode.UniqueViolation}
	ae := apperr.As(dberr.Wrap(unique, "insert"))
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusConflict, ae.HTTPStatus)
	assert.True(t, dberr.IsUniqueViolation(fmt.Errorf("wrapped: %w", unique)))

	ae = apperr.As(dberr.Wrap(errors.New("connection reset"), "update"))
	require.NotNil(t, ae)
	assert.Equal(t, "INTERNAL_ERROR", ae.Code)
	assert.ErrorContains(t, ae.Cause, "update: connection reset")
}

/*
TestIsForeignKeyViolation checks the FK predicate.
*/
func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, dberr.IsForeignKeyViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}))
	assert.False(t, dberr.IsForeignKeyViolation(errors.New("other")))
}
