// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TestRecorder_Counters verifies the auth and email helpers.
*/
func TestRecorder_Counters(t *testing.T) {
	recorder := New()

	recorder.AuthEvent("login", OutcomeFailure)
	recorder.AuthEvent("login", OutcomeFailure)
	recorder.EmailDispatch("reset", errors.New("down"))
	recorder.EmailDispatch("verification", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(recorder.authEvents.WithLabelValues("login", OutcomeFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.emailDispatch.WithLabelValues("reset", OutcomeFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.emailDispatch.WithLabelValues("verification", OutcomeSuccess)))
}

/*
TestRecorder_NilSafe ensures a nil recorder is a no-op.
*/
func TestRecorder_NilSafe(t *testing.T) {
	var recorder *Recorder

	assert.NotPanics(t, func() {
		recorder.AuthEvent("login", OutcomeSuccess)
		recorder.EmailDispatch("reset", nil)
	})

	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	assert.NotNil(t, recorder.Middleware(next))
}

/*
TestRecorder_Middleware labels requests by route pattern.
*/
func TestRecorder_Middleware(t *testing.T) {
	recorder := New()

	router := chi.NewRouter()
	router.Use(recorder.Middleware)
	router.Get("/jobs/{id}", func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/jobs/123", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.requestsTotal.WithLabelValues("GET", "/jobs/{id}", "404")))

	response := httptest.NewRecorder()
	recorder.Handler().ServeHTTP(response, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, response.Code)
	assert.Contains(t, response.Body.String(), "hirelane_http_requests_total")
}
