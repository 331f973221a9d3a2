// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/hirelane/internal/platform/apperr"
	"github.com/taibuivan/hirelane/internal/platform/config"
	"github.com/taibuivan/hirelane/internal/platform/constants"
	"github.com/taibuivan/hirelane/internal/platform/metrics"
	"github.com/taibuivan/hirelane/internal/platform/sec"
	"github.com/taibuivan/hirelane/internal/recruit/candidate"
	"github.com/taibuivan/hirelane/internal/recruit/job"
	"github.com/taibuivan/hirelane/internal/users/account"
	"github.com/taibuivan/hirelane/internal/users/auth"
)

const (
	hrAccount        = "0190b3a4-7c1e-7a00-8000-000000000001"
	candidateAccount = "0190b3a4-7c1e-7a00-8000-000000000002"
)

type staticRoles map[string]sec.UserRole

func (roles staticRoles) RoleOf(_ context.Context, accountID string) (sec.UserRole, error) {
	role, ok := roles[accountID]
	if !ok {
		return "", apperr.NotFound("User")
	}
	return role, nil
}

type testServer struct {
	server *Server
	issuer *sec.SessionIssuer
}

func newTestServer(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()

	issuer, err := sec.NewSessionIssuer(sec.SessionConfig{
		AccessSecret:  []byte(strings.Repeat("a", 32)),
		RefreshSecret: []byte(strings.Repeat("r", 32)),
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    7 * 24 * time.Hour,
		Issuer:        constants.AuthIssuer,
	})
	require.NoError(t, err)

	logger := discardLogger()
	jobService := job.NewService(job.NewPostgresRepository(nil), logger)
	candidateService := candidate.NewService(candidate.NewPostgresRepository(nil), jobService, nil, logger)
	liveness, readiness := NewHealthHandlers(HealthDependencies{CheckDatabase: healthy}, logger)

	server := NewServer(cfg, logger, Guards{
		Verifier: issuer,
		Roles:    staticRoles{hrAccount: sec.RoleHRPersonnel, candidateAccount: sec.RoleCandidate},
	}, metrics.New(), Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Auth:       auth.NewHandler(auth.NewService(auth.Dependencies{}, auth.Options{}), false),
		Account:    account.NewHandler(account.NewService(nil, nil)),
		Jobs:       job.NewHandler(jobService),
		Candidates: candidate.NewHandler(candidateService),
	})

	return &testServer{server: server, issuer: issuer}
}

func testConfig() *config.Config {
	return &config.Config{
		ServerPort:     "0",
		Environment:    "production",
		ClientURL:      "https://app.hirelane.io",
		MetricsEnabled: true,
	}
}

func (ts *testServer) do(t *testing.T, method, path, accountID string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	request := httptest.NewRequest(method, path, nil)
	if accountID != "" {
		token, err := ts.issuer.IssueAccess(accountID)
		require.NoError(t, err)
		request.Header.Set(constants.HeaderAuthorization, "Bearer "+token)
	}
	for key, value := range headers {
		request.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	ts.server.Handler().ServeHTTP(recorder, request)
	return recorder
}

func errorCode(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body.Code
}

func TestServer_RecruitRoutesRequireHRPersonnel(t *testing.T) {
	ts := newTestServer(t, testConfig())

	tests := []struct {
		name       string
		path       string
		accountID  string
		wantStatus int
		wantCode   string
	}{
		{"anonymous account", "/api/account/me", "", http.StatusUnauthorized, "UNAUTHORIZED"},
		{"anonymous job list", "/api/jobs", "", http.StatusUnauthorized, "UNAUTHORIZED"},
		{"anonymous candidate list", "/api/candidates", "", http.StatusUnauthorized, "UNAUTHORIZED"},
		{"candidate role", "/api/jobs", candidateAccount, http.StatusForbidden, "FORBIDDEN"},
		{"deleted account", "/api/candidates", "0190b3a4-7c1e-7a00-8000-0000000000ff", http.StatusUnauthorized, "UNAUTHORIZED"},
		{"hr reaches job handler", "/api/jobs/not-a-uuid", hrAccount, http.StatusNotFound, "NOT_FOUND"},
		{"hr reaches candidate handler", "/api/candidates/not-a-uuid", hrAccount, http.StatusNotFound, "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := ts.do(t, http.MethodGet, tt.path, tt.accountID, nil)
			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantCode, errorCode(t, recorder))
		})
	}
}

func TestServer_RejectsMalformedBearer(t *testing.T) {
	ts := newTestServer(t, testConfig())

	recorder := ts.do(t, http.MethodGet, "/api/jobs", "", map[string]string{
		constants.HeaderAuthorization: "Bearer not.a.jwt",
	})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = ts.do(t, http.MethodGet, "/api/jobs", "", map[string]string{
		constants.HeaderAuthorization: "Basic dXNlcjpwYXNz",
	})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestServer_InfrastructureEndpoints(t *testing.T) {
	ts := newTestServer(t, testConfig())

	recorder := ts.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.NotEmpty(t, recorder.Header().Get(constants.HeaderXRequestID))

	recorder = ts.do(t, http.MethodGet, "/ready", "", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = ts.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `hirelane_http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func TestServer_MetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.MetricsEnabled = false
	ts := newTestServer(t, cfg)

	recorder := ts.do(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestServer_CORS(t *testing.T) {
	ts := newTestServer(t, testConfig())

	recorder := ts.do(t, http.MethodOptions, "/api/auth/login", "", map[string]string{
		constants.HeaderOrigin: "https://app.hirelane.io",
	})
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "https://app.hirelane.io", recorder.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", recorder.Header().Get("Access-Control-Allow-Credentials"))

	recorder = ts.do(t, http.MethodOptions, "/api/auth/login", "", map[string]string{
		constants.HeaderOrigin: "https://evil.example",
	})
	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
}
