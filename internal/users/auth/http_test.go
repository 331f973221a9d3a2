// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/hirelane/internal/platform/constants"
	"github.com/taibuivan/hirelane/internal/platform/sec"
)

type envelope struct {
	Data  map[string]any `json:"data"`
	Error string         `json:"error"`
	Code  string         `json:"code"`
}

func serve(t *testing.T, handler http.Handler, method, path, body string, cookies ...*http.Cookie) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		request.AddCookie(cookie)
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	var decoded envelope
	if recorder.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded))
	}
	return recorder, decoded
}

func sessionCookie(t *testing.T, recorder *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == constants.SessionCookieName {
			return cookie
		}
	}
	t.Fatalf("no %s cookie set", constants.SessionCookieName)
	return nil
}

/*
TestHandler_Lifecycle drives every route through the router in order.
*/
func TestHandler_Lifecycle(t *testing.T) {
	h := newHarness(t)
	router := NewHandler(h.service, true).Routes()

	// Register
	recorder, body := serve(t, router, http.MethodPost, "/register",
		`{"name":"Alice","email":"a@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, MessageRegistered, body.Data["message"])
	assert.Equal(t, "a@x.com", body.Data["email"])
	assert.Equal(t, string(sec.RoleHRPersonnel), body.Data["role"])
	assert.NotContains(t, recorder.Body.String(), "passwordHash")
	accountID, _ := body.Data["id"].(string)
	require.NotEmpty(t, accountID)

	// Login before verification
	recorder, body = serve(t, router, http.MethodPost, "/login", `{"email":"a@x.com","password":"secret1"}`)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "EMAIL_NOT_VERIFIED", body.Code)

	// Verify
	match := verifyLinkPattern.FindStringSubmatch(h.mailer.last(t).Body)
	require.Len(t, match, 3)
	recorder, body = serve(t, router, http.MethodGet, "/verify/"+accountID+"/"+match[2], "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, MessageVerified, body.Data["message"])

	recorder, body = serve(t, router, http.MethodGet, "/verify/"+accountID+"/"+match[2], "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Invalid or expired link", body.Error)

	// Login
	recorder, body = serve(t, router, http.MethodPost, "/login", `{"email":"a@x.com","password":"wrong1"}`)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "Invalid credentials", body.Error)

	recorder, body = serve(t, router, http.MethodPost, "/login", `{"email":"a@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.NotEmpty(t, body.Data["accessToken"])
	assert.NotEmpty(t, body.Data["refreshToken"])
	assert.Equal(t, accountID, body.Data["id"])

	cookie := sessionCookie(t, recorder)
	assert.Equal(t, body.Data["refreshToken"], cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, 7*24*60*60, cookie.MaxAge)
	assert.Equal(t, "/", cookie.Path)

	// Refresh
	recorder, body = serve(t, router, http.MethodGet, "/refresh", "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "NO_REFRESH_TOKEN", body.Code)

	recorder, body = serve(t, router, http.MethodGet, "/refresh", "",
		&http.Cookie{Name: constants.SessionCookieName, Value: tamper(cookie.Value)})
	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Equal(t, "INVALID_REFRESH_TOKEN", body.Code)

	recorder, body = serve(t, router, http.MethodGet, "/refresh", "", cookie)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.NotEmpty(t, body.Data["accessToken"])

	// Logout clears the cookie and revokes the token
	recorder, body = serve(t, router, http.MethodPost, "/logout", "", cookie)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, MessageLoggedOut, body.Data["message"])
	cleared := sessionCookie(t, recorder)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)

	recorder, _ = serve(t, router, http.MethodGet, "/refresh", "", cookie)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	// Forgot and reset
	recorder, body = serve(t, router, http.MethodPost, "/forgotpassword", `{"email":"a@x.com"}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, MessageResetSent, body.Data["message"])

	reset := resetLinkPattern.FindStringSubmatch(h.mailer.last(t).Body)
	require.Len(t, reset, 2)

	recorder, body = serve(t, router, http.MethodPut, "/resetpassword/"+reset[1], `{"password":"newsecret"}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, MessagePasswordUpdate, body.Data["message"])

	recorder, body = serve(t, router, http.MethodPut, "/resetpassword/"+reset[1], `{"password":"newsecret"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "INVALID_OR_EXPIRED_TOKEN", body.Code)
}

/*
TestHandler_Validation rejects malformed bodies before reaching the service.
*/
func TestHandler_Validation(t *testing.T) {
	h := newHarness(t)
	router := NewHandler(h.service, false).Routes()

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		code   string
	}{
		{"register_bad_json", http.MethodPost, "/register", `{"name":`, "VALIDATION_ERROR"},
		{"register_bad_email", http.MethodPost, "/register", `{"name":"A","email":"nope","password":"secret1"}`, "VALIDATION_ERROR"},
		{"register_short_password", http.MethodPost, "/register", `{"name":"A","email":"a@x.com","password":"123"}`, "VALIDATION_ERROR"},
		{"register_long_password", http.MethodPost, "/register", `{"name":"A","email":"a@x.com","password":"` + strings.Repeat("p", 73) + `"}`, "VALIDATION_ERROR"},
		{"login_missing_password", http.MethodPost, "/login", `{"email":"a@x.com"}`, "VALIDATION_ERROR"},
		{"forgot_missing_email", http.MethodPost, "/forgotpassword", `{}`, "VALIDATION_ERROR"},
		{"reset_missing_password", http.MethodPut, "/resetpassword/abc", `{}`, "VALIDATION_ERROR"},
		{"verify_bad_account", http.MethodGet, "/verify/nope/abc", ``, "INVALID_LINK"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder, body := serve(t, router, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			assert.Equal(t, tt.code, body.Code)
		})
	}

	assert.Empty(t, h.mailer.messages)
}

/*
TestHandler_CandidateRoutes covers the role-scoped register and login variants.
*/
func TestHandler_CandidateRoutes(t *testing.T) {
	h := newHarness(t)
	router := NewHandler(h.service, false).Routes()

	recorder, body := serve(t, router, http.MethodPost, "/registercandidate",
		`{"name":"Cara","email":"c@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, string(sec.RoleCandidate), body.Data["role"])

	h.registerAndVerify(t, "hr@x.com", "secret1", sec.RoleHRPersonnel)

	recorder, body = serve(t, router, http.MethodPost, "/logincandidate", `{"email":"hr@x.com","password":"secret1"}`)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Equal(t, "Access denied: Not a candidate", body.Error)

	recorder, _ = serve(t, router, http.MethodPost, "/login", `{"email":"hr@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.False(t, sessionCookie(t, recorder).Secure)
}

/*
TestHandler_ForgotPassword_Failures maps 404 and 500.
*/
func TestHandler_ForgotPassword_Failures(t *testing.T) {
	h := newHarness(t)
	router := NewHandler(h.service, false).Routes()

	recorder, body := serve(t, router, http.MethodPost, "/forgotpassword", `{"email":"nobody@x.com"}`)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "User not found", body.Error)

	h.registerAndVerify(t, "a@x.com", "secret1", sec.RoleHRPersonnel)
	h.mailer.fail = true

	recorder, body = serve(t, router, http.MethodPost, "/forgotpassword", `{"email":"a@x.com"}`)
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, "Email could not be sent", body.Error)
}

/*
TestHandler_LogoutWithoutCookie always answers 200.
*/
func TestHandler_LogoutWithoutCookie(t *testing.T) {
	h := newHarness(t)
	router := NewHandler(h.service, false).Routes()

	recorder, body := serve(t, router, http.MethodPost, "/logout", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, MessageLoggedOut, body.Data["message"])
}
