// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth provides the HTTP delivery layer for account identity management.

It implements the gateway for the credential lifecycle, from account creation
to session management and recovery.

# Architecture

The handler acts as a thin mediation layer between the web and domain services:
  - Protocol: Standard RESTful JSON interface.
  - Security: Handles refresh token cookie injection and clearing.
  - Verification: Enforces strict input validation before passing to [Service].

This layer is strictly responsible for transport concerns (status codes, headers, JSON).
*/
package auth

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/hirelane/internal/platform/constants"
	requestutil "github.com/taibuivan/hirelane/internal/platform/request"
	"github.com/taibuivan/hirelane/internal/platform/respond"
	"github.com/taibuivan/hirelane/internal/platform/sec"
	"github.com/taibuivan/hirelane/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements authentication-related HTTP endpoints.
//
// # Scope
//
// This handler manages every entry point of the account lifecycle
// (Registration, Verification, Login, Session and Password Reset callbacks).
type Handler struct {
	authService   *Service
	secureCookies bool
}

// NewHandler constructs a new [Handler].
//
// secureCookies sets the Secure flag on the session cookie; it is tied to
// production mode.
func NewHandler(service *Service, secureCookies bool) *Handler {
	return &Handler{authService: service, secureCookies: secureCookies}
}

// Routes returns a [chi.Router] configured with authentication-specific routes.
//
// # Endpoints
//   - POST /register                    : Creates an HR account.
//   - POST /registercandidate           : Creates a candidate account.
//   - GET  /verify/{accountId}/{token}  : Confirms email ownership.
//   - POST /login                       : Authenticates any role.
//   - POST /logincandidate              : Authenticates candidates only.
//   - POST /logout                      : Revokes and clears the session cookie.
//   - GET  /refresh                     : Issues a new access token.
//   - POST /forgotpassword              : Emails a reset link.
//   - PUT  /resetpassword/{token}       : Sets a new password.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/register", handler.register)
	router.Post("/registercandidate", handler.registerCandidate)
	router.Get("/verify/{accountId}/{token}", handler.verify)
	router.Post("/login", handler.login)
	router.Post("/logincandidate", handler.loginCandidate)
	router.Post("/logout", handler.logout)
	router.Get("/refresh", handler.refresh)
	router.Post("/forgotpassword", handler.forgotPassword)
	router.Put("/resetpassword/{token}", handler.resetPassword)

	return router
}

// # Request Payloads

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Password string `json:"password"`
}

// # Response Payloads

type registerResponse struct {
	Profile
	Message string `json:"message"`
}

type loginResponse struct {
	Profile
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type refreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// # Registration

/*
Register handles the creation of an HR account.

POST /api/auth/register

Request:
  - Body: registerRequest (Name, Email, Password)

Response:
  - 201: registerResponse: Profile and verification notice
  - 400: ALREADY_EXISTS or VALIDATION_ERROR
  - 500: EMAIL_DISPATCH_FAILED (the account is kept)
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	handler.registerAs(writer, request, sec.RoleHRPersonnel)
}

/*
RegisterCandidate handles the creation of a candidate account.

POST /api/auth/registercandidate

Response: Same as [Handler.register].
*/
func (handler *Handler) registerCandidate(writer http.ResponseWriter, request *http.Request) {
	handler.registerAs(writer, request, sec.RoleCandidate)
}

func (handler *Handler) registerAs(writer http.ResponseWriter, request *http.Request, role sec.UserRole) {
	var input registerRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, NameMaxLength).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email)
	validatePassword(validator, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.authService.Register(request.Context(), RegisterInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	}, role)

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, registerResponse{Profile: *profile, Message: MessageRegistered})
}

/*
Verify confirms email ownership from the emailed link.

GET /api/auth/verify/{accountId}/{token}

Response:
  - 200: Success message
  - 400: INVALID_LINK or INVALID_OR_EXPIRED_TOKEN
*/
func (handler *Handler) verify(writer http.ResponseWriter, request *http.Request) {
	accountID := requestutil.Param(request, FieldAccountID)
	token := requestutil.Param(request, FieldToken)

	if err := handler.authService.Verify(request.Context(), accountID, token); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, MessageVerified)
}

// # Sessions

/*
Login authenticates an account of any role and establishes a session.

POST /api/auth/login

Description: Verifies credentials, issues an access token and a refresh
token, and sets the refresh token as the `jwt` cookie.

Request:
  - Body: loginRequest (Email, Password)

Response:
  - 200: loginResponse: Profile, access token and refresh token
  - 401: INVALID_CREDENTIALS, UNSUPPORTED_AUTH_METHOD, EMAIL_NOT_VERIFIED
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	handler.loginAs(writer, request, LoginAnyRole)
}

/*
LoginCandidate authenticates candidate accounts only.

POST /api/auth/logincandidate

Response: Same as [Handler.login], plus 403 FORBIDDEN for other roles.
*/
func (handler *Handler) loginCandidate(writer http.ResponseWriter, request *http.Request) {
	handler.loginAs(writer, request, LoginCandidateOnly)
}

func (handler *Handler) loginAs(writer http.ResponseWriter, request *http.Request, variant LoginVariant) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email)
	validator.Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Login(request.Context(), LoginInput{
		Email:    input.Email,
		Password: input.Password,
	}, variant)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    session.RefreshToken,
		Path:     constants.SessionCookiePath,
		MaxAge:   int(constants.SessionCookieMaxAge / time.Second),
		Secure:   handler.secureCookies,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	respond.OK(writer, loginResponse{
		Profile:      session.Profile,
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
	})
}

/*
Logout terminates the current session.

POST /api/auth/logout

Description: Revokes every refresh token of the cookie's owner (when the
cookie verifies) and clears the cookie. Always 200 unless revocation storage
fails.

Response:
  - 200: Success message
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	err := handler.authService.Logout(request.Context(), requestutil.Cookie(request, constants.SessionCookieName))

	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     constants.SessionCookiePath,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		Secure:   handler.secureCookies,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, MessageLoggedOut)
}

/*
Refresh issues a new access token using the refresh token cookie.

GET /api/auth/refresh

Response:
  - 200: refreshResponse: New access token
  - 401: NO_REFRESH_TOKEN or USER_NOT_FOUND
  - 403: INVALID_REFRESH_TOKEN
*/
func (handler *Handler) refresh(writer http.ResponseWriter, request *http.Request) {
	accessToken, err := handler.authService.Refresh(request.Context(), requestutil.Cookie(request, constants.SessionCookieName))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, refreshResponse{AccessToken: accessToken})
}

// # Password Recovery

/*
ForgotPassword initiates the password recovery flow.

POST /api/auth/forgotpassword

Request:
  - Body: forgotPasswordRequest (Email)

Response:
  - 200: Success message
  - 404: USER_NOT_FOUND
  - 500: EMAIL_DISPATCH_FAILED (the reset token is withdrawn)
*/
func (handler *Handler) forgotPassword(writer http.ResponseWriter, request *http.Request) {
	var input forgotPasswordRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	v := &validate.Validator{}
	v.Required(FieldEmail, input.Email).Email(FieldEmail, input.Email)

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.authService.ForgotPassword(request.Context(), input.Email); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, MessageResetSent)
}

/*
ResetPassword completes the password recovery flow.

PUT /api/auth/resetpassword/{token}

Request:
  - Body: resetPasswordRequest (Password)

Response:
  - 200: Success message
  - 400: INVALID_OR_EXPIRED_TOKEN or VALIDATION_ERROR
*/
func (handler *Handler) resetPassword(writer http.ResponseWriter, request *http.Request) {
	var input resetPasswordRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	v := &validate.Validator{}
	validatePassword(v, input.Password)

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	token := requestutil.Param(request, FieldToken)
	if err := handler.authService.ResetPassword(request.Context(), token, input.Password); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, MessagePasswordUpdate)
}

// validatePassword applies the shared password policy.
func validatePassword(v *validate.Validator, password string) {
	v.Required(FieldPassword, password).
		MinLen(FieldPassword, password, PasswordMinLength).
		Custom(FieldPassword, len(password) > PasswordMaxBytes, "Must be at most 72 bytes")
}
