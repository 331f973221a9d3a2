// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/hirelane/internal/platform/request"
	"github.com/taibuivan/hirelane/internal/platform/respond"
)

// Handler implements the HTTP layer for the caller's own account.
type Handler struct {
	accountService *Service
}

// NewHandler constructs a new account [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{accountService: service}
}

// Routes returns a [chi.Router] configured with the account endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/me", handler.getMe)
	router.Delete("/me/sessions", handler.revokeSessions)

	return router
}

/*
GET /api/account/me.

Response:
  - 200: auth.Profile
  - 401: Authentication required, or the account was deleted
*/
func (handler *Handler) getMe(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.RequiredAccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.accountService.GetProfile(request.Context(), accountID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profile)
}

/*
DELETE /api/account/me/sessions.

Description: Signs the account out everywhere by invalidating all refresh tokens.

Response:
  - 200: Confirmation message
  - 401: Authentication required
*/
func (handler *Handler) revokeSessions(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.RequiredAccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.accountService.RevokeSessions(request.Context(), accountID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, MessageSessionsRevoked)
}
