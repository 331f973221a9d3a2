// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package candidate

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/hirelane/internal/platform/request"
	"github.com/taibuivan/hirelane/internal/platform/respond"
	"github.com/taibuivan/hirelane/internal/platform/validate"
	"github.com/taibuivan/hirelane/pkg/pagination"
	"github.com/taibuivan/hirelane/pkg/query"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type listResponse struct {
	Candidates     []*Candidate    `json:"candidates"`
	AttentionCards []AttentionCard `json:"attentionCards"`
}

type mutationResponse struct {
	Message   string     `json:"message"`
	Candidate *Candidate `json:"candidate"`
}

// RegisterRoutes mounts the candidate endpoints. Callers must already be
// authenticated as HR personnel.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listCandidates)
	router.Post("/", handler.createCandidate)
	router.Get("/{id}", handler.getCandidate)
	router.Put("/{id}", handler.updateCandidate)
	router.Delete("/{id}", handler.deleteCandidate)
	router.Put("/{id}/status", handler.updateStatus)
}

/*
GET /api/candidates

Query: page, limit, status (comma separated), appliedJob.

Response:
  - 200: { candidates, attentionCards } with pagination meta
*/
func (handler *Handler) listCandidates(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	values := request.URL.Query()

	filter := Filter{
		Statuses:   query.StringSlice(values.Get("status")),
		AppliedJob: values.Get("appliedJob"),
	}

	candidates, total, cards, err := handler.service.ListCandidates(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, listResponse{Candidates: candidates, AttentionCards: cards},
		pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getCandidate(writer http.ResponseWriter, request *http.Request) {
	c, err := handler.service.GetCandidate(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, c)
}

/*
POST /api/candidates

Response:
  - 201: Confirmation and the candidate
  - 400: VALIDATION_ERROR
  - 404: Job not found
*/
func (handler *Handler) createCandidate(writer http.ResponseWriter, request *http.Request) {
	var input Draft
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	c, err := handler.service.CreateCandidate(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, mutationResponse{Message: MessageCreated, Candidate: c})
}

func (handler *Handler) updateCandidate(writer http.ResponseWriter, request *http.Request) {
	var patch Patch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	c, err := handler.service.UpdateCandidate(request.Context(), requestutil.Param(request, "id"), patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, mutationResponse{Message: MessageUpdated, Candidate: c})
}

func (handler *Handler) updateStatus(writer http.ResponseWriter, request *http.Request) {
	var input StatusUpdate
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	c, err := handler.service.UpdateStatus(request.Context(), requestutil.Param(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, mutationResponse{Message: MessageStatusUpdated, Candidate: c})
}

func (handler *Handler) deleteCandidate(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteCandidate(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, MessageDeleted)
}
