// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package job

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/hirelane/internal/platform/request"
	"github.com/taibuivan/hirelane/internal/platform/respond"
	"github.com/taibuivan/hirelane/internal/platform/validate"
	"github.com/taibuivan/hirelane/pkg/convert"
	"github.com/taibuivan/hirelane/pkg/pagination"
	"github.com/taibuivan/hirelane/pkg/pointer"
	"github.com/taibuivan/hirelane/pkg/query"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// mutationResponse is the body of every write: confirmation plus the job.
type mutationResponse struct {
	Message string `json:"message"`
	Job     *Job   `json:"job"`
}

// RegisterRoutes mounts the job endpoints. Callers must already be
// authenticated as HR personnel.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listJobs)
	router.Post("/", handler.createJob)
	router.Get("/{id}", handler.getJob)
	router.Put("/{id}", handler.updateJob)
	router.Delete("/{id}", handler.deleteJob)
	router.Put("/{id}/status", handler.toggleStatus)
}

/*
GET /api/jobs

Query: page, limit, q (title search), employmentType (comma separated), active.
*/
func (handler *Handler) listJobs(writer http.ResponseWriter, request *http.Request) {
	postedBy, err := requestutil.RequiredAccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)
	values := request.URL.Query()

	filter := Filter{
		Query:           values.Get("q"),
		EmploymentTypes: query.StringSlice(values.Get("employmentType")),
	}
	if raw := values.Get("active"); raw != "" {
		filter.Active = pointer.To(convert.ToBool(raw))
	}

	jobs, total, err := handler.service.ListJobs(request.Context(), postedBy, filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, jobs, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getJob(writer http.ResponseWriter, request *http.Request) {
	postedBy, err := requestutil.RequiredAccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	j, err := handler.service.GetJob(request.Context(), requestutil.Param(request, "id"), postedBy)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, j)
}

func (handler *Handler) createJob(writer http.ResponseWriter, request *http.Request) {
	postedBy, err := requestutil.RequiredAccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Draft
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	j, err := handler.service.CreateJob(request.Context(), postedBy, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, mutationResponse{Message: MessageCreated, Job: j})
}

/*
PUT /api/jobs/{id}

Only the fields present in the body are written.
*/
func (handler *Handler) updateJob(writer http.ResponseWriter, request *http.Request) {
	postedBy, err := requestutil.RequiredAccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var patch Patch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	j, err := handler.service.UpdateJob(request.Context(), requestutil.Param(request, "id"), postedBy, patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, mutationResponse{Message: MessageUpdated, Job: j})
}

func (handler *Handler) toggleStatus(writer http.ResponseWriter, request *http.Request) {
	postedBy, err := requestutil.RequiredAccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	j, err := handler.service.ToggleStatus(request.Context(), requestutil.Param(request, "id"), postedBy)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, mutationResponse{Message: StatusMessage(j), Job: j})
}

func (handler *Handler) deleteJob(writer http.ResponseWriter, request *http.Request) {
	postedBy, err := requestutil.RequiredAccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteJob(request.Context(), requestutil.Param(request, "id"), postedBy); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, MessageDeleted)
}
