// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package job

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taibuivan/hirelane/internal/platform/validate"
	"github.com/taibuivan/hirelane/pkg/pointer"
	"github.com/taibuivan/hirelane/pkg/slice"
	"github.com/taibuivan/hirelane/pkg/uuidv7"
)

// Draft is the input of [Service.CreateJob].
type Draft struct {
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Requirements     []string        `json:"requirements"`
	Responsibilities []string        `json:"responsibilities"`
	Department       string          `json:"department"`
	Location         string          `json:"location"`
	EmploymentType   EmploymentType  `json:"employmentType"`
	ExperienceLevel  ExperienceLevel `json:"experienceLevel"`
	SalaryRange      *SalaryRange    `json:"salaryRange"`
	Deadline         *time.Time      `json:"deadline"`
	IsActive         *bool           `json:"isActive"`
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListJobs(context context.Context, postedBy string, filter Filter, limit, offset int) ([]*Job, int, error) {
	return service.repo.ListJobs(context, postedBy, filter, limit, offset)
}

func (service *Service) GetJob(context context.Context, id, postedBy string) (*Job, error) {
	if !isID(id) {
		return nil, ErrJobNotFound
	}
	return service.repo.GetJob(context, id, postedBy)
}

// Exists reports whether any account posted a job with this id.
func (service *Service) Exists(context context.Context, id string) (bool, error) {
	if !isID(id) {
		return false, nil
	}
	return service.repo.Exists(context, id)
}

func (service *Service) CreateJob(context context.Context, postedBy string, draft Draft) (*Job, error) {
	draft.Requirements = cleanItems(draft.Requirements)
	draft.Responsibilities = cleanItems(draft.Responsibilities)

	validator := &validate.Validator{}
	validator.Required(FieldTitle, draft.Title).MaxLen(FieldTitle, draft.Title, titleMaxLength).
		Required(FieldDescription, draft.Description).
		Required(FieldDepartment, draft.Department).MaxLen(FieldDepartment, draft.Department, textMaxLength).
		Required(FieldLocation, draft.Location).MaxLen(FieldLocation, draft.Location, textMaxLength).
		OneOf(FieldEmploymentType, string(draft.EmploymentType), EmploymentTypes...).
		OneOf(FieldExperienceLevel, string(draft.ExperienceLevel), ExperienceLevels...)
	validateItems(validator, FieldRequirements, draft.Requirements)
	validateItems(validator, FieldResponsibilities, draft.Responsibilities)
	validateSalary(validator, draft.SalaryRange)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	j := &Job{
		ID:               uuidv7.New(),
		Title:            strings.TrimSpace(draft.Title),
		Description:      draft.Description,
		Requirements:     draft.Requirements,
		Responsibilities: draft.Responsibilities,
		Department:       strings.TrimSpace(draft.Department),
		Location:         strings.TrimSpace(draft.Location),
		EmploymentType:   draft.EmploymentType,
		ExperienceLevel:  draft.ExperienceLevel,
		SalaryRange:      draft.SalaryRange,
		Deadline:         draft.Deadline,
		IsActive:         pointer.Fallback(draft.IsActive, true),
		PostedBy:         postedBy,
	}

	if err := service.repo.CreateJob(context, j); err != nil {
		return nil, err
	}

	service.logger.Info("job_created", slog.String("job_id", j.ID), slog.String("posted_by", postedBy))
	return j, nil
}

func (service *Service) UpdateJob(context context.Context, id, postedBy string, patch Patch) (*Job, error) {
	if !isID(id) {
		return nil, ErrJobNotFound
	}

	validator := &validate.Validator{}
	if patch.Title != nil {
		validator.Required(FieldTitle, *patch.Title).MaxLen(FieldTitle, *patch.Title, titleMaxLength)
	}
	if patch.Description != nil {
		validator.Required(FieldDescription, *patch.Description)
	}
	if patch.Department != nil {
		validator.Required(FieldDepartment, *patch.Department).MaxLen(FieldDepartment, *patch.Department, textMaxLength)
	}
	if patch.Location != nil {
		validator.Required(FieldLocation, *patch.Location).MaxLen(FieldLocation, *patch.Location, textMaxLength)
	}
	if patch.EmploymentType != nil {
		validator.OneOf(FieldEmploymentType, string(*patch.EmploymentType), EmploymentTypes...)
	}
	if patch.ExperienceLevel != nil {
		validator.OneOf(FieldExperienceLevel, string(*patch.ExperienceLevel), ExperienceLevels...)
	}
	if patch.Requirements != nil {
		cleaned := cleanItems(*patch.Requirements)
		patch.Requirements = &cleaned
		validateItems(validator, FieldRequirements, cleaned)
	}
	if patch.Responsibilities != nil {
		cleaned := cleanItems(*patch.Responsibilities)
		patch.Responsibilities = &cleaned
		validateItems(validator, FieldResponsibilities, cleaned)
	}
	validateSalary(validator, patch.SalaryRange)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	j, err := service.repo.UpdateJob(context, id, postedBy, patch)
	if err != nil {
		return nil, err
	}

	service.logger.Info("job_updated", slog.String("job_id", id))
	return j, nil
}

// ToggleStatus flips isActive and returns the resulting job.
func (service *Service) ToggleStatus(context context.Context, id, postedBy string) (*Job, error) {
	if !isID(id) {
		return nil, ErrJobNotFound
	}

	j, err := service.repo.ToggleActive(context, id, postedBy)
	if err != nil {
		return nil, err
	}

	service.logger.Info("job_status_toggled", slog.String("job_id", id), slog.Bool("is_active", j.IsActive))
	return j, nil
}

func (service *Service) DeleteJob(context context.Context, id, postedBy string) error {
	if !isID(id) {
		return ErrJobNotFound
	}

	if err := service.repo.DeleteJob(context, id, postedBy); err != nil {
		return err
	}

	service.logger.Warn("job_deleted", slog.String("job_id", id))
	return nil
}

// StatusMessage renders the toggle confirmation for j.
func StatusMessage(j *Job) string {
	state := "inactive"
	if j.IsActive {
		state = "active"
	}
	return fmt.Sprintf(messageStateFormat, state)
}

func isID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// cleanItems trims every entry and drops blanks. The result is never nil.
func cleanItems(items []string) []string {
	cleaned := slice.Filter(slice.Map(items, strings.TrimSpace), func(item string) bool { return item != "" })
	if cleaned == nil {
		return []string{}
	}
	return cleaned
}

func validateItems(validator *validate.Validator, field string, items []string) {
	validator.Custom(field, len(items) == 0, "At least one item is required").
		EachMaxLen(field, items, itemMaxLength)
}

func validateSalary(validator *validate.Validator, r *SalaryRange) {
	if r == nil {
		return
	}
	validator.NonNegative(FieldSalaryRange, r.Min).
		Custom(FieldSalaryRange, r.Min > r.Max, "Minimum must not exceed maximum")
}
