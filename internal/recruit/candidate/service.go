// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package candidate

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taibuivan/hirelane/internal/platform/validate"
	"github.com/taibuivan/hirelane/internal/recruit/job"
	"github.com/taibuivan/hirelane/pkg/emailaddr"
	"github.com/taibuivan/hirelane/pkg/slice"
	"github.com/taibuivan/hirelane/pkg/uuidv7"
)

type Service struct {
	repo   Repository
	jobs   JobLookup
	now    func() time.Time
	logger *slog.Logger
}

// NewService wires the candidate service. A nil now defaults to time.Now.
func NewService(repo Repository, jobs JobLookup, now func() time.Time, logger *slog.Logger) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		repo:   repo,
		jobs:   jobs,
		now:    now,
		logger: logger,
	}
}

// ListCandidates returns one page of the pool plus attention cards computed
// over the whole pool.
func (service *Service) ListCandidates(context context.Context, filter Filter, limit, offset int) ([]*Candidate, int, []AttentionCard, error) {
	if filter.AppliedJob != "" {
		validator := &validate.Validator{}
		if err := validator.UUID(FieldAppliedJob, filter.AppliedJob).Err(); err != nil {
			return nil, 0, nil, err
		}
	}

	candidates, total, err := service.repo.ListCandidates(context, filter, limit, offset)
	if err != nil {
		return nil, 0, nil, err
	}

	now := service.now()
	counts, err := service.repo.CountPipeline(context, now, now.Add(upcomingWindow))
	if err != nil {
		return nil, 0, nil, err
	}

	return candidates, total, AttentionCards(counts), nil
}

func (service *Service) GetCandidate(context context.Context, id string) (*Candidate, error) {
	if !isID(id) {
		return nil, ErrCandidateNotFound
	}
	return service.repo.GetCandidate(context, id)
}

func (service *Service) CreateCandidate(context context.Context, draft Draft) (*Candidate, error) {
	draft.Qualifications = cleanItems(draft.Qualifications)
	draft.JobPreferences = cleanItems(draft.JobPreferences)

	validator := &validate.Validator{}
	validator.Required(FieldFirstName, draft.FirstName).MaxLen(FieldFirstName, draft.FirstName, nameMaxLength).
		Required(FieldLastName, draft.LastName).MaxLen(FieldLastName, draft.LastName, nameMaxLength).
		Required(FieldEmail, draft.Email).Email(FieldEmail, draft.Email).
		Required(FieldPhone, draft.Phone).MaxLen(FieldPhone, draft.Phone, phoneMaxLength).
		NonNegative(FieldExperience, int64(draft.Experience)).
		Required(FieldAppliedJob, draft.AppliedJob)
	validateItems(validator, FieldQualifications, draft.Qualifications)
	validateItems(validator, FieldJobPreferences, draft.JobPreferences)
	if draft.Resume != nil {
		validator.URL(FieldResume, *draft.Resume)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.requireJob(context, draft.AppliedJob); err != nil {
		return nil, err
	}

	c := &Candidate{
		ID:              uuidv7.New(),
		FirstName:       strings.TrimSpace(draft.FirstName),
		LastName:        strings.TrimSpace(draft.LastName),
		Email:           emailaddr.Normalize(draft.Email),
		Phone:           strings.TrimSpace(draft.Phone),
		Qualifications:  draft.Qualifications,
		Experience:      draft.Experience,
		CurrentPosition: draft.CurrentPosition,
		CurrentCompany:  draft.CurrentCompany,
		JobPreferences:  draft.JobPreferences,
		Status:          StatusApplied,
		Resume:          draft.Resume,
		AppliedJob:      draft.AppliedJob,
	}

	if err := service.repo.CreateCandidate(context, c); err != nil {
		return nil, err
	}

	service.logger.Info("candidate_created", slog.String("candidate_id", c.ID), slog.String("applied_job", c.AppliedJob))
	return c, nil
}

func (service *Service) UpdateCandidate(context context.Context, id string, patch Patch) (*Candidate, error) {
	if !isID(id) {
		return nil, ErrCandidateNotFound
	}

	validator := &validate.Validator{}
	if patch.FirstName != nil {
		validator.Required(FieldFirstName, *patch.FirstName).MaxLen(FieldFirstName, *patch.FirstName, nameMaxLength)
	}
	if patch.LastName != nil {
		validator.Required(FieldLastName, *patch.LastName).MaxLen(FieldLastName, *patch.LastName, nameMaxLength)
	}
	if patch.Email != nil {
		validator.Required(FieldEmail, *patch.Email).Email(FieldEmail, *patch.Email)
		normalized := emailaddr.Normalize(*patch.Email)
		patch.Email = &normalized
	}
	if patch.Phone != nil {
		validator.Required(FieldPhone, *patch.Phone).MaxLen(FieldPhone, *patch.Phone, phoneMaxLength)
	}
	if patch.Experience != nil {
		validator.NonNegative(FieldExperience, int64(*patch.Experience))
	}
	if patch.Qualifications != nil {
		cleaned := cleanItems(*patch.Qualifications)
		patch.Qualifications = &cleaned
		validateItems(validator, FieldQualifications, cleaned)
	}
	if patch.JobPreferences != nil {
		cleaned := cleanItems(*patch.JobPreferences)
		patch.JobPreferences = &cleaned
		validateItems(validator, FieldJobPreferences, cleaned)
	}
	if patch.Resume != nil {
		validator.URL(FieldResume, *patch.Resume)
	}
	validateStatus(validator, patch.Status, patch.Feedback)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if patch.AppliedJob != nil {
		if err := service.requireJob(context, *patch.AppliedJob); err != nil {
			return nil, err
		}
	}

	c, err := service.repo.UpdateCandidate(context, id, patch)
	if err != nil {
		return nil, err
	}

	service.logger.Info("candidate_updated", slog.String("candidate_id", id))
	return c, nil
}

// UpdateStatus moves a candidate through the pipeline. Each field is applied
// only when provided.
func (service *Service) UpdateStatus(context context.Context, id string, update StatusUpdate) (*Candidate, error) {
	if !isID(id) {
		return nil, ErrCandidateNotFound
	}

	validator := &validate.Validator{}
	validateStatus(validator, update.Status, update.Feedback)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	c, err := service.repo.UpdateCandidate(context, id, Patch{
		Status:        update.Status,
		InterviewDate: update.InterviewDate,
		Feedback:      update.Feedback,
	})
	if err != nil {
		return nil, err
	}

	service.logger.Info("candidate_status_updated",
		slog.String("candidate_id", id),
		slog.String("status", string(c.Status)),
	)
	return c, nil
}

func (service *Service) DeleteCandidate(context context.Context, id string) error {
	if !isID(id) {
		return ErrCandidateNotFound
	}

	if err := service.repo.DeleteCandidate(context, id); err != nil {
		return err
	}

	service.logger.Warn("candidate_deleted", slog.String("candidate_id", id))
	return nil
}

func (service *Service) requireJob(context context.Context, jobID string) error {
	exists, err := service.jobs.Exists(context, jobID)
	if err != nil {
		return err
	}
	if !exists {
		return job.ErrJobNotFound
	}
	return nil
}

// AttentionCards renders the dashboard cards for counts. A card with nothing
// pending has priority "none".
func AttentionCards(counts Counts) []AttentionCard {
	card := func(title string, count int, description, priority string) AttentionCard {
		if count == 0 {
			priority = "none"
		}
		return AttentionCard{Title: title, Count: count, Description: description, Priority: priority}
	}

	return []AttentionCard{
		card("Pending Reviews", counts.PendingReviews, "Candidates awaiting initial review", "high"),
		card("Upcoming Interviews", counts.UpcomingInterviews, "Interviews scheduled within the next 7 days", "medium"),
		card("Onboarding Tasks", counts.OnboardingTasks, "New hires to be onboarded", "low"),
	}
}

func isID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

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

func validateStatus(validator *validate.Validator, status *Status, feedback *string) {
	if status != nil {
		validator.OneOf(FieldStatus, string(*status), Statuses...)
	}
	if feedback != nil {
		validator.MaxLen(FieldFeedback, *feedback, feedbackMaxLength)
	}
}
