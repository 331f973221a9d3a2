// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package candidate manages the shared candidate pool.

Unlike jobs, candidates are visible to every HR account. Each candidate
applies to exactly one existing job.
*/
package candidate

import (
	"time"

	"github.com/taibuivan/hirelane/internal/platform/apperr"
)

// Status tracks a candidate through the hiring pipeline.
type Status string

const (
	StatusApplied      Status = "Applied"
	StatusInterviewing Status = "Interviewing"
	StatusOffered      Status = "Offered"
	StatusHired        Status = "Hired"
	StatusRejected     Status = "Rejected"
)

// Statuses lists the accepted [Status] values.
var Statuses = []string{
	string(StatusApplied), string(StatusInterviewing), string(StatusOffered),
	string(StatusHired), string(StatusRejected),
}

type Candidate struct {
	ID              string     `json:"id"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	Qualifications  []string   `json:"qualifications"`
	Experience      int        `json:"experience"`
	CurrentPosition *string    `json:"currentPosition,omitempty"`
	CurrentCompany  *string    `json:"currentCompany,omitempty"`
	JobPreferences  []string   `json:"jobPreferences"`
	Status          Status     `json:"status"`
	InterviewDate   *time.Time `json:"interviewDate,omitempty"`
	Feedback        *string    `json:"feedback,omitempty"`
	Resume          *string    `json:"resume,omitempty"`
	AppliedJob      string     `json:"appliedJob"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// Draft is the input of [Service.CreateCandidate]. New candidates always start as Applied.
type Draft struct {
	FirstName       string   `json:"firstName"`
	LastName        string   `json:"lastName"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Qualifications  []string `json:"qualifications"`
	Experience      int      `json:"experience"`
	CurrentPosition *string  `json:"currentPosition"`
	CurrentCompany  *string  `json:"currentCompany"`
	JobPreferences  []string `json:"jobPreferences"`
	Resume          *string  `json:"resume"`
	AppliedJob      string   `json:"appliedJob"`
}

// Patch carries a partial update. Nil fields are left untouched.
type Patch struct {
	FirstName       *string    `json:"firstName"`
	LastName        *string    `json:"lastName"`
	Email           *string    `json:"email"`
	Phone           *string    `json:"phone"`
	Qualifications  *[]string  `json:"qualifications"`
	Experience      *int       `json:"experience"`
	CurrentPosition *string    `json:"currentPosition"`
	CurrentCompany  *string    `json:"currentCompany"`
	JobPreferences  *[]string  `json:"jobPreferences"`
	Status          *Status    `json:"status"`
	InterviewDate   *time.Time `json:"interviewDate"`
	Feedback        *string    `json:"feedback"`
	Resume          *string    `json:"resume"`
	AppliedJob      *string    `json:"appliedJob"`
}

// StatusUpdate is the pipeline subset of [Patch].
type StatusUpdate struct {
	Status        *Status    `json:"status"`
	InterviewDate *time.Time `json:"interviewDate"`
	Feedback      *string    `json:"feedback"`
}

// Filter narrows a candidate listing.
type Filter struct {
	Statuses   []string
	AppliedJob string
}

// Counts are the pipeline figures behind the attention cards.
type Counts struct {
	PendingReviews     int
	UpcomingInterviews int
	OnboardingTasks    int
}

// AttentionCard highlights pipeline work waiting on HR.
type AttentionCard struct {
	Title       string `json:"title"`
	Count       int    `json:"count"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

var ErrCandidateNotFound = apperr.NotFound("Candidate")

// Field names for validation
const (
	FieldFirstName      = "firstName"
	FieldLastName       = "lastName"
	FieldEmail          = "email"
	FieldPhone          = "phone"
	FieldQualifications = "qualifications"
	FieldExperience     = "experience"
	FieldJobPreferences = "jobPreferences"
	FieldStatus         = "status"
	FieldResume         = "resume"
	FieldAppliedJob     = "appliedJob"
	FieldFeedback       = "feedback"
)

// Response messages
const (
	MessageCreated       = "Candidate created successfully"
	MessageUpdated       = "Candidate updated successfully"
	MessageDeleted       = "Candidate deleted successfully"
	MessageStatusUpdated = "Candidate status updated successfully"
)

const (
	nameMaxLength     = 100
	phoneMaxLength    = 32
	itemMaxLength     = 200
	feedbackMaxLength = 5000

	// upcomingWindow bounds the "Upcoming Interviews" card.
	upcomingWindow = 7 * 24 * time.Hour
)
