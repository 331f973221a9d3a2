// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package job manages the job postings owned by HR accounts.

Every operation is scoped to the posting account: an HR user only ever sees,
edits or deletes the jobs they posted. Missing and foreign jobs are
indistinguishable to the caller (both answer 404).
*/
package job

import (
	"time"

	"github.com/taibuivan/hirelane/internal/platform/apperr"
)

// EmploymentType classifies the contract of a posting.
type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "Full-time"
	EmploymentPartTime   EmploymentType = "Part-time"
	EmploymentContract   EmploymentType = "Contract"
	EmploymentInternship EmploymentType = "Internship"
)

// EmploymentTypes lists the accepted [EmploymentType] values.
var EmploymentTypes = []string{
	string(EmploymentFullTime), string(EmploymentPartTime),
	string(EmploymentContract), string(EmploymentInternship),
}

// ExperienceLevel is the seniority a posting targets.
type ExperienceLevel string

const (
	ExperienceEntry     ExperienceLevel = "Entry"
	ExperienceMid       ExperienceLevel = "Mid"
	ExperienceSenior    ExperienceLevel = "Senior"
	ExperienceExecutive ExperienceLevel = "Executive"
)

// ExperienceLevels lists the accepted [ExperienceLevel] values.
var ExperienceLevels = []string{
	string(ExperienceEntry), string(ExperienceMid),
	string(ExperienceSenior), string(ExperienceExecutive),
}

// SalaryRange is an inclusive yearly salary band.
type SalaryRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// Job is a single posting.
type Job struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Requirements     []string        `json:"requirements"`
	Responsibilities []string        `json:"responsibilities"`
	Department       string          `json:"department"`
	Location         string          `json:"location"`
	EmploymentType   EmploymentType  `json:"employmentType"`
	ExperienceLevel  ExperienceLevel `json:"experienceLevel"`
	SalaryRange      *SalaryRange    `json:"salaryRange,omitempty"`
	Deadline         *time.Time      `json:"deadline,omitempty"`
	IsActive         bool            `json:"isActive"`
	PostedBy         string          `json:"postedBy"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// Patch carries a partial update. Nil fields are left untouched.
type Patch struct {
	Title            *string          `json:"title"`
	Description      *string          `json:"description"`
	Requirements     *[]string        `json:"requirements"`
	Responsibilities *[]string        `json:"responsibilities"`
	Department       *string          `json:"department"`
	Location         *string          `json:"location"`
	EmploymentType   *EmploymentType  `json:"employmentType"`
	ExperienceLevel  *ExperienceLevel `json:"experienceLevel"`
	SalaryRange      *SalaryRange     `json:"salaryRange"`
	Deadline         *time.Time       `json:"deadline"`
	IsActive         *bool            `json:"isActive"`
}

// Filter narrows a job listing.
type Filter struct {
	Query           string   // title ILIKE
	EmploymentTypes []string // any of
	Active          *bool
}

// ErrJobNotFound is returned for missing jobs and jobs posted by another account.
var ErrJobNotFound = apperr.NotFound("Job")

// Field names for validation
const (
	FieldTitle            = "title"
	FieldDescription      = "description"
	FieldRequirements     = "requirements"
	FieldResponsibilities = "responsibilities"
	FieldDepartment       = "department"
	FieldLocation         = "location"
	FieldEmploymentType   = "employmentType"
	FieldExperienceLevel  = "experienceLevel"
	FieldSalaryRange      = "salaryRange"
	FieldDeadline         = "deadline"
)

// Response messages
const (
	MessageCreated     = "Job created successfully"
	MessageUpdated     = "Job updated successfully"
	MessageDeleted     = "Job deleted successfully"
	messageStateFormat = "Job is now %s"
)

const (
	titleMaxLength = 200
	textMaxLength  = 100
	itemMaxLength  = 500
)
