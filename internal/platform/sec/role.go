// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # User Roles

// UserRole represents the kind of account. Authorization is a flat equality
// check on this value; there is no hierarchy.
type UserRole string

const (
	// Recruiters who own job postings and manage candidates
	RoleHRPersonnel UserRole = "HRPersonnel"

	// Applicants using the candidate portal
	RoleCandidate UserRole = "Candidate"
)

// Is reports whether r equals target.
func (r UserRole) Is(target UserRole) bool {
	return r == target
}
