// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package candidate

import (
	"context"
	"time"
)

type Repository interface {
	ListCandidates(context context.Context, f Filter, limit, offset int) ([]*Candidate, int, error)
	GetCandidate(context context.Context, id string) (*Candidate, error)
	CreateCandidate(context context.Context, c *Candidate) error
	UpdateCandidate(context context.Context, id string, patch Patch) (*Candidate, error)
	DeleteCandidate(context context.Context, id string) error

	// CountPipeline counts candidates awaiting review, interviewing within
	// (now, until] and hired.
	CountPipeline(context context.Context, now, until time.Time) (Counts, error)
}

// JobLookup confirms that an applied job exists.
type JobLookup interface {
	Exists(context context.Context, id string) (bool, error)
}
