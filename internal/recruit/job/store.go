// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package job

import "context"

// Repository persists jobs. Every method except Exists is scoped to postedBy.
type Repository interface {
	ListJobs(context context.Context, postedBy string, f Filter, limit, offset int) ([]*Job, int, error)
	GetJob(context context.Context, id, postedBy string) (*Job, error)
	CreateJob(context context.Context, j *Job) error
	UpdateJob(context context.Context, id, postedBy string, patch Patch) (*Job, error)
	DeleteJob(context context.Context, id, postedBy string) error
	ToggleActive(context context.Context, id, postedBy string) (*Job, error)

	// Exists reports whether a job exists regardless of its owner.
	Exists(context context.Context, id string) (bool, error)
}
