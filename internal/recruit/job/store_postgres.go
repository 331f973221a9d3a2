// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package job

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/hirelane/internal/platform/apperr"
	"github.com/taibuivan/hirelane/internal/platform/database/schema"
	"github.com/taibuivan/hirelane/internal/platform/dberr"
	"github.com/taibuivan/hirelane/internal/platform/postgres"
)

// ErrJobHasCandidates is returned when deleting a job candidates still apply to.
var ErrJobHasCandidates = apperr.Conflict("Job still has candidates")

type PostgresRepository struct {
	db postgres.Querier
}

func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var jobColumns = strings.Join(schema.RecruitJob.Columns(), ", ")

func scanJob(row pgx.Row) (*Job, error) {
	j := &Job{}
	var salaryMin, salaryMax *int64

	err := row.Scan(
		&j.ID, &j.Title, &j.Description, &j.Requirements, &j.Responsibilities,
		&j.Department, &j.Location, &j.EmploymentType, &j.ExperienceLevel,
		&salaryMin, &salaryMax, &j.Deadline, &j.IsActive, &j.PostedBy,
		&j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if salaryMin != nil && salaryMax != nil {
		j.SalaryRange = &SalaryRange{Min: *salaryMin, Max: *salaryMax}
	}
	return j, nil
}

func wrap(err error, action string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrJobNotFound
	}
	return dberr.Wrap(err, "postgres_job_repo_"+action+"_failed")
}

func (repository *PostgresRepository) ListJobs(context context.Context, postedBy string, f Filter, limit, offset int) ([]*Job, int, error) {
	args := []any{postedBy}
	conditions := []string{fmt.Sprintf("%s = $1", schema.RecruitJob.PostedBy)}

	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		conditions = append(conditions, fmt.Sprintf("%s ILIKE $%d", schema.RecruitJob.Title, len(args)))
	}
	if len(f.EmploymentTypes) > 0 {
		args = append(args, f.EmploymentTypes)
		conditions = append(conditions, fmt.Sprintf("%s = ANY($%d)", schema.RecruitJob.EmploymentType, len(args)))
	}
	if f.Active != nil {
		args = append(args, *f.Active)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", schema.RecruitJob.IsActive, len(args)))
	}

	where := strings.Join(conditions, " AND ")
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s`, schema.RecruitJob.Table, where)

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, wrap(err, "count")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s ORDER BY %s DESC LIMIT $%d OFFSET $%d`,
		jobColumns, schema.RecruitJob.Table, where, schema.RecruitJob.CreatedAt, len(args)+1, len(args)+2,
	)

	rows, err := repository.db.Query(context, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, wrap(err, "list")
	}
	defer rows.Close()

	jobs := []*Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, 0, wrap(err, "scan")
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, wrap(err, "list")
	}

	return jobs, total, nil
}

func (repository *PostgresRepository) GetJob(context context.Context, id, postedBy string) (*Job, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2`,
		jobColumns, schema.RecruitJob.Table, schema.RecruitJob.ID, schema.RecruitJob.PostedBy,
	)

	j, err := scanJob(repository.db.QueryRow(context, query, id, postedBy))
	if err != nil {
		return nil, wrap(err, "get")
	}
	return j, nil
}

func (repository *PostgresRepository) Exists(context context.Context, id string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, schema.RecruitJob.Table, schema.RecruitJob.ID)

	var exists bool
	if err := repository.db.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, wrap(err, "exists")
	}
	return exists, nil
}

func (repository *PostgresRepository) CreateJob(context context.Context, j *Job) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.RecruitJob.Table, jobColumns,
		schema.RecruitJob.CreatedAt, schema.RecruitJob.UpdatedAt,
	)

	salaryMin, salaryMax := salaryBounds(j.SalaryRange)

	err := repository.db.QueryRow(context, query,
		j.ID, j.Title, j.Description, j.Requirements, j.Responsibilities,
		j.Department, j.Location, string(j.EmploymentType), string(j.ExperienceLevel),
		salaryMin, salaryMax, j.Deadline, j.IsActive, j.PostedBy,
	).Scan(&j.CreatedAt, &j.UpdatedAt)

	return wrap(err, "create")
}

// UpdateJob writes only the fields present in patch.
func (repository *PostgresRepository) UpdateJob(context context.Context, id, postedBy string, patch Patch) (*Job, error) {
	set := postgres.NewAssignments(id, postedBy)

	if patch.Title != nil {
		set.Add(schema.RecruitJob.Title, *patch.Title)
	}
	if patch.Description != nil {
		set.Add(schema.RecruitJob.Description, *patch.Description)
	}
	if patch.Requirements != nil {
		set.Add(schema.RecruitJob.Requirements, *patch.Requirements)
	}
	if patch.Responsibilities != nil {
		set.Add(schema.RecruitJob.Responsibilities, *patch.Responsibilities)
	}
	if patch.Department != nil {
		set.Add(schema.RecruitJob.Department, *patch.Department)
	}
	if patch.Location != nil {
		set.Add(schema.RecruitJob.Location, *patch.Location)
	}
	if patch.EmploymentType != nil {
		set.Add(schema.RecruitJob.EmploymentType, string(*patch.EmploymentType))
	}
	if patch.ExperienceLevel != nil {
		set.Add(schema.RecruitJob.ExperienceLevel, string(*patch.ExperienceLevel))
	}
	if patch.SalaryRange != nil {
		set.Add(schema.RecruitJob.SalaryMin, patch.SalaryRange.Min)
		set.Add(schema.RecruitJob.SalaryMax, patch.SalaryRange.Max)
	}
	if patch.Deadline != nil {
		set.Add(schema.RecruitJob.Deadline, *patch.Deadline)
	}
	if patch.IsActive != nil {
		set.Add(schema.RecruitJob.IsActive, *patch.IsActive)
	}
	set.Raw(schema.RecruitJob.UpdatedAt, "NOW()")

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $1 AND %s = $2 RETURNING %s`,
		schema.RecruitJob.Table, set.Clause(),
		schema.RecruitJob.ID, schema.RecruitJob.PostedBy, jobColumns,
	)

	j, err := scanJob(repository.db.QueryRow(context, query, set.Args()...))
	if err != nil {
		return nil, wrap(err, "update")
	}
	return j, nil
}

func (repository *PostgresRepository) ToggleActive(context context.Context, id, postedBy string) (*Job, error) {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOT %s, %s = NOW() WHERE %s = $1 AND %s = $2 RETURNING %s`,
		schema.RecruitJob.Table, schema.RecruitJob.IsActive, schema.RecruitJob.IsActive,
		schema.RecruitJob.UpdatedAt, schema.RecruitJob.ID, schema.RecruitJob.PostedBy, jobColumns,
	)

	j, err := scanJob(repository.db.QueryRow(context, query, id, postedBy))
	if err != nil {
		return nil, wrap(err, "toggle_active")
	}
	return j, nil
}

func (repository *PostgresRepository) DeleteJob(context context.Context, id, postedBy string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.RecruitJob.Table, schema.RecruitJob.ID, schema.RecruitJob.PostedBy,
	)

	cmd, err := repository.db.Exec(context, query, id, postedBy)
	if err != nil {
		if dberr.IsForeignKeyViolation(err) {
			return ErrJobHasCandidates.WithCause(err)
		}
		return wrap(err, "delete")
	}

	if cmd.RowsAffected() == 0 {
		return ErrJobNotFound
	}
	return nil
}

func salaryBounds(r *SalaryRange) (*int64, *int64) {
	if r == nil {
		return nil, nil
	}
	return &r.Min, &r.Max
}
