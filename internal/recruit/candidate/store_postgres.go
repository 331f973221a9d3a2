// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package candidate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/hirelane/internal/platform/database/schema"
	"github.com/taibuivan/hirelane/internal/platform/dberr"
	"github.com/taibuivan/hirelane/internal/platform/postgres"
	"github.com/taibuivan/hirelane/internal/recruit/job"
)

type PostgresRepository struct {
	db postgres.Querier
}

func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var candidateColumns = strings.Join(schema.RecruitCandidate.Columns(), ", ")

func scanCandidate(row pgx.Row) (*Candidate, error) {
	c := &Candidate{}
	err := row.Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Qualifications,
		&c.Experience, &c.CurrentPosition, &c.CurrentCompany, &c.JobPreferences,
		&c.Status, &c.InterviewDate, &c.Feedback, &c.Resume, &c.AppliedJob,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func wrap(err error, action string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrCandidateNotFound
	}
	// The applied job vanished between the existence check and the write.
	if dberr.IsForeignKeyViolation(err) {
		return job.ErrJobNotFound.WithCause(err)
	}
	return dberr.Wrap(err, "postgres_candidate_repo_"+action+"_failed")
}

func (repository *PostgresRepository) ListCandidates(context context.Context, f Filter, limit, offset int) ([]*Candidate, int, error) {
	args := []any{}
	conditions := []string{"TRUE"}

	if len(f.Statuses) > 0 {
		args = append(args, f.Statuses)
		conditions = append(conditions, fmt.Sprintf("%s = ANY($%d)", schema.RecruitCandidate.Status, len(args)))
	}
	if f.AppliedJob != "" {
		args = append(args, f.AppliedJob)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", schema.RecruitCandidate.AppliedJob, len(args)))
	}

	where := strings.Join(conditions, " AND ")
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s`, schema.RecruitCandidate.Table, where)

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, wrap(err, "count")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s ORDER BY %s DESC LIMIT $%d OFFSET $%d`,
		candidateColumns, schema.RecruitCandidate.Table, where,
		schema.RecruitCandidate.CreatedAt, len(args)+1, len(args)+2,
	)

	rows, err := repository.db.Query(context, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, wrap(err, "list")
	}
	defer rows.Close()

	candidates := []*Candidate{}
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, 0, wrap(err, "scan")
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, wrap(err, "list")
	}

	return candidates, total, nil
}

func (repository *PostgresRepository) GetCandidate(context context.Context, id string) (*Candidate, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		candidateColumns, schema.RecruitCandidate.Table, schema.RecruitCandidate.ID,
	)

	c, err := scanCandidate(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, wrap(err, "get")
	}
	return c, nil
}

func (repository *PostgresRepository) CreateCandidate(context context.Context, c *Candidate) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.RecruitCandidate.Table, candidateColumns,
		schema.RecruitCandidate.CreatedAt, schema.RecruitCandidate.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		c.ID, c.FirstName, c.LastName, c.Email, c.Phone, c.Qualifications,
		c.Experience, c.CurrentPosition, c.CurrentCompany, c.JobPreferences,
		string(c.Status), c.InterviewDate, c.Feedback, c.Resume, c.AppliedJob,
	).Scan(&c.CreatedAt, &c.UpdatedAt)

	return wrap(err, "create")
}

// UpdateCandidate writes only the fields present in patch.
func (repository *PostgresRepository) UpdateCandidate(context context.Context, id string, patch Patch) (*Candidate, error) {
	set := postgres.NewAssignments(id)

	if patch.FirstName != nil {
		set.Add(schema.RecruitCandidate.FirstName, *patch.FirstName)
	}
	if patch.LastName != nil {
		set.Add(schema.RecruitCandidate.LastName, *patch.LastName)
	}
	if patch.Email != nil {
		set.Add(schema.RecruitCandidate.Email, *patch.Email)
	}
	if patch.Phone != nil {
		set.Add(schema.RecruitCandidate.Phone, *patch.Phone)
	}
	if patch.Qualifications != nil {
		set.Add(schema.RecruitCandidate.Qualifications, *patch.Qualifications)
	}
	if patch.Experience != nil {
		set.Add(schema.RecruitCandidate.Experience, *patch.Experience)
	}
	if patch.CurrentPosition != nil {
		set.Add(schema.RecruitCandidate.CurrentPosition, *patch.CurrentPosition)
	}
	if patch.CurrentCompany != nil {
		set.Add(schema.RecruitCandidate.CurrentCompany, *patch.CurrentCompany)
	}
	if patch.JobPreferences != nil {
		set.Add(schema.RecruitCandidate.JobPreferences, *patch.JobPreferences)
	}
	if patch.Status != nil {
		set.Add(schema.RecruitCandidate.Status, string(*patch.Status))
	}
	if patch.InterviewDate != nil {
		set.Add(schema.RecruitCandidate.InterviewDate, *patch.InterviewDate)
	}
	if patch.Feedback != nil {
		set.Add(schema.RecruitCandidate.Feedback, *patch.Feedback)
	}
	if patch.Resume != nil {
		set.Add(schema.RecruitCandidate.Resume, *patch.Resume)
	}
	if patch.AppliedJob != nil {
		set.Add(schema.RecruitCandidate.AppliedJob, *patch.AppliedJob)
	}
	set.Raw(schema.RecruitCandidate.UpdatedAt, "NOW()")

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $1 RETURNING %s`,
		schema.RecruitCandidate.Table, set.Clause(), schema.RecruitCandidate.ID, candidateColumns,
	)

	c, err := scanCandidate(repository.db.QueryRow(context, query, set.Args()...))
	if err != nil {
		return nil, wrap(err, "update")
	}
	return c, nil
}

func (repository *PostgresRepository) DeleteCandidate(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.RecruitCandidate.Table, schema.RecruitCandidate.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return wrap(err, "delete")
	}

	if cmd.RowsAffected() == 0 {
		return ErrCandidateNotFound
	}
	return nil
}

func (repository *PostgresRepository) CountPipeline(context context.Context, now, until time.Time) (Counts, error) {
	query := fmt.Sprintf(`
		SELECT
			count(*) FILTER (WHERE %[2]s = $1),
			count(*) FILTER (WHERE %[3]s > $3 AND %[3]s <= $4),
			count(*) FILTER (WHERE %[2]s = $2)
		FROM %[1]s
	`,
		schema.RecruitCandidate.Table, schema.RecruitCandidate.Status, schema.RecruitCandidate.InterviewDate,
	)

	var counts Counts
	err := repository.db.QueryRow(context, query, string(StatusApplied), string(StatusHired), now, until).
		Scan(&counts.PendingReviews, &counts.UpcomingInterviews, &counts.OnboardingTasks)
	if err != nil {
		return Counts{}, wrap(err, "count_pipeline")
	}
	return counts, nil
}
