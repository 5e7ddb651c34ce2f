package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jobportal/apiserver/types"
)

// JobRepository handles persistence for job postings.
type JobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

// Create inserts a new posting. It returns ErrConflict when the owner already
// has a posting with the same company name and position.
func (r *JobRepository) Create(ctx context.Context, job types.Job) (types.Job, error) {
	const query = `
		INSERT INTO job_list (
			job_id, user_id, company_name, logo_url, job_position,
			monthly_salary, job_type, remote_office, location,
			job_description, about_company, skills_required,
			additional_info, job_posted
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	if _, err := r.db.ExecContext(
		ctx,
		query,
		job.ID,
		job.UserID,
		job.CompanyName,
		job.LogoURL,
		job.JobPosition,
		job.MonthlySalary,
		job.JobType,
		job.RemoteOffice,
		job.Location,
		job.JobDescription,
		job.AboutCompany,
		job.SkillsRequired,
		job.AdditionalInfo,
		job.JobPosted,
	); err != nil {
		if isUniqueViolation(err) {
			return types.Job{}, ErrConflict
		}
		return types.Job{}, err
	}
	return job, nil
}

func (r *JobRepository) Get(ctx context.Context, id string) (types.Job, error) {
	const query = `
		SELECT job_id, user_id, company_name, logo_url, job_position,
			monthly_salary, job_type, remote_office, location,
			job_description, about_company, skills_required,
			additional_info, job_posted
		FROM job_list
		WHERE job_id = $1`
	var job types.Job
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&job.ID,
		&job.UserID,
		&job.CompanyName,
		&job.LogoURL,
		&job.JobPosition,
		&job.MonthlySalary,
		&job.JobType,
		&job.RemoteOffice,
		&job.Location,
		&job.JobDescription,
		&job.AboutCompany,
		&job.SkillsRequired,
		&job.AdditionalInfo,
		&job.JobPosted,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Job{}, ErrNotFound
		}
		return types.Job{}, err
	}
	return job, nil
}

// List returns a page of postings in insertion order plus the total count.
func (r *JobRepository) List(ctx context.Context, offset, limit int) ([]types.Job, int, error) {
	if offset < 0 {
		offset = 0
	}
	if limit < 1 {
		limit = 10
	}

	const countQuery = `SELECT COUNT(1) FROM job_list`
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, err
	}

	const listQuery = `
		SELECT job_id, user_id, company_name, logo_url, job_position,
			monthly_salary, job_type, remote_office, location,
			job_description, about_company, skills_required,
			additional_info, job_posted
		FROM job_list
		ORDER BY seq
		OFFSET $1 LIMIT $2`
	rows, err := r.db.QueryContext(ctx, listQuery, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	jobs := make([]types.Job, 0, limit)
	for rows.Next() {
		var job types.Job
		if err := rows.Scan(
			&job.ID,
			&job.UserID,
			&job.CompanyName,
			&job.LogoURL,
			&job.JobPosition,
			&job.MonthlySalary,
			&job.JobType,
			&job.RemoteOffice,
			&job.Location,
			&job.JobDescription,
			&job.AboutCompany,
			&job.SkillsRequired,
			&job.AdditionalInfo,
			&job.JobPosted,
		); err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

// Update applies the provided fields to a posting. Updating an id that does
// not exist is a silent no-op; callers that need to distinguish must Get
// first. The update struct must carry at least one field.
func (r *JobRepository) Update(ctx context.Context, id string, update types.JobUpdate) error {
	columns, values := update.Fields()
	if len(columns) == 0 {
		return errors.New("no fields provided for update")
	}

	var b strings.Builder
	b.WriteString("UPDATE job_list SET ")
	for i, column := range columns {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s = $%d", column, i+1)
	}
	fmt.Fprintf(&b, " WHERE job_id = $%d", len(columns)+1)
	values = append(values, id)

	_, err := r.db.ExecContext(ctx, b.String(), values...)
	return err
}

// Delete removes a posting. Deleting an id that does not exist is a silent
// no-op.
func (r *JobRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM job_list WHERE job_id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
