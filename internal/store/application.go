package store

import (
	"context"
	"database/sql"

	"github.com/jobportal/apiserver/types"
)

// ApplicationRepository handles persistence for job applications.
type ApplicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create inserts a new application. It returns ErrConflict when the user has
// already applied to the job.
func (r *ApplicationRepository) Create(ctx context.Context, application types.Application) (types.Application, error) {
	const query = `
		INSERT INTO applied_jobs (
			apply_id, user_id, job_id, company_name, logo_url,
			job_position, applied_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := r.db.ExecContext(
		ctx,
		query,
		application.ID,
		application.UserID,
		application.JobID,
		application.CompanyName,
		application.LogoURL,
		application.JobPosition,
		application.AppliedDate,
	); err != nil {
		if isUniqueViolation(err) {
			return types.Application{}, ErrConflict
		}
		return types.Application{}, err
	}
	return application, nil
}

// ListByUser returns the user's applications, newest applied date first.
func (r *ApplicationRepository) ListByUser(ctx context.Context, userID string) ([]types.Application, error) {
	const query = `
		SELECT apply_id, user_id, job_id, company_name, logo_url,
			job_position, applied_date
		FROM applied_jobs
		WHERE user_id = $1
		ORDER BY applied_date DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applications := make([]types.Application, 0)
	for rows.Next() {
		var application types.Application
		if err := rows.Scan(
			&application.ID,
			&application.UserID,
			&application.JobID,
			&application.CompanyName,
			&application.LogoURL,
			&application.JobPosition,
			&application.AppliedDate,
		); err != nil {
			return nil, err
		}
		applications = append(applications, application)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return applications, nil
}

// Delete removes an application, returning ErrNotFound when no row matched.
func (r *ApplicationRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM applied_jobs WHERE apply_id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
