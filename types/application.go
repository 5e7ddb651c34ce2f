package types

// Application represents a user's application to a job posting.
//
// CompanyName, LogoURL and JobPosition are a denormalized snapshot of the
// posting taken at apply time; later edits to the posting do not propagate.
type Application struct {
	// ID is the opaque unique identifier of the application.
	ID string `json:"apply_id" db:"apply_id"`

	// UserID identifies the applicant.
	UserID string `json:"user_id" db:"user_id"`

	// JobID identifies the posting applied to.
	JobID string `json:"job_id" db:"job_id"`

	CompanyName string `json:"company_name" db:"company_name"`
	LogoURL     string `json:"logo_url" db:"logo_url"`
	JobPosition string `json:"job_position" db:"job_position"`

	// AppliedDate is the caller-supplied application date.
	AppliedDate string `json:"applied_date" db:"applied_date"`
}
