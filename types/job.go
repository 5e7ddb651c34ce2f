package types

// Job represents a job posting owned by a user.
//
// All display fields are free-form text supplied by the poster. JobPosted is
// the creation date formatted as dd-MM-yyyy; clients depend on that exact
// format, so it is stored as text rather than a timestamp.
type Job struct {
	// ID is the opaque unique identifier of the posting.
	ID string `json:"job_id" db:"job_id"`

	// UserID identifies the user who created the posting.
	UserID string `json:"user_id" db:"user_id"`

	CompanyName    string `json:"company_name" db:"company_name"`
	LogoURL        string `json:"logo_url" db:"logo_url"`
	JobPosition    string `json:"job_position" db:"job_position"`
	MonthlySalary  string `json:"monthly_salary" db:"monthly_salary"`
	JobType        string `json:"job_type" db:"job_type"`
	RemoteOffice   string `json:"remote_office" db:"remote_office"`
	Location       string `json:"location" db:"location"`
	JobDescription string `json:"job_description" db:"job_description"`
	AboutCompany   string `json:"about_company" db:"about_company"`
	SkillsRequired string `json:"skills_required" db:"skills_required"`
	AdditionalInfo string `json:"additional_info" db:"additional_info"`

	// JobPosted is the creation date, formatted dd-MM-yyyy.
	JobPosted string `json:"job_posted" db:"job_posted"`
}

// JobUpdate carries the optional fields of a partial update. An empty string
// means "not provided"; there is no way to clear a field to empty through an
// update, matching the existing API contract.
type JobUpdate struct {
	CompanyName    string `json:"company_name"`
	LogoURL        string `json:"logo_url"`
	JobPosition    string `json:"job_position"`
	MonthlySalary  string `json:"monthly_salary"`
	JobType        string `json:"job_type"`
	RemoteOffice   string `json:"remote_office"`
	Location       string `json:"location"`
	JobDescription string `json:"job_description"`
	AboutCompany   string `json:"about_company"`
	SkillsRequired string `json:"skills_required"`
	AdditionalInfo string `json:"additional_info"`
}

// Fields returns the provided column/value pairs in a stable order.
func (u JobUpdate) Fields() ([]string, []any) {
	var columns []string
	var values []any
	add := func(column, value string) {
		if value != "" {
			columns = append(columns, column)
			values = append(values, value)
		}
	}
	add("company_name", u.CompanyName)
	add("logo_url", u.LogoURL)
	add("job_position", u.JobPosition)
	add("monthly_salary", u.MonthlySalary)
	add("job_type", u.JobType)
	add("remote_office", u.RemoteOffice)
	add("location", u.Location)
	add("job_description", u.JobDescription)
	add("about_company", u.AboutCompany)
	add("skills_required", u.SkillsRequired)
	add("additional_info", u.AdditionalInfo)
	return columns, values
}
