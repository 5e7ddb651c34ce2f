package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jobportal/apiserver/internal/services"
	"github.com/jobportal/apiserver/internal/store"
	"github.com/jobportal/apiserver/types"
)

const (
	defaultPage = 1
	pageSize    = 10

	// postedDateFormat is dd-MM-yyyy; existing clients parse this exact
	// layout, so it must not change.
	postedDateFormat = "02-01-2006"
)

// JobHandler provides HTTP handlers for job postings.
type JobHandler struct {
	jobService *services.JobService
}

// NewJobHandler constructs a handler with the provided service.
func NewJobHandler(jobService *services.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// JobRouter registers job posting routes on the given router.
func JobRouter(r chi.Router, jobService *services.JobService, authMiddleware func(http.Handler) http.Handler) {
	handler := NewJobHandler(jobService)

	r.With(authMiddleware).Post("/add", handler.AddJob)
	r.Get("/get", handler.GetJobs)
	r.With(authMiddleware).Put("/update/{id}", handler.UpdateJob)
	r.With(authMiddleware).Delete("/delete/{id}", handler.DeleteJob)
}

type AddJobRequest struct {
	UserID         string `json:"user_id"      validate:"required"`
	CompanyName    string `json:"company_name" validate:"required"`
	LogoURL        string `json:"logo_url"`
	JobPosition    string `json:"job_position" validate:"required"`
	MonthlySalary  string `json:"monthly_salary"`
	JobType        string `json:"job_type"`
	RemoteOffice   string `json:"remote_office"`
	Location       string `json:"location"`
	JobDescription string `json:"job_description"`
	AboutCompany   string `json:"about_company"`
	SkillsRequired string `json:"skills_required"`
	AdditionalInfo string `json:"additional_info"`
}

// JobListResponse is the paginated list payload.
type JobListResponse struct {
	Jobs       []types.Job `json:"jobs"`
	TotalPages int         `json:"totalPages"`
}

// AddJob creates a posting dated today. A posting is rejected when the same
// owner already posted the same company/position pair.
func (h *JobHandler) AddJob(w http.ResponseWriter, r *http.Request) {
	var req AddJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "missing required fields")
		return
	}

	_, err := h.jobService.Create(r.Context(), types.Job{
		ID:             uuid.NewString(),
		UserID:         req.UserID,
		CompanyName:    req.CompanyName,
		LogoURL:        req.LogoURL,
		JobPosition:    req.JobPosition,
		MonthlySalary:  req.MonthlySalary,
		JobType:        req.JobType,
		RemoteOffice:   req.RemoteOffice,
		Location:       req.Location,
		JobDescription: req.JobDescription,
		AboutCompany:   req.AboutCompany,
		SkillsRequired: req.SkillsRequired,
		AdditionalInfo: req.AdditionalInfo,
		JobPosted:      time.Now().Format(postedDateFormat),
	})
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			writeError(w, http.StatusBadRequest, "You have already posted this job.")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error posting job")
		return
	}

	writeMessage(w, http.StatusCreated, "Job posted successfully!")
}

// GetJobs fetches a single posting when jobId is supplied, otherwise a page
// of postings with the total page count.
func (h *JobHandler) GetJobs(w http.ResponseWriter, r *http.Request) {
	jobID := strings.TrimSpace(r.URL.Query().Get("jobId"))
	if jobID != "" {
		job, err := h.jobService.Get(r.Context(), jobID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				// A missing id answers 200 with a null body, not 404.
				// Existing clients rely on this.
				writeJSON(w, http.StatusOK, nil)
				return
			}
			writeError(w, http.StatusInternalServerError, "Error fetching jobs")
			return
		}
		writeJSON(w, http.StatusOK, job)
		return
	}

	page := defaultPage
	if raw := strings.TrimSpace(r.URL.Query().Get("page")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "invalid page")
			return
		}
		page = parsed
	}

	jobs, total, err := h.jobService.List(r.Context(), (page-1)*pageSize, pageSize)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching jobs")
		return
	}

	writeJSON(w, http.StatusOK, JobListResponse{
		Jobs:       jobs,
		TotalPages: (total + pageSize - 1) / pageSize,
	})
}

// UpdateJob applies a partial update. Only provided (non-empty) fields
// change; updating a nonexistent id reports success without effect.
func (h *JobHandler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var update types.JobUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if columns, _ := update.Fields(); len(columns) == 0 {
		writeError(w, http.StatusBadRequest, "No fields provided for update")
		return
	}

	if err := h.jobService.Update(r.Context(), id, update); err != nil {
		writeError(w, http.StatusInternalServerError, "Error updating job")
		return
	}

	writeMessage(w, http.StatusOK, "Job updated successfully")
}

// DeleteJob removes a posting; deleting a nonexistent id reports success.
func (h *JobHandler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.jobService.Delete(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "Error deleting job")
		return
	}

	writeMessage(w, http.StatusOK, "Job deleted successfully")
}
