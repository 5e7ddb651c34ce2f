package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jobportal/apiserver/internal/events"
	"github.com/jobportal/apiserver/internal/services"
	"github.com/jobportal/apiserver/internal/store"
	"github.com/jobportal/apiserver/types"
	"github.com/rs/zerolog"
)

// ApplicationHandler provides HTTP handlers for job applications.
type ApplicationHandler struct {
	applicationService *services.ApplicationService
	publisher          events.Publisher
	logger             zerolog.Logger
}

// NewApplicationHandler constructs a handler. The publisher may be nil, in
// which case no events are emitted.
func NewApplicationHandler(
	applicationService *services.ApplicationService,
	publisher events.Publisher,
	logger zerolog.Logger,
) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
		publisher:          publisher,
		logger:             logger,
	}
}

// ApplicationRouter registers application routes on the given router.
func ApplicationRouter(
	r chi.Router,
	applicationService *services.ApplicationService,
	publisher events.Publisher,
	logger zerolog.Logger,
	authMiddleware func(http.Handler) http.Handler,
) {
	handler := NewApplicationHandler(applicationService, publisher, logger)

	r.With(authMiddleware).Post("/apply", handler.Apply)
	r.With(authMiddleware).Get("/applied/{user_id}", handler.ListApplied)
	r.With(authMiddleware).Delete("/applied/delete/{apply_id}", handler.Withdraw)
}

type ApplyRequest struct {
	UserID      string `json:"user_id"      validate:"required"`
	JobID       string `json:"job_id"       validate:"required"`
	CompanyName string `json:"company_name" validate:"required"`
	LogoURL     string `json:"logo_url"     validate:"required"`
	JobPosition string `json:"job_position" validate:"required"`
	AppliedDate string `json:"applied_date" validate:"required"`
}

// Apply records a user's application to a job. The company name, logo and
// position are snapshotted as sent; later edits to the posting do not
// propagate. A second application to the same job by the same user is
// rejected.
func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "All fields are required.")
		return
	}

	application, err := h.applicationService.Create(r.Context(), types.Application{
		ID:          uuid.NewString(),
		UserID:      req.UserID,
		JobID:       req.JobID,
		CompanyName: req.CompanyName,
		LogoURL:     req.LogoURL,
		JobPosition: req.JobPosition,
		AppliedDate: req.AppliedDate,
	})
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			writeError(w, http.StatusBadRequest, "You have already applied for this job")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error applying for job")
		return
	}

	h.publishEvent(r.Context(), events.ApplicationEvent{
		Type:       events.TypeApplied,
		ApplyID:    application.ID,
		UserID:     application.UserID,
		JobID:      application.JobID,
		OccurredAt: time.Now(),
	})

	writeMessage(w, http.StatusCreated, "Job applied successfully!")
}

// ListApplied returns the user's applications, newest first.
func (h *ApplicationHandler) ListApplied(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	applications, err := h.applicationService.ListByUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching applied jobs")
		return
	}

	writeJSON(w, http.StatusOK, applications)
}

// Withdraw deletes an application by id.
func (h *ApplicationHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	applyID := chi.URLParam(r, "apply_id")

	if err := h.applicationService.Delete(r.Context(), applyID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Applied job not found!")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error deleting applied job")
		return
	}

	h.publishEvent(r.Context(), events.ApplicationEvent{
		Type:       events.TypeWithdrawn,
		ApplyID:    applyID,
		OccurredAt: time.Now(),
	})

	writeMessage(w, http.StatusOK, "Applied job deleted successfully!")
}

// publishEvent emits an application event. The mutation has already
// committed, so a publish failure is logged and the response is unaffected.
func (h *ApplicationHandler) publishEvent(ctx context.Context, event events.ApplicationEvent) {
	if h.publisher == nil {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error().Err(err).Str("type", event.Type).Msg("marshal application event")
		return
	}

	if _, err := h.publisher.Publish(ctx, events.ApplicationsChannel, data, map[string]string{
		"type": event.Type,
	}); err != nil {
		h.logger.Error().Err(err).Str("type", event.Type).Msg("publish application event")
	}
}
