package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jobportal/apiserver/internal/storage"
)

const (
	maxLogoMemory   = 4 << 20
	maxLogoBytes    = 2 << 20
	formFieldLogo   = "logo"
	logoContentType = "application/octet-stream"
)

var allowedLogoExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".svg":  true,
	".webp": true,
}

// LogoHandler stores and serves company logos from object storage.
type LogoHandler struct {
	storage storage.ObjectStorage
}

// NewLogoHandler constructs a handler with the provided storage backend.
func NewLogoHandler(objectStorage storage.ObjectStorage) *LogoHandler {
	return &LogoHandler{storage: objectStorage}
}

// LogoRouter registers logo routes on the given router.
func LogoRouter(r chi.Router, objectStorage storage.ObjectStorage, authMiddleware func(http.Handler) http.Handler) {
	handler := NewLogoHandler(objectStorage)

	r.With(authMiddleware).Post("/logo", handler.UploadLogo)
	r.Get("/logo/{key}", handler.ServeLogo)
}

// LogoUploadResponse carries the URL to use as a posting's logo_url.
type LogoUploadResponse struct {
	LogoURL string `json:"logo_url"`
}

// UploadLogo accepts a multipart image upload and stores it under a fresh
// key, returning the serving URL.
func (h *LogoHandler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxLogoMemory); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	if r.MultipartForm == nil || len(r.MultipartForm.File[formFieldLogo]) == 0 {
		writeError(w, http.StatusBadRequest, "logo file is required")
		return
	}
	fileHeader := r.MultipartForm.File[formFieldLogo][0]

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedLogoExtensions[ext] {
		writeError(w, http.StatusBadRequest, "unsupported logo format")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read logo file")
		return
	}
	data, err := readFileLimited(file, maxLogoBytes)
	_ = file.Close()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	key := uuid.NewString() + ext
	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = logoContentType
	}

	if err := h.storage.Put(r.Context(), key, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to store logo")
		return
	}

	writeJSON(w, http.StatusCreated, LogoUploadResponse{
		LogoURL: fmt.Sprintf("/job/logo/%s", key),
	})
}

// ServeLogo streams a stored logo.
func (h *LogoHandler) ServeLogo(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" || key != filepath.Base(key) {
		writeError(w, http.StatusBadRequest, "invalid logo key")
		return
	}

	reader, err := h.storage.Get(r.Context(), key)
	if err != nil {
		writeError(w, http.StatusNotFound, "logo not found")
		return
	}
	defer reader.Close()

	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(key)))
	if contentType == "" {
		contentType = logoContentType
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = io.Copy(w, reader)
}

func readFileLimited(reader io.Reader, limit int64) ([]byte, error) {
	limited := io.LimitReader(reader, limit+1)
	data, err := io.ReadAll(limited)
	if err != nil {
		return nil, errors.New("failed to read upload")
	}
	if int64(len(data)) > limit {
		return nil, errors.New("uploaded file too large")
	}
	return data, nil
}
