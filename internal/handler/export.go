// Package handler — export.go implements the password-gated download routes.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rprasanth/content-journal/backend/internal/domain"
)

// downloadRequest is the body of both download routes.
type downloadRequest struct {
	Password string `json:"password"`
}

// DownloadUser handles POST /api/todos/download/{user}.
// A wrong password and an unknown user return an identical 401.
func (s *Server) DownloadUser(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "user")

	var req downloadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "request body must be valid JSON")
		return
	}

	bundle, err := s.export.ExportUser(r.Context(), owner, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			unauthorized(w)
			return
		}
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, bundle)
}

// DownloadAll handles POST /api/todos/download-all, gated by the admin password.
func (s *Server) DownloadAll(w http.ResponseWriter, r *http.Request) {
	var req downloadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "request body must be valid JSON")
		return
	}

	export, err := s.export.ExportAll(r.Context(), req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			unauthorized(w)
			return
		}
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, export)
}
