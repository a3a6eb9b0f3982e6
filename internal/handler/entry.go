package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rprasanth/content-journal/backend/internal/domain"
)

// createEntryRequest is the body of POST /api/todos.
type createEntryRequest struct {
	User    string `json:"user"`
	Content string `json:"content"`
}

// updateEntryRequest is the body of PUT /api/todos/{id}.
type updateEntryRequest struct {
	Content string `json:"content"`
}

// deleteEntryResponse mirrors the body shape the original API returned on delete.
type deleteEntryResponse struct {
	Message string `json:"message"`
}

// ListEntries handles GET /api/todos.
// Without a ?user= parameter it returns every user's entries, newest first.
func (s *Server) ListEntries(w http.ResponseWriter, r *http.Request) {
	owner := r.URL.Query().Get("user")

	entries, err := s.entries.List(r.Context(), owner)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			validationError(w, err)
			return
		}
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// CreateEntry handles POST /api/todos.
func (s *Server) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "request body must be valid JSON")
		return
	}

	created, err := s.entries.Create(r.Context(), req.User, req.Content)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			validationError(w, err)
			return
		}
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// UpdateEntry handles PUT /api/todos/{id}. Only content is mutable.
func (s *Server) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := entryID(w, r)
	if !ok {
		return
	}

	var req updateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "request body must be valid JSON")
		return
	}

	updated, err := s.entries.Update(r.Context(), id, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			notFound(w, "entry not found")
		case errors.Is(err, domain.ErrValidation):
			validationError(w, err)
		default:
			internalError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteEntry handles DELETE /api/todos/{id}.
// Deletion is irreversible; repeating it for the same id yields 404.
func (s *Server) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := entryID(w, r)
	if !ok {
		return
	}

	if err := s.entries.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "entry not found")
			return
		}
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, deleteEntryResponse{Message: "entry deleted"})
}

// GetStats handles GET /api/todos/stats/{user}.
func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "user")

	userStats, err := s.entries.Stats(r.Context(), owner)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			validationError(w, err)
			return
		}
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userStats)
}

// entryID parses the {id} path parameter. A malformed id gets the same 404
// as a missing one: no entry can exist under a non-UUID path.
func entryID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		notFound(w, "entry not found")
		return uuid.UUID{}, false
	}
	return id, true
}
