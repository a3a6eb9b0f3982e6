// Package handler implements the HTTP handlers for the Content Journal API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, entry.go, export.go) but all share the same Server struct
// so they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rprasanth/content-journal/backend/internal/domain"
)

// EntryServicer defines the business operations the entry handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type EntryServicer interface {
	Create(ctx context.Context, owner, content string) (domain.Entry, error)
	List(ctx context.Context, owner string) ([]domain.Entry, error)
	Update(ctx context.Context, id uuid.UUID, content string) (domain.Entry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context, owner string) (domain.UserStats, error)
}

// ExportServicer defines the password-gated export operations.
type ExportServicer interface {
	ExportUser(ctx context.Context, owner, password string) (domain.ExportBundle, error)
	ExportAll(ctx context.Context, password string) (domain.FullExport, error)
}

// Server holds the dependencies for all API endpoints.
// Wire it in main.go via NewServer(...).Routes().
type Server struct {
	entries EntryServicer
	export  ExportServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(entries EntryServicer, export ExportServicer) *Server {
	return &Server{entries: entries, export: export}
}

// Routes returns the chi router for the full API surface.
// The /api/todos prefix is kept for compatibility with the existing web client.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/api/todos", func(r chi.Router) {
		r.Get("/", s.ListEntries)
		r.Post("/", s.CreateEntry)
		r.Put("/{id}", s.UpdateEntry)
		r.Delete("/{id}", s.DeleteEntry)
		r.Get("/stats/{user}", s.GetStats)
		r.Post("/download/{user}", s.DownloadUser)
		r.Post("/download-all", s.DownloadAll)
	})

	return r
}
