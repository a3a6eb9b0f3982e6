// Package service contains the business logic for the Content Journal API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/rprasanth/content-journal/backend/internal/domain"
	"github.com/rprasanth/content-journal/backend/internal/repo"
	"github.com/rprasanth/content-journal/backend/internal/stats"
)

// recentEntryLimit is how many of the newest entries the stats endpoint
// returns for the dashboard preview.
const recentEntryLimit = 5

// EntryService implements business logic for Entry operations.
type EntryService struct {
	repo repo.EntryRepo
}

// NewEntryService constructs an EntryService backed by the provided EntryRepo.
func NewEntryService(r repo.EntryRepo) *EntryService {
	return &EntryService{repo: r}
}

// Create validates and persists a new entry. The owner must belong to the
// closed user set and the content must be non-empty after trimming.
func (s *EntryService) Create(ctx context.Context, owner, content string) (domain.Entry, error) {
	if !domain.ValidUser(owner) {
		return domain.Entry{}, fmt.Errorf("service.EntryService.Create: %w: user must be one of the known users", domain.ErrValidation)
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Entry{}, fmt.Errorf("service.EntryService.Create: %w: content is required", domain.ErrValidation)
	}

	created, err := s.repo.Create(ctx, owner, content)
	if err != nil {
		return domain.Entry{}, err
	}
	return created, nil
}

// List returns entries newest-first. An empty owner lists every user's
// entries; a non-empty owner outside the closed set is a validation error.
// An owner with no entries yields an empty list, never NotFound.
func (s *EntryService) List(ctx context.Context, owner string) ([]domain.Entry, error) {
	if owner != "" && !domain.ValidUser(owner) {
		return nil, fmt.Errorf("service.EntryService.List: %w: unknown user", domain.ErrValidation)
	}
	return s.repo.ListByOwner(ctx, owner)
}

// Update overwrites the content of an existing entry. Only content is
// mutable; owner and createdAt are never changed.
func (s *EntryService) Update(ctx context.Context, id uuid.UUID, content string) (domain.Entry, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Entry{}, fmt.Errorf("service.EntryService.Update: %w: content is required", domain.ErrValidation)
	}
	return s.repo.UpdateContent(ctx, id, content)
}

// Delete removes an entry irreversibly. Deleting an already-deleted ID
// returns domain.ErrNotFound, not success.
func (s *EntryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Stats returns the per-user dashboard numbers: total entry count, distinct
// active days, and the newest entries.
func (s *EntryService) Stats(ctx context.Context, owner string) (domain.UserStats, error) {
	if !domain.ValidUser(owner) {
		return domain.UserStats{}, fmt.Errorf("service.EntryService.Stats: %w: unknown user", domain.ErrValidation)
	}

	entries, err := s.repo.ListByOwner(ctx, owner)
	if err != nil {
		return domain.UserStats{}, err
	}

	recent := entries
	if len(recent) > recentEntryLimit {
		recent = recent[:recentEntryLimit]
	}

	return domain.UserStats{
		TotalEntries:  len(entries),
		ActiveDays:    stats.ActiveDays(entries),
		RecentEntries: recent,
	}, nil
}
