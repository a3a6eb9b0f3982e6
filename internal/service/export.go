package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rprasanth/content-journal/backend/internal/domain"
	"github.com/rprasanth/content-journal/backend/internal/repo"
	"github.com/rprasanth/content-journal/backend/internal/stats"
)

// ExportService assembles password-gated export bundles. Credentials are
// static configuration loaded at startup: one secret per user plus a single
// admin secret for the all-users export. Authentication is a plain equality
// check against those secrets — there is no hashing, no rate limiting, and
// no session state.
type ExportService struct {
	repo          repo.EntryRepo
	userPasswords map[string]string
	adminPassword string
}

// NewExportService constructs an ExportService backed by the provided repo
// and credential table.
func NewExportService(r repo.EntryRepo, userPasswords map[string]string, adminPassword string) *ExportService {
	return &ExportService{
		repo:          r,
		userPasswords: userPasswords,
		adminPassword: adminPassword,
	}
}

// ExportUser returns the full export bundle for one user after checking the
// supplied password against that user's configured secret.
//
// An unknown user and a wrong password both produce the same ErrUnauthorized
// so callers cannot enumerate the user set through this endpoint.
func (s *ExportService) ExportUser(ctx context.Context, owner, password string) (domain.ExportBundle, error) {
	secret, ok := s.userPasswords[owner]
	if !ok || !secretsEqual(password, secret) {
		return domain.ExportBundle{}, fmt.Errorf("service.ExportService.ExportUser: %w", domain.ErrUnauthorized)
	}

	entries, err := s.repo.ListByOwner(ctx, owner)
	if err != nil {
		return domain.ExportBundle{}, err
	}

	return buildBundle(owner, entries, time.Now().UTC()), nil
}

// ExportAll returns one bundle per user in enumeration order plus a summary,
// gated by the admin password.
func (s *ExportService) ExportAll(ctx context.Context, password string) (domain.FullExport, error) {
	if !secretsEqual(password, s.adminPassword) {
		return domain.FullExport{}, fmt.Errorf("service.ExportService.ExportAll: %w", domain.ErrUnauthorized)
	}

	now := time.Now().UTC()
	out := domain.FullExport{Bundles: make(map[string]domain.ExportBundle, len(domain.Users))}

	for _, user := range domain.Users {
		entries, err := s.repo.ListByOwner(ctx, user)
		if err != nil {
			return domain.FullExport{}, err
		}

		bundle := buildBundle(user, entries, now)
		out.Bundles[user] = bundle
		out.Summary.TotalEntries += bundle.Stats.TotalEntries

		// Strict > keeps the first user reaching the maximum, since Users is
		// walked in enumeration order.
		if out.Summary.MostActiveUser == "" ||
			bundle.Stats.TotalEntries > out.Bundles[out.Summary.MostActiveUser].Stats.TotalEntries {
			out.Summary.MostActiveUser = user
		}
	}

	return out, nil
}

// buildBundle assembles the export payload for one user: annotated entries
// plus the derived statistics computed as of now.
func buildBundle(user string, entries []domain.Entry, now time.Time) domain.ExportBundle {
	annotated := make([]domain.ExportEntry, len(entries))
	for i, e := range entries {
		annotated[i] = domain.ExportEntry{
			Entry:          e,
			WordCount:      len(strings.Fields(e.Content)),
			CharacterCount: utf8.RuneCountInString(e.Content),
		}
	}

	return domain.ExportBundle{
		User:       user,
		ExportedAt: now,
		Stats: domain.ExportStats{
			TotalEntries:  len(entries),
			ActiveDays:    stats.ActiveDays(entries),
			CurrentStreak: stats.CurrentStreak(entries, now),
			DailyCounts:   stats.DailyCounts(entries),
		},
		Entries: annotated,
	}
}

// secretsEqual compares a supplied password against a configured secret in
// constant time. The contract is still a flat equality check; subtle only
// avoids leaking match length through timing.
func secretsEqual(got, want string) bool {
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
