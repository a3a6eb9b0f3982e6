// Package repo contains all database access logic for the Content Journal API.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/rprasanth/content-journal/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// EntryRepo defines the persistence operations for Entries.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type EntryRepo interface {
	// Create inserts a new entry and returns the persisted record (with
	// DB-generated id and created_at populated).
	Create(ctx context.Context, owner, content string) (domain.Entry, error)

	// ListByOwner returns all entries for owner ordered by created_at
	// descending. An empty owner returns every user's entries. An empty
	// result is a valid empty slice, never an error.
	ListByOwner(ctx context.Context, owner string) ([]domain.Entry, error)

	// UpdateContent overwrites the content of an existing entry and returns
	// the updated record. Owner and created_at are never touched.
	// Returns domain.ErrNotFound if no entry with that ID exists.
	UpdateContent(ctx context.Context, id uuid.UUID, content string) (domain.Entry, error)

	// Delete removes an entry by ID. Returns domain.ErrNotFound if it does
	// not exist — including on a repeated delete of the same ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgEntryRepo is the Postgres implementation of EntryRepo.
type pgEntryRepo struct {
	db db
}

// NewEntryRepo constructs an EntryRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewEntryRepo(db db) EntryRepo {
	return &pgEntryRepo{db: db}
}

// Create inserts a new entry row and returns the full persisted record.
func (r *pgEntryRepo) Create(ctx context.Context, owner, content string) (domain.Entry, error) {
	const q = `
		INSERT INTO entries (owner, content)
		VALUES (@owner, @content)
		RETURNING id, owner, content, created_at`

	args := pgx.NamedArgs{
		"owner":   owner,
		"content": content,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanEntry(row)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("repo.EntryRepo.Create: %w", err)
	}
	return result, nil
}

// ListByOwner returns entries newest-first, filtered by owner when non-empty.
func (r *pgEntryRepo) ListByOwner(ctx context.Context, owner string) ([]domain.Entry, error) {
	// @owner = '' disables the filter so one query serves both the per-user
	// and the all-users listing.
	const q = `
		SELECT id, owner, content, created_at
		FROM entries
		WHERE @owner = '' OR owner = @owner
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"owner": owner})
	if err != nil {
		return nil, fmt.Errorf("repo.EntryRepo.ListByOwner: %w", err)
	}
	defer rows.Close()

	entries := []domain.Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.EntryRepo.ListByOwner: scan: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.EntryRepo.ListByOwner: rows: %w", err)
	}

	return entries, nil
}

// UpdateContent overwrites the content of an entry and returns the updated record.
func (r *pgEntryRepo) UpdateContent(ctx context.Context, id uuid.UUID, content string) (domain.Entry, error) {
	const q = `
		UPDATE entries
		SET content = @content
		WHERE id = @id
		RETURNING id, owner, content, created_at`

	args := pgx.NamedArgs{
		"id":      id,
		"content": content,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanEntry(row)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("repo.EntryRepo.UpdateContent: %w", err)
	}
	return result, nil
}

// Delete removes an entry by primary key.
func (r *pgEntryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM entries WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.EntryRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.EntryRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanEntry to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanEntry maps a single database row into a domain.Entry.
func scanEntry(s scanner) (domain.Entry, error) {
	var (
		e  domain.Entry
		id pgtype.UUID
	)

	err := s.Scan(&id, &e.Owner, &e.Content, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Entry{}, domain.ErrNotFound
		}
		return domain.Entry{}, err
	}

	e.ID = uuid.UUID(id.Bytes)
	return e, nil
}
