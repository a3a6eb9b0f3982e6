// Package domain contains the core data types for the Content Journal application.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (repo, service, handler, stats).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entry is a single user-authored text record.
// Entries are immutable except for Content: Owner and CreatedAt are set once
// at creation and never change, and CreatedAt is the sole temporal key.
//
// JSON field names follow the HTTP contract the web client consumes
// ("user" and "content" on the wire, not "owner" and "text").
type Entry struct {
	ID        uuid.UUID `json:"id"`
	Owner     string    `json:"user"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
