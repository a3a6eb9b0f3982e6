package domain

import "time"

// ExportEntry is an Entry annotated with the derived size metrics included
// in password-gated exports. WordCount is the number of whitespace-separated
// tokens in Content; CharacterCount is the content length in runes.
type ExportEntry struct {
	Entry
	WordCount      int `json:"wordCount"`
	CharacterCount int `json:"characterCount"`
}

// ExportStats holds the derived statistics bundled with an export.
// DailyCounts maps "2006-01-02" UTC day keys to the number of entries
// created that day.
type ExportStats struct {
	TotalEntries  int            `json:"totalEntries"`
	ActiveDays    int            `json:"activeDays"`
	CurrentStreak int            `json:"currentStreak"`
	DailyCounts   map[string]int `json:"dailyCounts"`
}

// ExportBundle is the full downloadable payload for one user: every entry
// (annotated with size metrics) plus computed statistics.
type ExportBundle struct {
	User       string        `json:"user"`
	ExportedAt time.Time     `json:"exportedAt"`
	Stats      ExportStats   `json:"stats"`
	Entries    []ExportEntry `json:"entries"`
}

// ExportSummary sits alongside the per-user bundles in the all-users export.
// MostActiveUser is the first user in enumeration order reaching the
// maximum entry count.
type ExportSummary struct {
	TotalEntries   int    `json:"totalEntries"`
	MostActiveUser string `json:"mostActiveUser"`
}

// FullExport is the admin-gated payload covering every user in the closed
// set, keyed by user identifier.
type FullExport struct {
	Bundles map[string]ExportBundle `json:"bundles"`
	Summary ExportSummary           `json:"summary"`
}
