// Package stats derives calendar-day aggregates from entry lists: per-day
// counts for the heatmap, the distinct-active-day count, and the current
// posting streak. All functions are pure; callers inject "today" where the
// result depends on the current date.
//
// Day bucketing is done in UTC. The web client historically bucketed in
// whatever zone the browser ran in; pinning UTC makes the server's buckets
// deterministic and is the documented deviation.
package stats

import (
	"time"

	"github.com/rprasanth/content-journal/backend/internal/domain"
)

// DayFormat is the calendar-day key layout used by all aggregates.
const DayFormat = "2006-01-02"

// DayKey truncates t to its UTC calendar-day key.
func DayKey(t time.Time) string {
	return t.UTC().Format(DayFormat)
}

// DailyCounts groups entries by UTC calendar day of CreatedAt and returns
// the number of entries per day.
func DailyCounts(entries []domain.Entry) map[string]int {
	counts := make(map[string]int, len(entries))
	for _, e := range entries {
		counts[DayKey(e.CreatedAt)]++
	}
	return counts
}

// ActiveDays returns the number of distinct days with at least one entry.
// The count is not window-limited: every retrieved entry participates.
func ActiveDays(entries []domain.Entry) int {
	return len(DailyCounts(entries))
}

// CurrentStreak walks backward from today one day at a time, up to three
// months back, counting consecutive days with at least one entry.
//
// The break condition is deliberately asymmetric: a day without entries only
// ends the scan once the streak has advanced past zero. A user who posted
// yesterday but not yet today therefore still shows a positive streak
// counting back from yesterday, while a user with no entries anywhere in the
// window gets 0. This matches the behavior users have relied on since the
// heatmap shipped and must not be "fixed" to break on the first gap.
func CurrentStreak(entries []domain.Entry, today time.Time) int {
	counts := DailyCounts(entries)

	streak := 0
	day := today.UTC()
	cutoff := today.UTC().AddDate(0, -3, 0)

	for !day.Before(cutoff) {
		if _, ok := counts[DayKey(day)]; ok {
			streak++
		} else if streak > 0 {
			break
		}
		day = day.AddDate(0, 0, -1)
	}

	return streak
}

// EntriesOnDate filters entries down to those created on the given
// "2006-01-02" day key, preserving the input order (newest-first when the
// input comes from the repo).
func EntriesOnDate(entries []domain.Entry, date string) []domain.Entry {
	matched := []domain.Entry{}
	for _, e := range entries {
		if DayKey(e.CreatedAt) == date {
			matched = append(matched, e)
		}
	}
	return matched
}
