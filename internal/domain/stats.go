package domain

// UserStats is the response shape of the per-user stats endpoint.
// RecentEntries holds the five newest entries for a dashboard preview.
type UserStats struct {
	TotalEntries  int     `json:"totalEntries"`
	ActiveDays    int     `json:"activeDays"`
	RecentEntries []Entry `json:"recentEntries"`
}
