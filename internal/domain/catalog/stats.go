package catalog

import (
	"time"

	"repo-catalog/internal/domain/repo"
)

// Counts summarises list sizes
type Counts struct {
	Total        int
	Filtered     int
	WithActivity int
}

// Stats aggregates the filtered list
type Stats struct {
	TotalIssues     int
	TotalStars      int
	TotalForks      int
	ReposWithIssues int
}

// CacheStatus describes the age of the data currently shown
type CacheStatus struct {
	MinutesSinceLoad   int
	MinutesUntilExpiry int
	IsExpired          bool
}

// Count computes list sizes. WithActivity is counted over the whole list.
func Count(all, filtered []*repo.Repository) Counts {
	withActivity := 0
	for _, r := range all {
		if r.HasActivity() {
			withActivity++
		}
	}

	return Counts{
		Total:        len(all),
		Filtered:     len(filtered),
		WithActivity: withActivity,
	}
}

// Summarize sums issues, stars and forks over the filtered list
func Summarize(filtered []*repo.Repository) Stats {
	var s Stats
	for _, r := range filtered {
		s.TotalIssues += r.OpenIssuesCount()
		s.TotalStars += r.StargazersCount()
		s.TotalForks += r.ForksCount()
		if r.HasActivity() {
			s.ReposWithIssues++
		}
	}
	return s
}

// StatusOf derives the cache status at now. It returns nil when no load
// timestamp exists. Minutes are whole minutes rounded down; the time left
// never goes below zero.
func StatusOf(lastUpdate, expiresAt, now time.Time) *CacheStatus {
	if lastUpdate.IsZero() {
		return nil
	}

	since := int(now.Sub(lastUpdate) / time.Minute)
	if since < 0 {
		since = 0
	}

	until := int(expiresAt.Sub(now) / time.Minute)
	if until < 0 {
		until = 0
	}

	return &CacheStatus{
		MinutesSinceLoad:   since,
		MinutesUntilExpiry: until,
		IsExpired:          now.After(expiresAt),
	}
}
