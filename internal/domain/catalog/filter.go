package catalog

import (
	"sort"
	"strings"

	"repo-catalog/internal/domain/repo"
)

// Filter is the user-controlled view state
type Filter struct {
	SearchQuery    string
	ShowOnlyActive bool
}

// DefaultFilter shows only repositories with open issues and no search
func DefaultFilter() Filter {
	return Filter{ShowOnlyActive: true}
}

// Query returns the trimmed, lower-cased search query
func (f Filter) Query() string {
	return strings.ToLower(strings.TrimSpace(f.SearchQuery))
}

// Matches reports whether r passes both the activity and the search predicate
func (f Filter) Matches(r *repo.Repository) bool {
	if f.ShowOnlyActive && !r.HasActivity() {
		return false
	}

	q := f.Query()
	if q == "" {
		return true
	}

	for _, text := range r.SearchText() {
		if strings.Contains(text, q) {
			return true
		}
	}
	return false
}

// Apply returns the repositories that match f, most open issues first.
// Ties keep their input order. The input slice is not modified.
func Apply(repositories []*repo.Repository, f Filter) []*repo.Repository {
	filtered := make([]*repo.Repository, 0, len(repositories))
	for _, r := range repositories {
		if f.Matches(r) {
			filtered = append(filtered, r)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].OpenIssuesCount() > filtered[j].OpenIssuesCount()
	})

	return filtered
}
