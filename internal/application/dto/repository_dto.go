package dto

// RepositoryResponse represents repository data in API responses and in the
// cache record. Field names follow the GitHub REST API.
type RepositoryResponse struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	FullName        string   `json:"full_name"`
	Description     string   `json:"description"`
	HTMLURL         string   `json:"html_url"`
	Topics          []string `json:"topics"`
	Language        string   `json:"language"`
	OpenIssuesCount int      `json:"open_issues_count"`
	StargazersCount int      `json:"stargazers_count"`
	ForksCount      int      `json:"forks_count"`
	Archived        bool     `json:"archived"`
	UpdatedAt       string   `json:"updated_at,omitempty"`
}

// FilterResponse echoes the filter a list was computed with
type FilterResponse struct {
	Search     string `json:"search"`
	ActiveOnly bool   `json:"active_only"`
}

// CountsResponse holds list sizes
type CountsResponse struct {
	Total        int `json:"total"`
	Filtered     int `json:"filtered"`
	WithActivity int `json:"with_activity"`
}

// StatsResponse holds aggregates over the filtered list
type StatsResponse struct {
	TotalIssues     int `json:"total_issues"`
	TotalStars      int `json:"total_stars"`
	TotalForks      int `json:"total_forks"`
	ReposWithIssues int `json:"repos_with_issues"`
}

// CacheStatusResponse describes how old the shown data is
type CacheStatusResponse struct {
	MinutesSinceLoad   int  `json:"minutes_since_load"`
	MinutesUntilExpiry int  `json:"minutes_until_expiry"`
	IsExpired          bool `json:"is_expired"`
}

// ProgressResponse reports fetch progress
type ProgressResponse struct {
	CurrentPage int     `json:"current_page"`
	Total       int     `json:"total"`
	Percentage  float64 `json:"percentage"`
}

// RepositoryListResponse is the filtered view of the repository list
type RepositoryListResponse struct {
	Status       string                `json:"status"`
	Repositories []*RepositoryResponse `json:"repositories"`
	Filter       FilterResponse        `json:"filter"`
	Counts       CountsResponse        `json:"counts"`
	Stats        StatsResponse         `json:"stats"`
	CacheStatus  *CacheStatusResponse  `json:"cache_status,omitempty"`
	Progress     ProgressResponse      `json:"progress"`
	FromCache    bool                  `json:"from_cache"`
	LastUpdate   string                `json:"last_update,omitempty"`
	CacheExpiry  string                `json:"cache_expiry,omitempty"`
	Error        string                `json:"error,omitempty"`
}

// FetchCompletedResponse is streamed once a fetch has merged every page
type FetchCompletedResponse struct {
	Org          string `json:"org"`
	Repositories int    `json:"repositories"`
	Pages        int    `json:"pages"`
}
