package repo

import (
	"context"
)

// Progress describes how far a paginated fetch has got
type Progress struct {
	CurrentPage int
	Total       int
	Percentage  float64
}

// ProgressFunc receives progress after every page. It may be nil.
type ProgressFunc func(Progress)

// Fetcher is a domain service interface for listing every repository of the
// organization. Implementation lives in the infrastructure layer.
type Fetcher interface {
	// FetchAll pages through the remote collection and returns the merged list.
	// Failures are *DomainError with a NETWORK_ERROR, SERVER_ERROR or
	// UNKNOWN_ERROR code; context cancellation is returned as is.
	FetchAll(ctx context.Context, onProgress ProgressFunc) ([]*Repository, error)
}
