package github

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net"
	"net/url"

	"repo-catalog/internal/domain/repo"
	"repo-catalog/internal/github"

	"go.uber.org/zap"
)

const (
	defaultMaxPages         = 50
	defaultProgressEstimate = 300
)

// PaginationFetcher implements the domain repo.Fetcher interface by paging
// through the organization listing until a short page comes back.
type PaginationFetcher struct {
	client           *github.Client
	org              string
	pageSize         int
	maxPages         int
	progressEstimate int
	logger           *zap.Logger
}

// NewPaginationFetcher creates a fetcher for org. maxPages caps the number of
// requests; progressEstimate is the item count treated as 100% progress.
func NewPaginationFetcher(client *github.Client, org string, maxPages, progressEstimate int, logger *zap.Logger) *PaginationFetcher {
	if maxPages < 1 {
		maxPages = defaultMaxPages
	}
	if progressEstimate < 1 {
		progressEstimate = defaultProgressEstimate
	}

	return &PaginationFetcher{
		client:           client,
		org:              org,
		pageSize:         github.MaxPerPage,
		maxPages:         maxPages,
		progressEstimate: progressEstimate,
		logger:           logger.With(zap.String("component", "fetcher"), zap.String("org", org)),
	}
}

// FetchAll fetches every page and converts the result to domain repositories
func (f *PaginationFetcher) FetchAll(ctx context.Context, onProgress repo.ProgressFunc) ([]*repo.Repository, error) {
	var accumulated []*repo.Repository

	for page := 1; ; page++ {
		if page > f.maxPages {
			f.logger.Warn("page cap reached, returning partial list",
				zap.Int("max_pages", f.maxPages),
				zap.Int("repositories", len(accumulated)),
			)
			break
		}

		items, err := f.client.ListOrgRepositories(ctx, f.org, page, f.pageSize)
		if err != nil {
			return nil, f.classify(ctx, page, err)
		}

		for _, item := range items {
			r, err := toDomain(item)
			if err != nil {
				f.logger.Warn("skipping unusable repository entry",
					zap.Int("page", page),
					zap.Int64("id", item.ID),
					zap.Error(err),
				)
				continue
			}
			accumulated = append(accumulated, r)
		}

		f.logger.Debug("fetched page",
			zap.Int("page", page),
			zap.Int("items", len(items)),
			zap.Int("accumulated", len(accumulated)),
		)

		if onProgress != nil {
			onProgress(repo.Progress{
				CurrentPage: page,
				Total:       len(accumulated),
				Percentage:  f.percentage(len(accumulated)),
			})
		}

		if len(items) < f.pageSize {
			break
		}
	}

	return accumulated, nil
}

// percentage is min(accumulated/estimate, 1) * 100, rounded to one decimal
func (f *PaginationFetcher) percentage(accumulated int) float64 {
	ratio := math.Min(float64(accumulated)/float64(f.progressEstimate), 1)
	return math.Round(ratio*1000) / 10
}

// classify maps client failures onto the domain error taxonomy
func (f *PaginationFetcher) classify(ctx context.Context, page int, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	var httpErr *github.HTTPError
	if errors.As(err, &httpErr) {
		f.logger.Warn("server rejected page request",
			zap.Int("page", page),
			zap.Int("status", httpErr.StatusCode),
		)
		return repo.ServerError(httpErr.StatusCode, httpErr.StatusText)
	}

	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) {
		f.logger.Warn("page request did not reach the server", zap.Int("page", page), zap.Error(err))
		return repo.NetworkError(err)
	}

	return repo.UnknownError(fmt.Errorf("page %d: %w", page, err))
}

// toDomain converts a GitHub API repository to a domain repository
func toDomain(item github.Repository) (*repo.Repository, error) {
	attrs := repo.Attributes{
		ID:              item.ID,
		Name:            item.Name,
		FullName:        item.FullName,
		HTMLURL:         item.HTMLURL,
		Topics:          item.Topics,
		OpenIssuesCount: item.OpenIssuesCount,
		StargazersCount: item.StargazersCount,
		ForksCount:      item.ForksCount,
		Archived:        item.Archived,
		UpdatedAt:       item.UpdatedAt,
	}
	if item.Description != nil {
		attrs.Description = *item.Description
	}
	if item.Language != nil {
		attrs.Language = *item.Language
	}

	return repo.NewRepository(attrs)
}
