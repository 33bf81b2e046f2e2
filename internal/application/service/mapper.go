package service

import (
	"fmt"
	"time"

	"repo-catalog/internal/application/dto"
	"repo-catalog/internal/domain/cache"
	"repo-catalog/internal/domain/repo"
)

// toRepositoryResponse converts a domain repository to DTO
func toRepositoryResponse(r *repo.Repository) *dto.RepositoryResponse {
	attrs := r.Attributes()

	resp := &dto.RepositoryResponse{
		ID:              attrs.ID,
		Name:            attrs.Name,
		FullName:        attrs.FullName,
		Description:     attrs.Description,
		HTMLURL:         attrs.HTMLURL,
		Topics:          attrs.Topics,
		Language:        attrs.Language,
		OpenIssuesCount: attrs.OpenIssuesCount,
		StargazersCount: attrs.StargazersCount,
		ForksCount:      attrs.ForksCount,
		Archived:        attrs.Archived,
	}
	if !attrs.UpdatedAt.IsZero() {
		resp.UpdatedAt = attrs.UpdatedAt.UTC().Format(time.RFC3339)
	}

	return resp
}

// fromRepositoryResponse rebuilds a domain repository from its DTO
func fromRepositoryResponse(d *dto.RepositoryResponse) (*repo.Repository, error) {
	if d == nil {
		return nil, fmt.Errorf("nil repository entry")
	}

	var updatedAt time.Time
	if d.UpdatedAt != "" {
		parsed, err := time.Parse(time.RFC3339, d.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("invalid updated_at for %q: %w", d.Name, err)
		}
		updatedAt = parsed
	}

	return repo.NewRepository(repo.Attributes{
		ID:              d.ID,
		Name:            d.Name,
		FullName:        d.FullName,
		Description:     d.Description,
		HTMLURL:         d.HTMLURL,
		Topics:          d.Topics,
		Language:        d.Language,
		OpenIssuesCount: d.OpenIssuesCount,
		StargazersCount: d.StargazersCount,
		ForksCount:      d.ForksCount,
		Archived:        d.Archived,
		UpdatedAt:       updatedAt,
	})
}

func toRepositoryResponses(list []*repo.Repository) []*dto.RepositoryResponse {
	out := make([]*dto.RepositoryResponse, len(list))
	for i, r := range list {
		out[i] = toRepositoryResponse(r)
	}
	return out
}

func toCacheRecordDTO(record *cache.Record) *dto.CacheRecord {
	return &dto.CacheRecord{
		Repositories: toRepositoryResponses(record.Repositories),
		Timestamp:    record.Timestamp.UnixMilli(),
		ExpiresAt:    record.ExpiresAt.UnixMilli(),
		Version:      record.Version,
	}
}

// fromCacheRecordDTO rebuilds the record, leaving out entries that cannot be
// turned into repositories. It returns how many were left out.
func fromCacheRecordDTO(d *dto.CacheRecord) (*cache.Record, int) {
	list := make([]*repo.Repository, 0, len(d.Repositories))
	skipped := 0
	for _, item := range d.Repositories {
		r, err := fromRepositoryResponse(item)
		if err != nil {
			skipped++
			continue
		}
		list = append(list, r)
	}

	return &cache.Record{
		Repositories: list,
		Timestamp:    time.UnixMilli(d.Timestamp),
		ExpiresAt:    time.UnixMilli(d.ExpiresAt),
		Version:      d.Version,
	}, skipped
}
