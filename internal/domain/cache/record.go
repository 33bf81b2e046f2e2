package cache

import (
	"time"

	"repo-catalog/internal/domain/repo"
)

const (
	// TTL is how long a cache record stays valid after it is written
	TTL = 60 * time.Minute

	// Version is the record layout the current code reads and writes.
	// Records carrying any other version are discarded.
	Version = "1.0"

	// DefaultKey is the single key the record is stored under
	DefaultKey = "azerothcore_repositories_cache"
)

// Record is the single named, versioned, time-boxed cache entry.
// ExpiresAt is always Timestamp + TTL for records built by NewRecord.
type Record struct {
	Repositories []*repo.Repository
	Timestamp    time.Time
	ExpiresAt    time.Time
	Version      string
}

// Metadata is the observable part of a record: when it was written and when it lapses
type Metadata struct {
	Timestamp time.Time
	ExpiresAt time.Time
}

// NewRecord stamps repositories with the current version and a fresh TTL window
func NewRecord(repositories []*repo.Repository, now time.Time) *Record {
	list := make([]*repo.Repository, len(repositories))
	copy(list, repositories)

	return &Record{
		Repositories: list,
		Timestamp:    now,
		ExpiresAt:    now.Add(TTL),
		Version:      Version,
	}
}

// IsExpired reports whether now is strictly past ExpiresAt
func (r *Record) IsExpired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

// IsCurrentVersion reports whether the record layout matches Version
func (r *Record) IsCurrentVersion() bool {
	return r.Version == Version
}

func (r *Record) Metadata() Metadata {
	return Metadata{Timestamp: r.Timestamp, ExpiresAt: r.ExpiresAt}
}
