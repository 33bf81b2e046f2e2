package repo

import (
	"time"

	"repo-catalog/internal/domain/events"
)

// Event types
const (
	EventTypeRepositoriesFetched = "repositories.fetched"
	EventTypeCacheCleared        = "cache.cleared"
)

// RepositoriesFetchedEvent is raised after a complete fetch from the remote API
type RepositoriesFetchedEvent struct {
	events.BaseEvent
	Org             string
	RepositoryCount int
	Pages           int
}

// NewRepositoriesFetchedEvent creates a new RepositoriesFetchedEvent
func NewRepositoriesFetchedEvent(org string, count, pages int) *RepositoriesFetchedEvent {
	return &RepositoriesFetchedEvent{
		BaseEvent:       events.NewBaseEvent(EventTypeRepositoriesFetched, org),
		Org:             org,
		RepositoryCount: count,
		Pages:           pages,
	}
}

// CacheClearedEvent is raised when the cache record is removed on request
type CacheClearedEvent struct {
	events.BaseEvent
	Key string
}

// NewCacheClearedEvent creates a new CacheClearedEvent
func NewCacheClearedEvent(key string, at time.Time) *CacheClearedEvent {
	return &CacheClearedEvent{
		BaseEvent: events.NewBaseEventAt(EventTypeCacheCleared, key, at),
		Key:       key,
	}
}
