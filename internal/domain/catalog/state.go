package catalog

import (
	"time"

	"repo-catalog/internal/domain/cache"
	"repo-catalog/internal/domain/repo"
)

// State is the in-memory repository list together with its load, error and
// progress state. Transitions return a new State; the receiver is not changed.
type State struct {
	Status       Status
	Repositories []*repo.Repository
	Error        string
	Progress     repo.Progress
	FromCache    bool
	LastUpdate   time.Time
	CacheExpiry  time.Time
}

// NewState returns the idle, empty state
func NewState() State {
	return State{Status: StatusIdle}
}

// BeginLoading enters loading, clears the error and resets progress.
// The previous list stays visible until the fetch settles.
func (s State) BeginLoading() State {
	next := s.Clone()
	next.Status = StatusLoading
	next.Error = ""
	next.FromCache = false
	next.Progress = repo.Progress{}
	return next
}

// WithProgress records p unless it would move progress backwards
func (s State) WithProgress(p repo.Progress) State {
	next := s.Clone()
	if p.CurrentPage < next.Progress.CurrentPage || p.Total < next.Progress.Total {
		return next
	}
	next.Progress = p
	return next
}

// Loaded replaces the list and enters loaded
func (s State) Loaded(repositories []*repo.Repository, fromCache bool) State {
	next := s.Clone()
	next.Status = StatusLoaded
	next.Repositories = copyList(repositories)
	next.Error = ""
	next.FromCache = fromCache
	return next
}

// WithCacheMetadata records when the shown data was cached and when it lapses
func (s State) WithCacheMetadata(meta cache.Metadata) State {
	next := s.Clone()
	next.LastUpdate = meta.Timestamp
	next.CacheExpiry = meta.ExpiresAt
	return next
}

// Failed clears the list and enters error with a user-visible message
func (s State) Failed(message string) State {
	next := s.Clone()
	next.Status = StatusError
	next.Repositories = []*repo.Repository{}
	next.Error = message
	next.FromCache = false
	return next
}

// Clone returns a copy that shares no slice with s
func (s State) Clone() State {
	s.Repositories = copyList(s.Repositories)
	return s
}

func copyList(in []*repo.Repository) []*repo.Repository {
	out := make([]*repo.Repository, len(in))
	copy(out, in)
	return out
}
