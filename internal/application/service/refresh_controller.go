package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"repo-catalog/internal/application/dto"
	"repo-catalog/internal/domain/catalog"
	"repo-catalog/internal/domain/events"
	"repo-catalog/internal/domain/repo"

	"go.uber.org/zap"
)

// ProgressObserver is told about every progress change of the current fetch
type ProgressObserver interface {
	PublishProgress(p repo.Progress)
}

// RefreshController owns the repository list and decides, per load, whether
// the cache or the remote API serves it.
//
// Every load takes a generation number. A newer generation cancels the fetch
// of an older one, and whatever the older fetch produces afterwards is dropped.
type RefreshController struct {
	cache      *CacheService
	fetcher    repo.Fetcher
	dispatcher *events.Dispatcher
	org        string
	now        func() time.Time
	logger     *zap.Logger

	mu         sync.Mutex
	state      catalog.State
	generation uint64
	cancel     context.CancelFunc
	observer   ProgressObserver
}

type loadMode struct {
	useCache bool
	preempt  bool
	reset    bool
}

var (
	initialLoad  = loadMode{useCache: true}
	forceRefresh = loadMode{preempt: true}
	reloadAll    = loadMode{preempt: true, reset: true}
)

// NewRefreshController creates the controller and subscribes it to
// cache.cleared so a cleared cache is followed by a full reload. The reload
// goes to the network: whatever reached the store after the clear came from a
// fetch it supersedes.
func NewRefreshController(cacheService *CacheService, fetcher repo.Fetcher, dispatcher *events.Dispatcher, org string, logger *zap.Logger) *RefreshController {
	c := &RefreshController{
		cache:      cacheService,
		fetcher:    fetcher,
		dispatcher: dispatcher,
		org:        org,
		now:        time.Now,
		logger:     logger.With(zap.String("component", "refresh"), zap.String("org", org)),
		state:      catalog.NewState(),
	}

	if dispatcher != nil {
		dispatcher.Register(repo.EventTypeCacheCleared, c.handleCacheCleared)
	}

	return c
}

// WithClock replaces the wall clock used for cache status, for tests
func (c *RefreshController) WithClock(now func() time.Time) *RefreshController {
	c.now = now
	return c
}

// SetObserver installs the progress observer. Passing nil removes it.
func (c *RefreshController) SetObserver(observer ProgressObserver) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observer = observer
}

// InitialLoad serves a valid cache record when there is one and fetches
// otherwise. It does nothing while another load is in flight.
func (c *RefreshController) InitialLoad(ctx context.Context) error {
	return c.load(ctx, initialLoad)
}

// ForceRefresh skips the cache and fetches. A load already in flight is
// cancelled and its outcome discarded.
func (c *RefreshController) ForceRefresh(ctx context.Context) error {
	return c.load(ctx, forceRefresh)
}

// Snapshot returns a copy of the current state
func (c *RefreshController) Snapshot() catalog.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// View applies filter to the current list and derives counts, stats and cache status
func (c *RefreshController) View(filter catalog.Filter) *dto.RepositoryListResponse {
	state := c.Snapshot()
	filtered := catalog.Apply(state.Repositories, filter)
	counts := catalog.Count(state.Repositories, filtered)
	stats := catalog.Summarize(filtered)

	resp := &dto.RepositoryListResponse{
		Status:       state.Status.String(),
		Repositories: toRepositoryResponses(filtered),
		Filter: dto.FilterResponse{
			Search:     filter.SearchQuery,
			ActiveOnly: filter.ShowOnlyActive,
		},
		Counts: dto.CountsResponse{
			Total:        counts.Total,
			Filtered:     counts.Filtered,
			WithActivity: counts.WithActivity,
		},
		Stats: dto.StatsResponse{
			TotalIssues:     stats.TotalIssues,
			TotalStars:      stats.TotalStars,
			TotalForks:      stats.TotalForks,
			ReposWithIssues: stats.ReposWithIssues,
		},
		Progress: dto.ProgressResponse{
			CurrentPage: state.Progress.CurrentPage,
			Total:       state.Progress.Total,
			Percentage:  state.Progress.Percentage,
		},
		FromCache: state.FromCache,
		Error:     state.Error,
	}

	if status := catalog.StatusOf(state.LastUpdate, state.CacheExpiry, c.now()); status != nil {
		resp.CacheStatus = &dto.CacheStatusResponse{
			MinutesSinceLoad:   status.MinutesSinceLoad,
			MinutesUntilExpiry: status.MinutesUntilExpiry,
			IsExpired:          status.IsExpired,
		}
	}
	if !state.LastUpdate.IsZero() {
		resp.LastUpdate = state.LastUpdate.UTC().Format(time.RFC3339)
	}
	if !state.CacheExpiry.IsZero() {
		resp.CacheExpiry = state.CacheExpiry.UTC().Format(time.RFC3339)
	}

	return resp
}

func (c *RefreshController) handleCacheCleared(ctx context.Context, _ events.DomainEvent) error {
	return c.load(ctx, reloadAll)
}

func (c *RefreshController) load(ctx context.Context, mode loadMode) error {
	c.mu.Lock()
	if c.state.Status == catalog.StatusLoading && !mode.preempt {
		c.mu.Unlock()
		c.logger.Debug("load already in flight, ignoring")
		return nil
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.generation++
	gen := c.generation
	if mode.reset {
		c.state = catalog.NewState()
	}
	c.mu.Unlock()

	if mode.useCache {
		if record, ok := c.cache.Load(ctx); ok {
			c.mu.Lock()
			defer c.mu.Unlock()
			if gen != c.generation {
				return nil
			}
			c.state = c.state.Loaded(record.Repositories, true).WithCacheMetadata(record.Metadata())
			c.logger.Info("repositories served from cache",
				zap.Int("repositories", len(record.Repositories)),
				zap.Time("expires_at", record.ExpiresAt),
			)
			return nil
		}
	}

	return c.fetch(ctx, gen)
}

func (c *RefreshController) fetch(ctx context.Context, gen uint64) error {
	// The fetch outlives the caller's context; only a newer generation cancels it.
	fetchCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	defer cancel()

	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		return nil
	}
	c.cancel = cancel
	c.state = c.state.BeginLoading()
	observer := c.observer
	c.mu.Unlock()

	if observer != nil {
		observer.PublishProgress(repo.Progress{})
	}

	start := time.Now()
	repositories, err := c.fetcher.FetchAll(fetchCtx, func(p repo.Progress) {
		c.updateProgress(gen, p)
	})

	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		c.logger.Debug("discarding superseded fetch result", zap.Uint64("generation", gen))
		return nil
	}
	c.cancel = nil

	if err != nil {
		if errors.Is(err, context.Canceled) {
			err = repo.UnknownError(err)
		}
		domainErr := repo.Classify(err)
		c.state = c.state.Failed(repo.UserMessage(domainErr))
		c.mu.Unlock()

		c.logger.Error("failed to fetch repositories", zap.String("code", domainErr.Code), zap.Error(err))
		return domainErr
	}

	c.state = c.state.Loaded(repositories, false)
	pages := c.state.Progress.CurrentPage
	c.mu.Unlock()

	c.logger.Info("repositories fetched",
		zap.Int("repositories", len(repositories)),
		zap.Int("pages", pages),
		zap.Duration("took", time.Since(start)),
	)

	// Persisting a completed fetch must not depend on the caller still waiting.
	persistCtx := context.WithoutCancel(ctx)

	if !c.isCurrent(gen) {
		c.logger.Debug("skipping cache write for superseded fetch", zap.Uint64("generation", gen))
		return nil
	}

	if meta, saved := c.cache.Save(persistCtx, repositories); saved {
		c.mu.Lock()
		if gen == c.generation {
			c.state = c.state.WithCacheMetadata(meta)
		}
		c.mu.Unlock()
	}

	if c.dispatcher != nil {
		event := repo.NewRepositoriesFetchedEvent(c.org, len(repositories), pages)
		if err := c.dispatcher.Dispatch(persistCtx, event); err != nil {
			c.logger.Warn("repositories.fetched handlers failed", zap.Error(err))
		}
	}

	return nil
}

func (c *RefreshController) isCurrent(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return gen == c.generation
}

func (c *RefreshController) updateProgress(gen uint64, p repo.Progress) {
	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		return
	}
	c.state = c.state.WithProgress(p)
	observer := c.observer
	c.mu.Unlock()

	if observer != nil {
		observer.PublishProgress(p)
	}
}
