package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"repo-catalog/internal/application/dto"
	"repo-catalog/internal/domain/cache"
	"repo-catalog/internal/domain/events"
	"repo-catalog/internal/domain/repo"

	"go.uber.org/zap"
)

// CacheService reads and writes the single expiring cache record.
// Storage failures never reach the caller of Save or Load: they are logged
// and reported as "not saved" / "no cache".
type CacheService struct {
	store      cache.Store
	key        string
	dispatcher *events.Dispatcher
	now        func() time.Time
	logger     *zap.Logger
}

// NewCacheService creates a new cache service
func NewCacheService(store cache.Store, key string, dispatcher *events.Dispatcher, logger *zap.Logger) *CacheService {
	if key == "" {
		key = cache.DefaultKey
	}

	return &CacheService{
		store:      store,
		key:        key,
		dispatcher: dispatcher,
		now:        time.Now,
		logger:     logger.With(zap.String("component", "cache"), zap.String("key", key)),
	}
}

// WithClock replaces the wall clock, for tests
func (s *CacheService) WithClock(now func() time.Time) *CacheService {
	s.now = now
	return s
}

// Save writes repositories as a fresh record. It returns the written record's
// metadata and whether the write succeeded.
func (s *CacheService) Save(ctx context.Context, repositories []*repo.Repository) (cache.Metadata, bool) {
	record := cache.NewRecord(repositories, s.now())

	payload, err := json.Marshal(toCacheRecordDTO(record))
	if err != nil {
		s.logger.Warn("failed to encode cache record", zap.Error(err))
		return cache.Metadata{}, false
	}

	if err := s.store.Set(ctx, s.key, payload); err != nil {
		s.logger.Warn("failed to save cache record", zap.Error(err))
		return cache.Metadata{}, false
	}

	s.logger.Debug("cache record saved",
		zap.Int("repositories", len(repositories)),
		zap.Time("expires_at", record.ExpiresAt),
	)

	return record.Metadata(), true
}

// Load returns the cached record when one exists, decodes, carries the current
// version and has not expired. Expired, outdated and undecodable records are
// removed from storage.
func (s *CacheService) Load(ctx context.Context) (*cache.Record, bool) {
	payload, found, err := s.store.Get(ctx, s.key)
	if err != nil {
		s.logger.Warn("failed to read cache record", zap.Error(err))
		return nil, false
	}
	if !found {
		return nil, false
	}

	var raw dto.CacheRecord
	if err := json.Unmarshal(payload, &raw); err != nil {
		s.logger.Warn("discarding undecodable cache record", zap.Error(err))
		s.remove(ctx)
		return nil, false
	}

	record, skipped := fromCacheRecordDTO(&raw)
	if skipped > 0 {
		s.logger.Warn("cache record has unusable entries", zap.Int("skipped", skipped))
	}

	if !record.IsCurrentVersion() {
		s.logger.Info("discarding cache record with outdated version",
			zap.String("version", record.Version),
			zap.String("want", cache.Version),
		)
		s.remove(ctx)
		return nil, false
	}

	if record.IsExpired(s.now()) {
		s.logger.Info("cache record expired", zap.Time("expires_at", record.ExpiresAt))
		s.remove(ctx)
		return nil, false
	}

	return record, true
}

// Clear deletes the record and publishes cache.cleared. Errors returned by
// the event handlers are passed back to the caller.
func (s *CacheService) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	s.logger.Info("cache cleared")

	if s.dispatcher == nil {
		return nil
	}

	return s.dispatcher.Dispatch(ctx, repo.NewCacheClearedEvent(s.key, s.now()))
}

func (s *CacheService) remove(ctx context.Context) {
	if err := s.store.Delete(ctx, s.key); err != nil {
		s.logger.Warn("failed to remove cache record", zap.Error(err))
	}
}
