package main

import (
	"context"
	"fmt"
	"time"

	"repo-catalog/internal/application/service"
	"repo-catalog/internal/config"
	"repo-catalog/internal/database"
	"repo-catalog/internal/domain/cache"
	"repo-catalog/internal/domain/events"
	"repo-catalog/internal/domain/repo"
	"repo-catalog/internal/github"
	infraGitHub "repo-catalog/internal/infrastructure/github"
	"repo-catalog/internal/infrastructure/persistence"
	"repo-catalog/internal/logger"
	"repo-catalog/internal/presentation/handlers"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// @title Repo Catalog API
// @version 1.0
// @description Filterable catalog of an organization's GitHub repositories with an expiring cache

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			logger.New,
			events.NewDispatcher,
			newDatabase,
			newCacheStore,
			newGitHubClient,
			newFetcher,
			newCacheService,
			newRefreshController,
			handlers.NewProgressBroadcaster,
			handlers.NewRepositoryHandler,
			newHealthHandler,
		),
		fx.Decorate(func(l *zap.Logger) *zap.Logger {
			return l.With(zap.String("service", "repo-catalog"))
		}),
		fx.Invoke(
			watchProgress,
			startInitialLoad,
			runServer,
		),
		fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{
				Logger: l,
			}
		}),
	).Run()
}

// newDatabase connects only when the cache lives in Postgres; otherwise it returns nil
func newDatabase(lc fx.Lifecycle, cfg *config.Config, l *zap.Logger) (*database.DB, error) {
	if cfg.Cache.Driver != config.CacheDriverPostgres {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.NewConnection(ctx, &cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			l.Info("closing database connection")
			return db.Close()
		},
	})

	return db, nil
}

func newCacheStore(cfg *config.Config, db *database.DB, l *zap.Logger) (cache.Store, error) {
	l.Info("using cache driver", zap.String("driver", cfg.Cache.Driver))

	switch cfg.Cache.Driver {
	case config.CacheDriverPostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return persistence.NewPostgresStore(ctx, db)
	case config.CacheDriverMemory:
		return persistence.NewMemoryStore(), nil
	default:
		return persistence.NewFileStore(cfg.Cache.Dir)
	}
}

func newGitHubClient(cfg *config.Config) *github.Client {
	return github.NewClient(cfg.GitHub.APIURL, cfg.GitHub.UserAgent, cfg.GitHub.Timeout)
}

func newFetcher(client *github.Client, cfg *config.Config, l *zap.Logger) repo.Fetcher {
	return infraGitHub.NewPaginationFetcher(client, cfg.GitHub.Org, cfg.GitHub.MaxPages, cfg.GitHub.ProgressEstimate, l)
}

func newCacheService(store cache.Store, cfg *config.Config, dispatcher *events.Dispatcher, l *zap.Logger) *service.CacheService {
	return service.NewCacheService(store, cfg.Cache.Key, dispatcher, l)
}

func newRefreshController(cacheService *service.CacheService, fetcher repo.Fetcher, dispatcher *events.Dispatcher, cfg *config.Config, l *zap.Logger) *service.RefreshController {
	return service.NewRefreshController(cacheService, fetcher, dispatcher, cfg.GitHub.Org, l)
}

func newHealthHandler(controller *service.RefreshController, db *database.DB) *handlers.HealthHandler {
	if db == nil {
		return handlers.NewHealthHandler(controller, nil)
	}
	return handlers.NewHealthHandler(controller, db)
}

func watchProgress(controller *service.RefreshController, broadcaster *handlers.ProgressBroadcaster) {
	controller.SetObserver(broadcaster)
}

// startInitialLoad loads the list in the background as soon as the app starts
func startInitialLoad(lc fx.Lifecycle, controller *service.RefreshController, l *zap.Logger) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := controller.InitialLoad(ctx); err != nil {
					l.Warn("initial load failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}
