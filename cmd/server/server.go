package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	_ "repo-catalog/docs"
	"repo-catalog/internal/config"
	"repo-catalog/internal/middleware"
	"repo-catalog/internal/presentation/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const progressStreamPath = "/api/v1/repos/progress/stream"

func newRouter(
	cfg *config.Config,
	l *zap.Logger,
	healthHandler *handlers.HealthHandler,
	repositoryHandler *handlers.RepositoryHandler,
	broadcaster *handlers.ProgressBroadcaster,
) *gin.Engine {
	// Set Gin mode
	if os.Getenv("GIN_MODE") == "" && !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Request ID must come first
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(l))
	router.Use(gin.Recovery())

	corsConfig := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.Server.CorsAllowedOrigins) == 1 && cfg.Server.CorsAllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.Server.CorsAllowedOrigins
	}
	router.Use(cors.New(corsConfig))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthHandler.Health)

		repos := v1.Group("/repos")
		{
			repos.GET("", repositoryHandler.ListRepositories)
			repos.POST("/refresh", repositoryHandler.RefreshRepositories)
			repos.GET("/progress/stream", broadcaster.StreamProgress)
		}

		v1.DELETE("/cache", repositoryHandler.ClearCache)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

func runServer(
	lc fx.Lifecycle,
	cfg *config.Config,
	l *zap.Logger,
	healthHandler *handlers.HealthHandler,
	repositoryHandler *handlers.RepositoryHandler,
	broadcaster *handlers.ProgressBroadcaster,
) {
	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      middleware.NoWriteDeadline(newRouter(cfg, l, healthHandler, repositoryHandler, broadcaster), progressStreamPath),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				l.Info("starting API server", zap.String("addr", server.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					l.Error("error starting server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			l.Info("shutdown signal received")
			return server.Shutdown(ctx)
		},
	})
}
