package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"repo-catalog/internal/application/service"
	"repo-catalog/internal/domain/catalog"
	"repo-catalog/internal/domain/repo"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RepositoryHandler handles repository list HTTP requests
type RepositoryHandler struct {
	controller   *service.RefreshController
	cacheService *service.CacheService
	logger       *zap.Logger
}

// NewRepositoryHandler creates a new repository handler
func NewRepositoryHandler(controller *service.RefreshController, cacheService *service.CacheService, logger *zap.Logger) *RepositoryHandler {
	return &RepositoryHandler{
		controller:   controller,
		cacheService: cacheService,
		logger:       logger.With(zap.String("component", "repository_handler")),
	}
}

// ListRepositories handles GET /repos
// @Summary List organization repositories
// @Description Returns the filtered repository list with counts, stats and cache status
// @Tags Repositories
// @Produce json
// @Param search query string false "Case-insensitive match on name, description and topics"
// @Param active query bool false "Only repositories with open issues" default(true)
// @Success 200 {object} dto.RepositoryListResponse
// @Failure 400 {object} ErrorResponse
// @Router /repos [get]
func (h *RepositoryHandler) ListRepositories(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.controller.View(filter))
}

// RefreshRepositories handles POST /repos/refresh
// @Summary Refresh repositories from GitHub
// @Description Skips the cache, fetches every page from GitHub and caches the result
// @Tags Repositories
// @Produce json
// @Param search query string false "Case-insensitive match on name, description and topics"
// @Param active query bool false "Only repositories with open issues" default(true)
// @Success 200 {object} dto.RepositoryListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /repos/refresh [post]
func (h *RepositoryHandler) RefreshRepositories(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}

	if err := h.controller.ForceRefresh(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   "refresh_failed",
			Message: repo.UserMessage(err),
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, h.controller.View(filter))
}

// ClearCache handles DELETE /cache
// @Summary Clear the cache
// @Description Removes the cache record and reloads the repository list from GitHub
// @Tags Cache
// @Produce json
// @Success 200 {object} dto.RepositoryListResponse
// @Failure 500 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /cache [delete]
func (h *RepositoryHandler) ClearCache(c *gin.Context) {
	if err := h.cacheService.Clear(c.Request.Context()); err != nil {
		var domainErr *repo.DomainError
		if errors.As(err, &domainErr) {
			c.JSON(http.StatusBadGateway, ErrorResponse{
				Error:   "reload_failed",
				Message: repo.UserMessage(domainErr),
				Details: err.Error(),
			})
			return
		}

		h.logger.Error("failed to clear cache", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "clear_failed",
			Message: "Failed to clear cache",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, h.controller.View(catalog.DefaultFilter()))
}

func parseFilter(c *gin.Context) (catalog.Filter, bool) {
	filter := catalog.DefaultFilter()
	filter.SearchQuery = c.Query("search")

	if activeStr := c.Query("active"); activeStr != "" {
		active, err := strconv.ParseBool(activeStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "invalid_filter",
				Message: "active must be a boolean",
				Details: err.Error(),
			})
			return filter, false
		}
		filter.ShowOnlyActive = active
	}

	return filter, true
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
