package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sakmpar/social-blog/internal/repositories"
)

// StatsHandler handles site stats HTTP requests
type StatsHandler struct {
	statsRepository repositories.StatsRepository
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(statsRepo repositories.StatsRepository) *StatsHandler {
	return &StatsHandler{statsRepository: statsRepo}
}

// RegisterStatsRoutes registers stats-related routes
func (h *StatsHandler) RegisterStatsRoutes(g *echo.Group) {
	g.GET("/stats", h.GetStats)
}

// GetStats returns site-wide post, user and engagement counters
func (h *StatsHandler) GetStats(c echo.Context) error {
	stats, err := h.statsRepository.GetBlogStats()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"stats":   stats,
	})
}
