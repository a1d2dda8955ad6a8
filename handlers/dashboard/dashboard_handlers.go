package dashboard

import (
	"net/http"
	"strconv"

	"oasis/services"

	"github.com/gin-gonic/gin"
)

// GetLeaderboard returns the public ranking
// @Summary Get the leaderboard
// @Description Teams ranked by points, then completions, then earliest last submission
// @Tags Dashboard
// @Produce json
// @Param limit query int false "Maximum number of rows" default(50)
// @Success 200 {array} models.LeaderboardEntry
// @Failure 500 {object} map[string]string
// @Router /leaderboard [get]
func GetLeaderboard(c *gin.Context) {
	limit := defaultPublicLeaderboardLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondWithError(c, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}
	if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}

	entries, err := services.GetLeaderboard(c.Request.Context(), limit)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to fetch leaderboard")
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GetDashboardStats returns platform-wide counters for the admin panel
// @Summary Get dashboard statistics
// @Description Team, challenge and submission counters plus top teams and recent activity
// @Tags Dashboard
// @Produce json
// @Success 200 {object} services.DashboardStats
// @Failure 401 {object} map[string]string
// @Router /admin/dashboard [get]
// @Security Bearer
func GetDashboardStats(c *gin.Context) {
	stats, err := services.GetDashboardStats(c.Request.Context())
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to fetch dashboard stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetAllTeamProgress returns every team's progress dossier (admin view)
// @Summary Get all team progress
// @Description Per-team aggregates with per-challenge snapshots, best teams first
// @Tags Dashboard
// @Produce json
// @Success 200 {array} services.TeamProgress
// @Failure 401 {object} map[string]string
// @Router /admin/progress [get]
// @Security Bearer
func GetAllTeamProgress(c *gin.Context) {
	progress, err := services.GetAllTeamProgress()
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to fetch progress")
		return
	}
	c.JSON(http.StatusOK, progress)
}
