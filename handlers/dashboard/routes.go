package dashboard

import (
	"oasis/middleware"
	"oasis/models"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to the leaderboard and admin dashboard
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	leaderboardRateLimiter := middleware.NewRateLimiter(120, 30)

	r.GET("/leaderboard", middleware.RateLimiterMiddleware(leaderboardRateLimiter), GetLeaderboard)
	r.GET("/ws/leaderboard", LeaderboardWebSocket)

	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/dashboard", GetDashboardStats)
		admin.GET("/progress", GetAllTeamProgress)
	}
}
