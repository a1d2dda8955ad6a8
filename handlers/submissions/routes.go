package submissions

import (
	"oasis/middleware"
	"oasis/models"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to submissions
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	// Flag brute forcing is throttled per-team inside the service, this
	// limiter only caps raw request volume per client
	executeRateLimiter := middleware.NewRateLimiter(30, 10)

	team := r.Group("/submissions")
	team.Use(middleware.AuthMiddleware())
	{
		team.POST("", CreateSubmission)
		team.POST("/flag", SubmitFlag)
		team.GET("/:id", GetSubmission)
	}

	execute := r.Group("/execute")
	execute.Use(middleware.AuthMiddleware(), middleware.RateLimiterMiddleware(executeRateLimiter))
	{
		execute.POST("", ExecuteCode)
	}

	admin := r.Group("/admin/submissions")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("", GetAllSubmissions)
		admin.POST("/:id/evaluate", ReevaluateSubmission)
	}
}
