package challenges

import (
	"oasis/middleware"
	"oasis/models"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to challenges
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {

	team := r.Group("/challenges")
	team.Use(middleware.AuthMiddleware())
	{
		team.GET("", ListChallenges)
		team.GET("/:id", GetChallengeForTeam)
	}

	admin := r.Group("/admin/challenges")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("", ListAllChallenges)
		admin.POST("", CreateChallenge)
		admin.GET("/:id", GetChallenge)
		admin.PUT("/:id", UpdateChallenge)
		admin.DELETE("/:id", DeleteChallenge)
		admin.GET("/:id/submissions", GetChallengeSubmissions)

		admin.POST("/:id/algorithmic", AttachAlgorithmicProblem)
		admin.PUT("/:id/algorithmic", UpdateAlgorithmicProblem)
		admin.DELETE("/:id/algorithmic", DeleteAlgorithmicProblem)

		admin.POST("/:id/buildathon", AttachBuildathonProblem)
		admin.PUT("/:id/buildathon", UpdateBuildathonProblem)
		admin.DELETE("/:id/buildathon", DeleteBuildathonProblem)

		admin.GET("/:id/flags", ListFlags)
		admin.POST("/:id/flags", AddFlag)
	}

	flags := r.Group("/admin/flags")
	flags.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RoleAdmin))
	{
		flags.GET("", ListAllFlags)
		flags.PUT("/:flagID", UpdateFlag)
		flags.DELETE("/:flagID", DeleteFlag)
	}
}
