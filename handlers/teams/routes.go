package teams

import (
	"oasis/middleware"
	"oasis/models"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to teams
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {

	teams := r.Group("/teams")
	{
		teams.POST("/register", RegisterTeam)
		teams.POST("/login", LoginTeam)
	}

	me := r.Group("/teams/me")
	me.Use(middleware.AuthMiddleware())
	{
		me.GET("", GetOwnTeam)
		me.GET("/progress", GetOwnProgress)
		me.GET("/submissions", GetOwnSubmissions)
	}

	admin := r.Group("/admin/teams")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("", GetAllTeams)
		admin.GET("/:id", GetTeam)
		admin.PUT("/:id/active", SetTeamActive)
		admin.GET("/:id/submissions", GetTeamSubmissions)
		admin.GET("/:id/progress", GetTeamProgress)
	}
}
