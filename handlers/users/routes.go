package users

import (
	"oasis/middleware"
	"oasis/models"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers admin-panel user management routes
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {

	admin := r.Group("/admin/users")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("", GetAllUsers)
		admin.GET("/:id", GetUser)
		admin.PUT("/:id/role", UpdateUserRole)
		admin.DELETE("/:id", DeleteUser)
	}
}
