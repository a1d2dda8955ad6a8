package auth

import (
	"oasis/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to admin-panel authentication
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {

	auth := r.Group("/auth")
	{
		auth.POST("/login", Login)
		auth.POST("/register", RegisterUser)
		auth.GET("/check", middleware.AuthMiddleware(), CheckAuth)
	}
}
