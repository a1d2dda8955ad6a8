package v1

import (
	"oasis/handlers/auth"
	"oasis/handlers/challenges"
	"oasis/handlers/dashboard"
	"oasis/handlers/submissions"
	"oasis/handlers/teams"
	"oasis/handlers/users"
	"oasis/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Register the endpoints for the v1 API
func Register(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// Add metrics middleware to all routes
	v1.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter(10000, 1500) // 10k requests per minute, 1500 burst
	v1.Use(middleware.RateLimiterMiddleware(rateLimiter))

	RegisterPingRoutes(v1)
	auth.RegisterRoutes(v1)
	users.RegisterRoutes(v1)
	teams.RegisterRoutes(v1)
	challenges.RegisterRoutes(v1)
	submissions.RegisterRoutes(v1)
	dashboard.RegisterRoutes(v1)

	// Register metrics endpoint
	RegisterMetricsRoutes(v1)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
