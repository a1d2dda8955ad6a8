package main

import (
	"log"

	"oasis/config"
	"oasis/database"
	"oasis/middleware"
	v1 "oasis/routes/v1"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title OASIS Protocol API
// @version 1.0
// @description Backend for the OASIS coding competition: team accounts, two-phase challenges, flag validation, code execution and a live leaderboard.
// @BasePath /api/v1
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	config.Load()

	gin.SetMode(config.GinMode)

	database.InitDB()
	database.InitRedis()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.ClientUrl},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	v1.Register(r)

	// Feed the system gauges scraped by /metrics
	middleware.UpdateSystemMetrics()

	log.Printf("Server listening on :%s", config.Port)
	if err := r.Run(":" + config.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
