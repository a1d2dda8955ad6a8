package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	// Server
	Port    string
	GinMode string

	// Postgres
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	// Redis
	RedisAddr     string
	RedisPassword string

	// Auth
	JWTSecret       string
	JWTExpireHours  string
	DefaultPassword string

	// Judge0 code execution service
	Judge0Endpoint string
	Judge0Token    string

	// Front-end origin for CORS
	ClientUrl string
)

// Load reads the .env file if present and populates the configuration from the environment
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	Port = getEnv("PORT", "8080")
	GinMode = getEnv("GIN_MODE", "debug")

	PostgresHost = getEnv("POSTGRES_HOST", "localhost")
	PostgresPort = getEnv("POSTGRES_PORT", "5432")
	PostgresUser = getEnv("POSTGRES_USER", "postgres")
	PostgresPassword = getEnv("POSTGRES_PASSWORD", "postgres")
	PostgresDB = getEnv("POSTGRES_DB", "oasis")

	RedisAddr = getEnv("REDIS_ADDR", "localhost:6379")
	RedisPassword = getEnv("REDIS_PASSWORD", "")

	JWTSecret = getEnv("JWT_SECRET", "change-me-in-production")
	JWTExpireHours = getEnv("JWT_EXPIRE_HOURS", "24")
	DefaultPassword = getEnv("DEFAULT_ADMIN_PASSWORD", "")

	Judge0Endpoint = getEnv("JUDGE0_ENDPOINT", "https://judge0-ce.p.rapidapi.com")
	Judge0Token = getEnv("JUDGE0_TOKEN", "")

	ClientUrl = getEnv("CLIENT_URL", "http://localhost:3000")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
