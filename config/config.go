package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	// Server
	ServerPort string
	GinMode    string

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
	DefaultPassword string

	// File storage
	SubmissionsDir string
	SecretDir      string

	// Scoreboard cache time to live
	ScoreboardTTL time.Duration
)

// Init loads the environment (optionally from a .env file) into the package variables
func Init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ServerPort = getEnv("SERVER_PORT", "8080")
	GinMode = getEnv("GIN_MODE", "debug")

	PostgresHost = getEnv("POSTGRES_HOST", "localhost")
	PostgresPort = getEnv("POSTGRES_PORT", "5432")
	PostgresUser = getEnv("POSTGRES_USER", "judge")
	PostgresPassword = getEnv("POSTGRES_PASSWORD", "judge")
	PostgresDB = getEnv("POSTGRES_DB", "judge")

	RedisAddr = getEnv("REDIS_ADDR", "localhost:6379")
	RedisPassword = getEnv("REDIS_PASSWORD", "")

	JWTSecret = getEnv("JWT_SECRET", "change-me-in-production")
	DefaultPassword = getEnv("DEFAULT_ADMIN_PASSWORD", "")

	SubmissionsDir = getEnv("SUBMISSIONS_DIR", "./data/submissions")
	SecretDir = getEnv("SECRET_DIR", "./data/secret")

	ScoreboardTTL = time.Duration(getEnvInt("SCOREBOARD_TTL_SECONDS", 30)) * time.Second
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, fallback)
		return fallback
	}
	return parsed
}
