package v1

import (
	"github.com/gin-gonic/gin"

	"judge/database"
	"judge/handlers/attempts"
	"judge/handlers/auth"
	"judge/handlers/contests"
	"judge/handlers/problems"
	"judge/middleware"
	"judge/services"
)

// Register the endpoints for the v1 API
func Register(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// Add metrics middleware to all routes
	v1.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter(10000, 1500)
	v1.Use(middleware.RateLimiterMiddleware(rateLimiter))

	// Time out stale attempts on every request, before handlers run
	sweeper := services.NewSweeper(services.NewAttemptStore(database.DB))
	v1.Use(middleware.AttemptSweeperMiddleware(sweeper))

	RegisterPingRoutes(v1)
	auth.RegisterRoutes(v1)
	contests.RegisterRoutes(v1)
	problems.RegisterRoutes(v1)
	attempts.RegisterRoutes(v1)

	// Register metrics endpoint
	RegisterMetricsRoutes(v1)
}
