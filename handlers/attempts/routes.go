package attempts

import (
	"github.com/gin-gonic/gin"

	"judge/config"
	"judge/database"
	"judge/middleware"
	"judge/services"
)

var (
	fileStore *services.FileStore
	scorer    *services.Scorer
)

// RegisterRoutes registers all routes related to attempts
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	fileStore = &services.FileStore{
		SubmissionsDir: config.SubmissionsDir,
		SecretDir:      config.SecretDir,
	}
	scorer = services.NewScorer(services.NewAttemptStore(database.DB), fileStore)

	authed := r.Group("")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.POST("/parts/:part_id/attempts", StartAttempt)
		authed.GET("/problems/:id/attempts", ListMyAttempts)

		attempts := authed.Group("/attempts")
		{
			attempts.GET("/:id", GetAttempt)
			attempts.PUT("/:id/submit", SubmitAttempt)
			attempts.GET("/:id/input", DownloadInputFile)
			attempts.PUT("/:id/score", middleware.AdminMiddleware(), ScoreAttemptManually)
		}
	}
}
