package contests

import (
	"github.com/gin-gonic/gin"

	"judge/middleware"
)

// RegisterRoutes registers all routes related to contests
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	contests := r.Group("/contests")
	contests.Use(middleware.AuthMiddleware())
	{
		contests.GET("/", GetAllContests)
		contests.GET("/:id", GetContest)
		contests.GET("/:id/scoreboard", GetScoreboard)
		contests.GET("/:id/live", ContestWebSocket)

		admin := contests.Group("")
		admin.Use(middleware.AdminMiddleware())
		{
			admin.POST("/", CreateContest)
			admin.PUT("/:id", UpdateContest)
			admin.DELETE("/:id", DeleteContest)
			admin.POST("/:id/contestants/:user_id", AddContestant)
			admin.DELETE("/:id/contestants/:user_id", RemoveContestant)
			admin.GET("/:id/export", ExportContestAttemptsExcel)
		}
	}
}
