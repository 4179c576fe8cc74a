package problems

import (
	"github.com/gin-gonic/gin"

	"judge/middleware"
)

// RegisterRoutes registers all routes related to problems and clarifications
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	problems := r.Group("/problems")
	problems.Use(middleware.AuthMiddleware())
	{
		problems.GET("/:id", GetProblem)
		problems.GET("/:id/statement", DownloadStatement)
		problems.GET("/:id/sample-input", DownloadSampleInput)
		problems.GET("/:id/sample-output", DownloadSampleOutput)

		problems.GET("/:id/clarifications", GetClarifications)
		problems.POST("/:id/clarifications", CreateClarification)

		admin := problems.Group("")
		admin.Use(middleware.AdminMiddleware())
		{
			admin.POST("/", CreateProblem)
			admin.PUT("/:id", UpdateProblem)
			admin.DELETE("/:id", DeleteProblem)
			admin.POST("/:id/parts", CreatePart)
			admin.POST("/:id/files", UploadProblemFiles)
			admin.PUT("/clarifications/:clarification_id/answer", AnswerClarification)
		}
	}
}
