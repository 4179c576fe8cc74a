package main

import (
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"judge/config"
	"judge/database"
	_ "judge/docs"
	"judge/middleware"
	"judge/realtime"
	v1 "judge/routes/v1"
)

// @title Judge API
// @version 1.0
// @description Programming contest judging API: contests, problems, attempts and scoring.
// @BasePath /api/v1
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	config.Init()

	database.InitDB()
	database.InitRedis()

	gin.SetMode(config.GinMode)
	r := gin.Default()

	v1.Register(r)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	middleware.UpdateSystemMetrics()
	go realtime.HandleUpdates()

	log.Println("Starting server on :" + config.ServerPort)
	if err := r.Run(":" + config.ServerPort); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
