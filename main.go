package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"foodhub/app"
	"foodhub/config"
)

// @title Foodhub API
// @version 1.0
// @description Food catalog service for the admin and customer panels.
// @BasePath /
func main() {
	cfg := config.LoadConfig()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.Default()
	cleanup, err := app.New(context.Background(), cfg, router, false)
	if err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
	defer cleanup()

	port := ":" + cfg.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", cfg.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
