package app

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"foodhub/config"
	"foodhub/controllers"
	"foodhub/libs"
	"foodhub/middleware"
	"foodhub/repositories"
	"foodhub/routes"
	"foodhub/services"
)

// New wires the food API. The returned cleanup closes the pool and cache.
func New(ctx context.Context, cfg *config.Config, router *gin.Engine, serverless bool) (func(), error) {
	db, err := config.ConnectDB(ctx, cfg, serverless)
	if err != nil {
		return nil, err
	}
	cache := config.ConnectRedis(ctx, cfg)

	images, uploadDir, err := imageStore(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	foodService := services.NewFoodService(repositories.NewFoodRepository(db), images, cache, cfg.MaxUploadSize)
	foodCtrl := controllers.NewFoodController(foodService)

	router.MaxMultipartMemory = cfg.MaxUploadSize
	router.Use(middleware.CORSMiddleware(cfg.Origins))
	routes.SetupRoutes(router, foodCtrl, uploadDir)

	cleanup := func() {
		if cache != nil {
			cache.Close()
		}
		db.Close()
		log.Println("Database connection closed")
	}
	return cleanup, nil
}

// imageStore picks Cloudinary when configured, otherwise local disk. The
// second return value is the directory to serve at /uploads, if any.
func imageStore(cfg *config.Config) (libs.ImageStore, string, error) {
	cld, err := libs.NewCloudinaryStore(cfg.CloudName, cfg.CloudAPIKey, cfg.CloudSecret, cfg.CloudinaryURL)
	if err == nil {
		log.Println("Image storage: cloudinary")
		return cld, "", nil
	}
	log.Printf("Cloudinary unavailable (%v), storing images in %s", err, cfg.UploadDir)

	local, err := libs.NewLocalStore(cfg.UploadDir)
	if err != nil {
		return nil, "", err
	}
	return local, cfg.UploadDir, nil
}
