package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"foodhub/controllers"
	_ "foodhub/docs"
)

func SetupRoutes(router *gin.Engine, foodCtrl *controllers.FoodController, uploadDir string) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Foodhub API", "path": c.Request.URL.Path})
	})
	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		api.GET("/categories", foodCtrl.GetCategories)
		api.GET("/foods", foodCtrl.GetFoods)
		api.GET("/foods/:id", foodCtrl.GetFoodByID)
		api.POST("/foods", foodCtrl.CreateFood)
		api.DELETE("/foods/:id", foodCtrl.DeleteFood)
	}

	if uploadDir != "" {
		router.Static("/uploads", uploadDir)
	}
}
