package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"foodhub/models"
	"foodhub/services"
)

type FoodController struct {
	service services.FoodService
}

func NewFoodController(service services.FoodService) *FoodController {
	return &FoodController{service: service}
}

// @Summary Get all categories
// @Description Get the fixed list of food categories
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/categories [get]
func (ctrl *FoodController) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Categories retrieved", Data: models.Categories})
}

// @Summary Get all foods
// @Description Get foods ordered newest first, optionally narrowed to one category
// @Tags Foods
// @Produce json
// @Param category query string false "Category name, All for no filter"
// @Success 200 {object} models.FoodListResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/foods [get]
func (ctrl *FoodController) GetFoods(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))

	foods, err := ctrl.service.GetFoods(c.Request.Context(), category)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCategory) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid category", Error: err.Error()})
			return
		}
		log.Printf("get foods: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to retrieve foods"})
		return
	}

	c.JSON(http.StatusOK, models.FoodListResponse{Success: true, Message: "Foods retrieved", Data: foods})
}

// @Summary Get food by ID
// @Description Get a single food item
// @Tags Foods
// @Produce json
// @Param id path string true "Food ID"
// @Success 200 {object} models.FoodResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/foods/{id} [get]
func (ctrl *FoodController) GetFoodByID(c *gin.Context) {
	food, err := ctrl.service.GetFoodByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, models.ErrFoodNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Food not found"})
			return
		}
		log.Printf("get food: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to retrieve food"})
		return
	}

	c.JSON(http.StatusOK, models.FoodResponse{Success: true, Message: "Food retrieved", Data: *food})
}

// @Summary Create food
// @Description Add a new food item with its image
// @Tags Foods
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Food name"
// @Param description formData string true "Food description"
// @Param category formData string true "Food category"
// @Param price formData number true "Food price"
// @Param image formData file true "Food image"
// @Success 201 {object} models.FoodResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/foods [post]
func (ctrl *FoodController) CreateFood(c *gin.Context) {
	var req models.FoodRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Name, description, category, and price are required", Error: err.Error()})
		return
	}
	if strings.TrimSpace(c.PostForm("price")) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Name, description, category, and price are required"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Image is required", Error: models.ErrImageRequired.Error()})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Failed to read image", Error: err.Error()})
		return
	}
	defer file.Close()

	food, err := ctrl.service.CreateFood(c.Request.Context(), req, &services.ImageFile{
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		Reader:   file,
	})
	if err != nil {
		if isBadRequest(err) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Failed to create food", Error: err.Error()})
			return
		}
		log.Printf("create food: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to create food"})
		return
	}

	c.JSON(http.StatusCreated, models.FoodResponse{Success: true, Message: "Food created successfully", Data: *food})
}

// @Summary Delete food
// @Description Delete a food item and its image
// @Tags Foods
// @Produce json
// @Param id path string true "Food ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/foods/{id} [delete]
func (ctrl *FoodController) DeleteFood(c *gin.Context) {
	err := ctrl.service.DeleteFood(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, models.ErrFoodNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Food not found"})
			return
		}
		log.Printf("delete food: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to delete food"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Food deleted successfully"})
}

func isBadRequest(err error) bool {
	return models.IsValidationError(err) ||
		errors.Is(err, models.ErrImageRequired) ||
		errors.Is(err, models.ErrInvalidImage) ||
		errors.Is(err, models.ErrImageTooLarge) ||
		errors.Is(err, models.ErrInvalidCategory)
}
