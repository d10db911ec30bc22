package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"

	"foodhub/libs"
	"foodhub/models"
	"foodhub/repositories"
	"foodhub/utils"
)

// ImageFile is an uploaded image as received from the form.
type ImageFile struct {
	Filename string
	Size     int64
	Reader   io.Reader
}

type FoodService interface {
	CreateFood(ctx context.Context, req models.FoodRequest, image *ImageFile) (*models.Food, error)
	GetFoods(ctx context.Context, category string) ([]models.Food, error)
	GetFoodByID(ctx context.Context, id string) (*models.Food, error)
	DeleteFood(ctx context.Context, id string) error
}

type foodService struct {
	repo          repositories.FoodRepository
	images        libs.ImageStore
	cache         foodListCache
	validate      *validator.Validate
	maxUploadSize int64
}

func NewFoodService(repo repositories.FoodRepository, images libs.ImageStore, cache *redis.Client, maxUploadSize int64) FoodService {
	return &foodService{
		repo:          repo,
		images:        images,
		cache:         foodListCache{client: cache},
		validate:      utils.NewValidator(),
		maxUploadSize: maxUploadSize,
	}
}

func (s *foodService) CreateFood(ctx context.Context, req models.FoodRequest, image *ImageFile) (*models.Food, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)
	req.Category = strings.TrimSpace(req.Category)

	if err := s.validate.Struct(req); err != nil {
		return nil, &models.ValidationError{Message: utils.ValidationMessage(err)}
	}
	if image == nil || image.Reader == nil {
		return nil, models.ErrImageRequired
	}
	if err := utils.ValidateImage(image.Filename, image.Size, s.maxUploadSize); err != nil {
		return nil, err
	}

	stored, err := s.images.Upload(ctx, image.Reader, image.Filename)
	if err != nil {
		return nil, err
	}

	food := &models.Food{
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		Price:        req.Price,
		ImageURL:     stored.URL,
		CloudinaryID: stored.PublicID,
	}
	if err := s.repo.CreateFood(ctx, food); err != nil {
		if derr := s.images.Delete(ctx, stored.PublicID); derr != nil {
			log.Printf("failed to remove orphaned image %s: %v", stored.PublicID, derr)
		}
		return nil, err
	}

	s.cache.invalidate(ctx)
	return food, nil
}

func (s *foodService) GetFoods(ctx context.Context, category string) ([]models.Food, error) {
	if category != "" && category != models.AllCategories && !models.IsCategory(category) {
		return nil, models.ErrInvalidCategory
	}

	if foods, ok := s.cache.get(ctx, category); ok {
		return foods, nil
	}

	foods, err := s.repo.GetFoods(ctx, category)
	if err != nil {
		return nil, err
	}
	s.cache.set(ctx, category, foods)
	return foods, nil
}

func (s *foodService) GetFoodByID(ctx context.Context, id string) (*models.Food, error) {
	return s.repo.GetFoodByID(ctx, id)
}

func (s *foodService) DeleteFood(ctx context.Context, id string) error {
	food, err := s.repo.GetFoodByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteFood(ctx, id); err != nil {
		return fmt.Errorf("failed to delete food %s: %w", id, err)
	}

	if err := s.images.Delete(ctx, food.CloudinaryID); err != nil {
		log.Printf("failed to delete image for food %s: %v", id, err)
	}

	s.cache.invalidate(ctx)
	return nil
}
