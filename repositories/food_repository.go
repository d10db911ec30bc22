package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"foodhub/models"
)

type FoodRepository interface {
	CreateFood(ctx context.Context, food *models.Food) error
	GetFoods(ctx context.Context, category string) ([]models.Food, error)
	GetFoodByID(ctx context.Context, id string) (*models.Food, error)
	DeleteFood(ctx context.Context, id string) error
}

type foodRepository struct {
	db *pgxpool.Pool
}

func NewFoodRepository(db *pgxpool.Pool) FoodRepository {
	return &foodRepository{db: db}
}

const foodColumns = `id, name, description, category, price::float8, image_url, cloudinary_id, created_at`

func (r *foodRepository) CreateFood(ctx context.Context, food *models.Food) error {
	food.ID = uuid.New().String()
	food.CreatedAt = time.Now()

	query := `
		INSERT INTO foods (id, name, description, category, price, image_url, cloudinary_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query,
		food.ID, food.Name, food.Description, food.Category, food.Price,
		food.ImageURL, food.CloudinaryID, food.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert food: %w", err)
	}
	return nil
}

// GetFoods returns foods newest first. An empty category or "All" returns
// every food.
func (r *foodRepository) GetFoods(ctx context.Context, category string) ([]models.Food, error) {
	query := `SELECT ` + foodColumns + ` FROM foods`
	args := []interface{}{}
	if category != "" && category != models.AllCategories {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query foods: %w", err)
	}
	defer rows.Close()

	foods := []models.Food{}
	for rows.Next() {
		var f models.Food
		if err := rows.Scan(&f.ID, &f.Name, &f.Description, &f.Category, &f.Price, &f.ImageURL, &f.CloudinaryID, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan food: %w", err)
		}
		foods = append(foods, f)
	}
	return foods, rows.Err()
}

func (r *foodRepository) GetFoodByID(ctx context.Context, id string) (*models.Food, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, models.ErrFoodNotFound
	}

	var f models.Food
	err := r.db.QueryRow(ctx, `SELECT `+foodColumns+` FROM foods WHERE id = $1`, id).Scan(
		&f.ID, &f.Name, &f.Description, &f.Category, &f.Price, &f.ImageURL, &f.CloudinaryID, &f.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrFoodNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get food: %w", err)
	}
	return &f, nil
}

func (r *foodRepository) DeleteFood(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return models.ErrFoodNotFound
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM foods WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete food: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrFoodNotFound
	}
	return nil
}
