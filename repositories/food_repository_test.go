package repositories

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodhub/models"
)

// Integration test; needs a migrated database in FOODHUB_TEST_DATABASE_URL.
func TestFoodRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping repository integration test in short mode")
	}
	dsn := os.Getenv("FOODHUB_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("skipping repository integration test: FOODHUB_TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	repo := NewFoodRepository(pool)

	food := &models.Food{Name: "Pizza", Description: "Cheesy", Category: "Pizza", Price: 250, ImageURL: "/uploads/foods/p.png"}
	require.NoError(t, repo.CreateFood(ctx, food))
	assert.NotEmpty(t, food.ID)
	defer repo.DeleteFood(ctx, food.ID)

	got, err := repo.GetFoodByID(ctx, food.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pizza", got.Name)
	assert.Equal(t, 250.0, got.Price)

	pizzas, err := repo.GetFoods(ctx, "Pizza")
	require.NoError(t, err)
	assert.NotEmpty(t, pizzas)
	for _, f := range pizzas {
		assert.Equal(t, "Pizza", f.Category)
	}

	require.NoError(t, repo.DeleteFood(ctx, food.ID))
	assert.ErrorIs(t, repo.DeleteFood(ctx, food.ID), models.ErrFoodNotFound)
	_, err = repo.GetFoodByID(ctx, food.ID)
	assert.ErrorIs(t, err, models.ErrFoodNotFound)
}

func TestFoodRepositoryRejectsMalformedID(t *testing.T) {
	repo := NewFoodRepository(nil)

	_, err := repo.GetFoodByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, models.ErrFoodNotFound)
	assert.ErrorIs(t, repo.DeleteFood(context.Background(), "42"), models.ErrFoodNotFound)
}
