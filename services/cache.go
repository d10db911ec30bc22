package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"foodhub/models"
)

const (
	foodListKeyPrefix = "foods_list_"
	foodListTTL       = 5 * time.Minute
)

// foodListCache is a no-op when the client is nil.
type foodListCache struct {
	client *redis.Client
}

func foodListKey(category string) string {
	if category == "" {
		category = models.AllCategories
	}
	return foodListKeyPrefix + strings.ReplaceAll(strings.ToLower(category), " ", "_")
}

func (c foodListCache) get(ctx context.Context, category string) ([]models.Food, bool) {
	if c.client == nil {
		return nil, false
	}
	cached, err := c.client.Get(ctx, foodListKey(category)).Bytes()
	if err != nil {
		return nil, false
	}
	var foods []models.Food
	if err := json.Unmarshal(cached, &foods); err != nil {
		return nil, false
	}
	return foods, true
}

func (c foodListCache) set(ctx context.Context, category string, foods []models.Food) {
	if c.client == nil {
		return
	}
	data, err := json.Marshal(foods)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, foodListKey(category), data, foodListTTL).Err(); err != nil {
		log.Printf("cache set failed: %v", err)
	}
}

func (c foodListCache) invalidate(ctx context.Context) {
	if c.client == nil {
		return
	}
	iter := c.client.Scan(ctx, 0, foodListKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		c.client.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Printf("cache invalidate failed: %v", err)
	}
}
