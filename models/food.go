package models

import (
	"fmt"
	"time"
)

const (
	AllCategories   = "All"
	DefaultCategory = "Biryani"
)

// Categories is the fixed, ordered set a food item can belong to.
var Categories = []string{
	"Biryani",
	"Cake",
	"Burger",
	"Pizza",
	"Rolls",
	"Salad",
	"Ice cream",
}

type Food struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Price        float64   `json:"price"`
	ImageURL     string    `json:"imageUrl"`
	CloudinaryID string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type FoodRequest struct {
	Name        string  `json:"name" form:"name" binding:"required" validate:"required"`
	Description string  `json:"description" form:"description" binding:"required" validate:"required"`
	Category    string  `json:"category" form:"category" binding:"required" validate:"required,category"`
	Price       float64 `json:"price" form:"price" validate:"gte=0"`
}

func IsCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

func FormatPrice(price float64) string {
	return fmt.Sprintf("₹%.2f", price)
}
