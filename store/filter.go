package store

import "foodhub/models"

// FilterByCategory keeps items whose category equals category exactly.
// models.AllCategories (or empty) returns the list unchanged.
func FilterByCategory(items []models.Food, category string) []models.Food {
	if category == "" || category == models.AllCategories {
		return items
	}
	out := make([]models.Food, 0, len(items))
	for _, item := range items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// ToggleCategory selects category, or clears the filter when it is already
// the active one.
func ToggleCategory(current, selected string) string {
	if current == selected {
		return models.AllCategories
	}
	return selected
}
