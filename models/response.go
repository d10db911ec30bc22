package models

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type FoodResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    Food   `json:"data"`
}

type FoodListResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    []Food `json:"data"`
}
