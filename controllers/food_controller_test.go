package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodhub/controllers"
	"foodhub/models"
	"foodhub/routes"
	"foodhub/services"
)

type stubService struct {
	foods      []models.Food
	createErr  error
	deleteErr  error
	created    *models.FoodRequest
	imageName  string
	imageBytes string
	deletedID  string
	lastFilter string
}

func (s *stubService) CreateFood(_ context.Context, req models.FoodRequest, image *services.ImageFile) (*models.Food, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = &req
	s.imageName = image.Filename
	data, _ := io.ReadAll(image.Reader)
	s.imageBytes = string(data)
	return &models.Food{ID: "1", Name: req.Name, Description: req.Description, Category: req.Category, Price: req.Price, ImageURL: "/uploads/foods/1.png"}, nil
}

func (s *stubService) GetFoods(_ context.Context, category string) ([]models.Food, error) {
	s.lastFilter = category
	if category == "Sushi" {
		return nil, models.ErrInvalidCategory
	}
	return s.foods, nil
}

func (s *stubService) GetFoodByID(_ context.Context, id string) (*models.Food, error) {
	for _, f := range s.foods {
		if f.ID == id {
			f := f
			return &f, nil
		}
	}
	return nil, models.ErrFoodNotFound
}

func (s *stubService) DeleteFood(_ context.Context, id string) error {
	s.deletedID = id
	return s.deleteErr
}

func newRouter(svc services.FoodService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	routes.SetupRoutes(router, controllers.NewFoodController(svc), "")
	return router
}

func multipartBody(t *testing.T, fields map[string]string, image string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if image != "" {
		part, err := w.CreateFormFile("image", image)
		require.NoError(t, err)
		_, err = part.Write([]byte("img"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func pizzaFields() map[string]string {
	return map[string]string{"name": "Pizza", "description": "Cheesy", "category": "Pizza", "price": "250"}
}

func TestGetFoods(t *testing.T) {
	svc := &stubService{foods: []models.Food{{ID: "1", Name: "Pizza", Category: "Pizza", Price: 250}}}
	router := newRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/foods?category=Pizza", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.FoodListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Pizza", resp.Data[0].Name)
	assert.Equal(t, "Pizza", svc.lastFilter)
}

func TestGetFoodsInvalidCategory(t *testing.T) {
	router := newRouter(&stubService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/foods?category=Sushi", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetFoodByID(t *testing.T) {
	router := newRouter(&stubService{foods: []models.Food{{ID: "1", Name: "Pizza"}}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/foods/1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/foods/2", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateFood(t *testing.T) {
	svc := &stubService{}
	router := newRouter(svc)

	body, contentType := multipartBody(t, pizzaFields(), "pizza.png")
	req := httptest.NewRequest(http.MethodPost, "/api/foods", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp models.FoodResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "1", resp.Data.ID)
	assert.Equal(t, 250.0, svc.created.Price)
	assert.Equal(t, "pizza.png", svc.imageName)
	assert.Equal(t, "img", svc.imageBytes)
}

func TestCreateFoodBadRequests(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]string
		image  string
		svcErr error
	}{
		{name: "missing image", fields: pizzaFields()},
		{name: "missing name", fields: map[string]string{"description": "d", "category": "Pizza", "price": "1"}, image: "a.png"},
		{name: "missing price", fields: map[string]string{"name": "n", "description": "d", "category": "Pizza"}, image: "a.png"},
		{name: "bad price", fields: map[string]string{"name": "n", "description": "d", "category": "Pizza", "price": "abc"}, image: "a.png"},
		{name: "service validation", fields: pizzaFields(), image: "a.png", svcErr: &models.ValidationError{Field: "category", Message: "unknown"}},
		{name: "bad image", fields: pizzaFields(), image: "a.pdf", svcErr: models.ErrInvalidImage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{createErr: tt.svcErr}
			router := newRouter(svc)

			body, contentType := multipartBody(t, tt.fields, tt.image)
			req := httptest.NewRequest(http.MethodPost, "/api/foods", body)
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, svc.created)
		})
	}
}

func TestCreateFoodServiceFailure(t *testing.T) {
	router := newRouter(&stubService{createErr: errors.New("upload failed")})

	body, contentType := multipartBody(t, pizzaFields(), "pizza.png")
	req := httptest.NewRequest(http.MethodPost, "/api/foods", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestDeleteFood(t *testing.T) {
	svc := &stubService{}
	router := newRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/foods/abc", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc", svc.deletedID)

	var resp models.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	svc.deleteErr = models.ErrFoodNotFound
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/foods/abc", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthAndCategories(t *testing.T) {
	router := newRouter(&stubService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"Foodhub API"`)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/categories", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ice cream")
}
