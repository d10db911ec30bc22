// Package foodclient talks to the food API on behalf of the admin and
// customer panels.
package foodclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"foodhub/models"
)

// Image is the file attached to an add-food submission.
type Image struct {
	Filename string
	Content  io.Reader
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddFood submits the item fields and the image as one multipart request.
func (c *Client) AddFood(ctx context.Context, req models.FoodRequest, image Image) error {
	const op = "addFood"

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fields := [][2]string{
		{"name", req.Name},
		{"description", req.Description},
		{"category", req.Category},
		{"price", strconv.FormatFloat(req.Price, 'f', -1, 64)},
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return &models.ServiceError{Op: op, Err: err}
		}
	}
	if image.Content != nil {
		part, err := w.CreateFormFile("image", image.Filename)
		if err != nil {
			return &models.ServiceError{Op: op, Err: err}
		}
		if _, err := io.Copy(part, image.Content); err != nil {
			return &models.ServiceError{Op: op, Err: err}
		}
	}
	if err := w.Close(); err != nil {
		return &models.ServiceError{Op: op, Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/foods", body)
	if err != nil {
		return &models.ServiceError{Op: op, Err: err}
	}
	httpReq.Header.Set("Content-Type", w.FormDataContentType())

	var resp models.FoodResponse
	return c.do(op, httpReq, &resp)
}

func (c *Client) GetFoodList(ctx context.Context) ([]models.Food, error) {
	return c.listFoods(ctx, "getFoodList")
}

// FetchFoodList is the customer-facing read of the catalog.
func (c *Client) FetchFoodList(ctx context.Context) ([]models.Food, error) {
	return c.listFoods(ctx, "fetchFoodList")
}

func (c *Client) listFoods(ctx context.Context, op string) ([]models.Food, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/foods", nil)
	if err != nil {
		return nil, &models.ServiceError{Op: op, Err: err}
	}

	var resp models.FoodListResponse
	if err := c.do(op, httpReq, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return []models.Food{}, nil
	}
	return resp.Data, nil
}

// DeleteFood reports whether the API confirmed the removal. A reachable API
// that refuses the delete yields (false, nil).
func (c *Client) DeleteFood(ctx context.Context, id string) (bool, error) {
	const op = "deleteFood"

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/foods/"+url.PathEscape(id), nil)
	if err != nil {
		return false, &models.ServiceError{Op: op, Err: err}
	}

	res, err := c.httpClient.Do(httpReq)
	if err != nil {
		return false, &models.ServiceError{Op: op, Err: err}
	}
	defer res.Body.Close()

	var resp models.Response
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		if res.StatusCode >= 500 {
			return false, &models.ServiceError{Op: op, Status: res.StatusCode, Err: err}
		}
		return false, nil
	}
	if res.StatusCode >= 500 {
		return false, &models.ServiceError{Op: op, Status: res.StatusCode, Message: resp.Message}
	}
	return res.StatusCode == http.StatusOK && resp.Success, nil
}

func (c *Client) do(op string, req *http.Request, out interface{}) error {
	res, err := c.httpClient.Do(req)
	if err != nil {
		return &models.ServiceError{Op: op, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		var errResp models.ErrorResponse
		_ = json.NewDecoder(res.Body).Decode(&errResp)
		msg := errResp.Message
		if errResp.Error != "" {
			msg = fmt.Sprintf("%s: %s", msg, errResp.Error)
		}
		return &models.ServiceError{Op: op, Status: res.StatusCode, Message: msg}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return &models.ServiceError{Op: op, Status: res.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
