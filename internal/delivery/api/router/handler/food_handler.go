package handler

import (
	"log/slog"
	"net/http"

	"gymtrack/internal/delivery/api/middleware"
	"gymtrack/internal/delivery/api/response"
	"gymtrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FoodHandlerParams holds dependencies for FoodHandler, injected by Fx.
type FoodHandlerParams struct {
	fx.In

	FoodUC usecase.FoodUsecase
	Logger *slog.Logger
}

// FoodHandler serves the food catalog with the caller's liked flags.
type FoodHandler struct {
	foodUC usecase.FoodUsecase
	logger *slog.Logger
}

// NewFoodHandler is the constructor for FoodHandler.
func NewFoodHandler(params FoodHandlerParams) *FoodHandler {
	return &FoodHandler{
		foodUC: params.FoodUC,
		logger: params.Logger,
	}
}

// ListFoodsRequest holds the query filters of a listing.
type ListFoodsRequest struct {
	Country string `query:"country"`
	City    string `query:"city"`
	Search  string `query:"search"`
	Limit   int    `query:"limit" validate:"gte=0,lte=500"`
}

// CreateFoodRequest is a per-100 nutrition profile.
type CreateFoodRequest struct {
	ID          string  `json:"id" validate:"omitempty,max=64"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Calories    int     `json:"calories" validate:"gte=0"`
	Protein     float64 `json:"protein" validate:"gte=0"`
	Fat         float64 `json:"fat" validate:"gte=0"`
	Carbs       float64 `json:"carbs" validate:"gte=0"`
	Country     string  `json:"country" validate:"required"`
	City        string  `json:"city"`
}

// PreferenceRequest sets the liked state. Without "liked" the state is flipped.
type PreferenceRequest struct {
	Liked *bool `json:"liked"`
}

// ListFoods lists foods, liked ones first.
func (h *FoodHandler) ListFoods(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ListFoodsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid food filter")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	foods, err := h.foodUC.ListFoods(c.Request().Context(), userID, usecase.ListFoodsInput{
		Country: req.Country,
		City:    req.City,
		Search:  req.Search,
		Limit:   req.Limit,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, foods)
}

// LikedFoods lists the caller's liked foods.
func (h *FoodHandler) LikedFoods(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	foods, err := h.foodUC.LikedFoods(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, foods)
}

// GetFood returns one food.
func (h *FoodHandler) GetFood(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	food, err := h.foodUC.GetFood(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, food)
}

// CreateFood adds a custom food to the catalog.
func (h *FoodHandler) CreateFood(c echo.Context) error {
	if _, ok := middleware.GetUserID(c); !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateFoodRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid food input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	food, err := h.foodUC.CreateFood(c.Request().Context(), usecase.CreateFoodInput{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Calories:    req.Calories,
		Protein:     req.Protein,
		Fat:         req.Fat,
		Carbs:       req.Carbs,
		Country:     req.Country,
		City:        req.City,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, food)
}

// SetPreference likes, dislikes or toggles a food.
func (h *FoodHandler) SetPreference(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req PreferenceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preference input")
	}

	foodID := c.Param("id")
	liked, err := h.foodUC.SetPreference(c.Request().Context(), userID, foodID, req.Liked)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"food_id":  foodID,
		"is_liked": liked,
	})
}

// FoodQRCode returns the share code of a food as PNG.
func (h *FoodHandler) FoodQRCode(c echo.Context) error {
	png, err := h.foodUC.FoodQRCode(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
