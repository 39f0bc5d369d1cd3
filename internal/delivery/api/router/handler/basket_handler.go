package handler

import (
	"log/slog"
	"net/http"

	"gymtrack/internal/delivery/api/middleware"
	"gymtrack/internal/delivery/api/response"
	"gymtrack/internal/domain/entity"
	"gymtrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BasketHandlerParams holds dependencies for BasketHandler, injected by Fx.
type BasketHandlerParams struct {
	fx.In

	BasketUC usecase.BasketUsecase
	Logger   *slog.Logger
}

// BasketHandler serves the selection basket of the caller.
type BasketHandler struct {
	basketUC usecase.BasketUsecase
	logger   *slog.Logger
}

// NewBasketHandler is the constructor for BasketHandler.
func NewBasketHandler(params BasketHandlerParams) *BasketHandler {
	return &BasketHandler{
		basketUC: params.BasketUC,
		logger:   params.Logger,
	}
}

// AddFoodRequest adds a catalog food. Quantity defaults when omitted.
type AddFoodRequest struct {
	FoodID   string   `json:"food_id" validate:"required"`
	Quantity *float64 `json:"quantity"`
}

// UpdateQuantityRequest sets the quantity of an existing line.
type UpdateQuantityRequest struct {
	Quantity *float64 `json:"quantity" validate:"required"`
}

// AddMealPlanFoodRequest picks a food from the cached meal plan.
type AddMealPlanFoodRequest struct {
	MealType string `json:"meal_type" validate:"required"`
	Index    int    `json:"index" validate:"gte=0"`
}

// AddFromQRRequest carries the scanned share code text.
type AddFromQRRequest struct {
	Payload string `json:"payload" validate:"required"`
}

// Preview returns the basket lines with totals.
func (h *BasketHandler) Preview(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	preview, err := h.basketUC.Preview(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, preview)
}

// AddFood adds a food line.
func (h *BasketHandler) AddFood(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req AddFoodRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid basket input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	preview, err := h.basketUC.AddFood(c.Request().Context(), userID, req.FoodID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, preview)
}

// UpdateQuantity changes the quantity of a line.
func (h *BasketHandler) UpdateQuantity(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	preview, err := h.basketUC.UpdateQuantity(c.Request().Context(), userID, c.Param("foodId"), *req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, preview)
}

// RemoveFood drops a line. Unknown foods are ignored.
func (h *BasketHandler) RemoveFood(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	preview, err := h.basketUC.RemoveFood(c.Request().Context(), userID, c.Param("foodId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, preview)
}

// Clear empties the basket.
func (h *BasketHandler) Clear(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.basketUC.Clear(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AddMealPlanFood adds a meal plan food as an absolute line.
func (h *BasketHandler) AddMealPlanFood(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req AddMealPlanFoodRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid meal plan input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	preview, err := h.basketUC.AddMealPlanFood(c.Request().Context(), userID, entity.MealType(req.MealType), req.Index)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, preview)
}

// AddFromQR adds the food of a scanned share code.
func (h *BasketHandler) AddFromQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req AddFromQRRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid QR input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	preview, err := h.basketUC.AddFromQR(c.Request().Context(), userID, req.Payload)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, preview)
}
