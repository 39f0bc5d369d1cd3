package handler

import (
	"log/slog"
	"net/http"
	"time"

	"gymtrack/internal/delivery/api/middleware"
	"gymtrack/internal/delivery/api/response"
	"gymtrack/internal/domain/entity"
	"gymtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MealHandlerParams holds dependencies for MealHandler, injected by Fx.
type MealHandlerParams struct {
	fx.In

	MealUC usecase.MealUsecase
	Logger *slog.Logger
}

// MealHandler serves meal submission and history.
type MealHandler struct {
	mealUC usecase.MealUsecase
	logger *slog.Logger
}

// NewMealHandler is the constructor for MealHandler.
func NewMealHandler(params MealHandlerParams) *MealHandler {
	return &MealHandler{
		mealUC: params.MealUC,
		logger: params.Logger,
	}
}

// SubmitMealRequest names the slot the basket is eaten in.
type SubmitMealRequest struct {
	MealType string `json:"meal_type" validate:"required,oneof=Breakfast Lunch Dinner Snack"`
}

// HistoryRequest holds the history query.
type HistoryRequest struct {
	Limit int `query:"limit" validate:"gte=0"`
}

// MealItemResponse is one stored line of a meal.
type MealItemResponse struct {
	FoodID      string  `json:"food_id"`
	FoodName    string  `json:"food_name"`
	Quantity    float64 `json:"quantity"`
	PortionSize float64 `json:"portion_size"`
	Calories    int     `json:"calories"`
	Protein     float64 `json:"protein"`
	Fat         float64 `json:"fat"`
	Carbs       float64 `json:"carbs"`
}

// MealResponse is a stored meal with its items.
type MealResponse struct {
	ID            uuid.UUID          `json:"id"`
	MealName      string             `json:"meal_name"`
	TotalCalories int                `json:"total_calories"`
	TotalProtein  float64            `json:"total_protein"`
	TotalFat      float64            `json:"total_fat"`
	TotalCarbs    float64            `json:"total_carbs"`
	Items         []MealItemResponse `json:"items"`
	CreatedAt     time.Time          `json:"created_at"`
}

func newMealResponse(m *entity.Meal) *MealResponse {
	items := make([]MealItemResponse, 0, len(m.Items))
	for _, it := range m.Items {
		items = append(items, MealItemResponse{
			FoodID:      it.FoodID,
			FoodName:    it.FoodName,
			Quantity:    it.Quantity,
			PortionSize: it.PortionSize,
			Calories:    it.Calories,
			Protein:     it.Protein,
			Fat:         it.Fat,
			Carbs:       it.Carbs,
		})
	}

	return &MealResponse{
		ID:            m.ID,
		MealName:      m.Name.String(),
		TotalCalories: m.TotalCalories,
		TotalProtein:  m.TotalProtein,
		TotalFat:      m.TotalFat,
		TotalCarbs:    m.TotalCarbs,
		Items:         items,
		CreatedAt:     m.CreatedAt,
	}
}

// Submit stores the caller's basket as a meal.
func (h *MealHandler) Submit(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SubmitMealRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid meal input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	meal, err := h.mealUC.Submit(c.Request().Context(), userID, entity.MealType(req.MealType))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newMealResponse(meal))
}

// History lists past meals, newest first.
func (h *MealHandler) History(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req HistoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid history query")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	entries, err := h.mealUC.History(c.Request().Context(), userID, req.Limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entries)
}

// GetMeal returns a meal of the caller with its items.
func (h *MealHandler) GetMeal(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid meal ID")
	}

	meal, err := h.mealUC.GetMeal(c.Request().Context(), userID, mealID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newMealResponse(meal))
}

// DeleteMeal removes a meal of the caller.
func (h *MealHandler) DeleteMeal(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid meal ID")
	}

	if err := h.mealUC.DeleteMeal(c.Request().Context(), userID, mealID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
