package handler

import (
	"log/slog"
	"net/http"
	"time"

	"gymtrack/internal/delivery/api/middleware"
	"gymtrack/internal/delivery/api/response"
	"gymtrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NutritionHandlerParams holds dependencies for NutritionHandler, injected by Fx.
type NutritionHandlerParams struct {
	fx.In

	NutritionUC usecase.NutritionUsecase
	Logger      *slog.Logger
}

// NutritionHandler serves the daily intake report and food suggestions.
type NutritionHandler struct {
	nutritionUC usecase.NutritionUsecase
	logger      *slog.Logger
	now         func() time.Time
}

// NewNutritionHandler is the constructor for NutritionHandler.
func NewNutritionHandler(params NutritionHandlerParams) *NutritionHandler {
	return &NutritionHandler{
		nutritionUC: params.NutritionUC,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// SuggestionsRequest holds the suggestions query.
type SuggestionsRequest struct {
	Limit int `query:"limit" validate:"gte=0,lte=50"`
}

// Daily reports consumed, target and remaining for today, or for the day of ?at=RFC3339.
func (h *NutritionHandler) Daily(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	reference, ok := h.reference(c)
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "at must be an RFC3339 timestamp")
	}

	daily, err := h.nutritionUC.Daily(c.Request().Context(), userID, reference)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, daily)
}

// Suggestions lists foods that fit what is left of today's calories.
func (h *NutritionHandler) Suggestions(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SuggestionsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid suggestions query")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	reference, ok := h.reference(c)
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "at must be an RFC3339 timestamp")
	}

	suggestions, err := h.nutritionUC.Suggestions(c.Request().Context(), userID, reference, req.Limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, suggestions)
}

func (h *NutritionHandler) reference(c echo.Context) (time.Time, bool) {
	at := c.QueryParam("at")
	if at == "" {
		return h.now(), true
	}

	parsed, err := time.Parse(time.RFC3339, at)
	if err != nil {
		return time.Time{}, false
	}

	return parsed, true
}
