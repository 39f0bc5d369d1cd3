package handler

import (
	"net/http"

	"gymtrack/internal/delivery/api/middleware"
	"gymtrack/internal/delivery/api/response"
	"gymtrack/internal/domain/entity"
	"gymtrack/internal/usecase"

	"github.com/labstack/echo/v4"
)

// MealPlanHandler serves the cached daily meal plan.
type MealPlanHandler struct {
	mealPlanUC usecase.MealPlanUsecase
}

// NewMealPlanHandler is the constructor for MealPlanHandler.
func NewMealPlanHandler(mealPlanUC usecase.MealPlanUsecase) *MealPlanHandler {
	return &MealPlanHandler{mealPlanUC: mealPlanUC}
}

// GetPlan returns the caller's cached plan.
func (h *MealPlanHandler) GetPlan(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	plan, err := h.mealPlanUC.GetPlan(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, plan)
}

// SavePlan stores or replaces the caller's plan.
func (h *MealPlanHandler) SavePlan(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var plan entity.MealPlan
	if err := c.Bind(&plan); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid meal plan")
	}

	saved, err := h.mealPlanUC.SavePlan(c.Request().Context(), userID, &plan)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, saved)
}

// DeletePlan drops the caller's plan.
func (h *MealPlanHandler) DeletePlan(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.mealPlanUC.DeletePlan(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
