// Package handler contains the HTTP handlers of the public API.
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

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves registration and the profile of the caller.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// ProfileRequest is the body of registration and profile updates.
type ProfileRequest struct {
	Name          string  `json:"name" validate:"required"`
	Gender        string  `json:"gender" validate:"required,oneof=Male Female"`
	Age           int     `json:"age" validate:"gt=0"`
	Weight        float64 `json:"weight" validate:"gt=0"`
	Height        float64 `json:"height" validate:"gt=0"`
	ActivityLevel string  `json:"activity_level" validate:"required,oneof=Low Medium High"`
	Goal          string  `json:"goal" validate:"required"`
	Country       string  `json:"country" validate:"required"`
	City          string  `json:"city"`
	Language      string  `json:"language" validate:"omitempty,oneof=en vi"`
}

func (r *ProfileRequest) toInput() usecase.ProfileInput {
	return usecase.ProfileInput{
		Name:          r.Name,
		Gender:        entity.Gender(r.Gender),
		Age:           r.Age,
		Weight:        r.Weight,
		Height:        r.Height,
		ActivityLevel: entity.ActivityLevel(r.ActivityLevel),
		Goal:          r.Goal,
		Country:       r.Country,
		City:          r.City,
		Language:      r.Language,
	}
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID            uuid.UUID          `json:"id"`
	Name          string             `json:"name"`
	Gender        string             `json:"gender"`
	Age           int                `json:"age"`
	Weight        float64            `json:"weight"`
	Height        float64            `json:"height"`
	ActivityLevel string             `json:"activity_level"`
	Goal          string             `json:"goal"`
	Country       string             `json:"country"`
	City          string             `json:"city,omitempty"`
	Language      string             `json:"language"`
	DailyTarget   entity.DailyTarget `json:"daily_target"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

func newUserResponse(u *entity.User) *UserResponse {
	return &UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Gender:        string(u.Gender),
		Age:           u.Age,
		Weight:        u.Weight,
		Height:        u.Height,
		ActivityLevel: string(u.ActivityLevel),
		Goal:          u.Goal,
		Country:       u.Country,
		City:          u.City,
		Language:      u.Language,
		DailyTarget:   u.Target,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

// Register creates a user and returns it with an access token.
func (h *UserHandler) Register(c echo.Context) error {
	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.userUC.Register(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"user":         newUserResponse(output.User),
		"access_token": output.AccessToken,
	})
}

// GetProfile returns the caller's profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// UpdateProfile replaces the caller's body data. The daily target is recomputed.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}
