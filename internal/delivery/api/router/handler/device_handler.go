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

type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler manages the phones that receive goal alerts.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{deviceUC: params.DeviceUC, logger: params.Logger}
}

type RegisterDeviceRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android"`
}

// DeviceResponse never echoes the push token back.
type DeviceResponse struct {
	ID           uuid.UUID `json:"id"`
	DeviceID     string    `json:"device_id"`
	Platform     string    `json:"platform"`
	RegisteredAt time.Time `json:"registered_at"`
}

func newDeviceResponse(d *entity.UserDevice) DeviceResponse {
	return DeviceResponse{ID: d.ID, DeviceID: d.DeviceID, Platform: d.Platform, RegisteredAt: d.CreatedAt}
}

// Register adds a phone. Sending the same device_id again swaps its token.
func (h *DeviceHandler) Register(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), userID, &usecase.DeviceInfo{
		FCMToken: req.FCMToken,
		DeviceID: req.DeviceID,
		Platform: req.Platform,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.DebugContext(c.Request().Context(), "Device registered",
		slog.String("userID", userID.String()), slog.String("platform", device.Platform))

	return response.Success(c, http.StatusCreated, newDeviceResponse(device))
}

func (h *DeviceHandler) List(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	devices, err := h.deviceUC.GetUserDevices(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]DeviceResponse, 0, len(devices))
	for _, d := range devices {
		out = append(out, newDeviceResponse(d))
	}

	return response.Success(c, http.StatusOK, out)
}

// Deactivate stops alerts to one of the caller's devices.
func (h *DeviceHandler) Deactivate(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), userID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
