// Package response writes the JSON envelopes shared by every API handler.
package response

import (
	"net/http"

	deliverycontext "gymtrack/internal/delivery/context"
	domainerrors "gymtrack/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MetaInfo is attached to every envelope.
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorInfo carries a stable machine code, e.g. "FOOD_NOT_FOUND", and an optional payload.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

// Error writes the error envelope. Details never leave the server on 5xx, 401 or 403.
func Error(c echo.Context, statusCode int, errorCode, message string, details any) error {
	switch {
	case statusCode >= http.StatusInternalServerError,
		statusCode == http.StatusUnauthorized,
		statusCode == http.StatusForbidden:
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{Code: errorCode, Message: message, Details: details},
		Meta:  meta(c),
	})
}

func BadRequest(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BindingError is a 400 for bodies or params echo could not decode.
func BindingError(c echo.Context, errorCode, message string) error {
	return BadRequest(c, errorCode, message)
}

func Unauthorized(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

func Forbidden(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, nil)
}

func InternalServerError(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError writes domain errors. Anything else is handed back to echo's error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return errors.WithStack(err)
	}

	var details any
	if d := appErr.Details(); d != "" {
		details = d
	} else if msg := err.Error(); msg != appErr.Error() {
		// wrapped with call-site context, e.g. "quantity must not be negative: Invalid quantity"
		details = msg
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}
