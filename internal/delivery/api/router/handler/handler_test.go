package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"gymtrack/internal/delivery/api/middleware"
	"gymtrack/internal/delivery/api/validator"
	"gymtrack/internal/domain/entity"
	"gymtrack/internal/domain/service"
	mockSvc "gymtrack/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const testToken = "valid-token"

// newTestEcho wires validator, error handler and an auth middleware accepting testToken for userID.
func newTestEcho(t *testing.T, userID uuid.UUID) (*echo.Echo, *middleware.AuthMiddleware) {
	t.Helper()

	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken(testToken).Return(&service.Claims{
		UserID: userID,
		Roles:  entity.Roles{entity.RoleUser}.ToStrings(),
	}, nil).Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	return e, middleware.NewAuthMiddleware(tokenSvc)
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
