package handler

import (
	"net/http"

	"gymtrack/internal/delivery/api/middleware"
	"gymtrack/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// TestHandler serves the /test endpoints used to check auth wiring.
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// TestAuthMiddleware echoes the identity the auth middleware put on the context.
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	roles, ok := middleware.GetRoles(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User roles not found in context")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user_id": userID,
		"roles":   roles.ToStrings(),
		"status":  "authenticated",
	})
}

// TestPublicEndpoint needs no token.
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"status": "public",
	})
}
