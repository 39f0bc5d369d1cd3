package middleware

import (
	"strings"

	"gymtrack/internal/delivery/api/response"
	"gymtrack/internal/domain/entity"
	"gymtrack/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = "userID"
	contextKeyRoles  = "roles"
	bearerPrefix     = "Bearer "
)

// AuthMiddleware validates access tokens and enforces roles.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate requires a valid Bearer access token and stores its subject on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimPrefix(authHeader, bearerPrefix))
		if err != nil || claims.UserID == uuid.Nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(contextKeyUserID, claims.UserID)
		c.Set(contextKeyRoles, entity.RolesFromStrings(claims.Roles))

		return next(c)
	}
}

// RequireRole must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := GetRoles(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}
			if !roles.Contains(role) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+role.String()+"' role")
			}

			return next(c)
		}
	}
}

// GetUserID returns the authenticated user id.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

// GetRoles returns the roles carried by the access token.
func GetRoles(c echo.Context) (entity.Roles, bool) {
	roles, ok := c.Get(contextKeyRoles).(entity.Roles)

	return roles, ok
}
