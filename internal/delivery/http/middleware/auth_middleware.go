// Package middleware contains the Echo middleware for the HTTP delivery.
package middleware

import (
	"net/http"
	"strings"

	"kusina/internal/delivery/http/response"
	"kusina/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyUserID is where Authenticate stores the caller's user ID on
// the echo context.
const ContextKeyUserID = "userID"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the caller's
// user ID on the context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Error(c, http.StatusUnauthorized, "UNAUTHENTICATED", "Invalid or expired token", "")
		}

		c.Set(ContextKeyUserID, claims.UserID)

		return next(c)
	}
}
