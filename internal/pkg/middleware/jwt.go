package middleware

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/prasetya/catatan/internal/pkg/jwt"
	"github.com/prasetya/catatan/internal/pkg/models"
	"github.com/prasetya/catatan/internal/utils"
)

// UserIDKey is the Echo context key carrying the authenticated user id.
const UserIDKey = "user_id"

// JWTAuthMiddleware creates a middleware for session token authentication.
// It runs before every protected operation and short-circuits with 401 on
// a missing, malformed, invalid or expired bearer token.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Get the Authorization header
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			// Check if the Authorization header has the correct format
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			// Extract the token
			tokenString := parts[1]

			// Validate the token using our JWT package
			claims, err := jwtpkg.ValidateToken(tokenString, config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			// Extract user ID from claims
			userIDStr, ok := (*claims)["user_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			// Parse the UUID
			userID, err := uuid.Parse(fmt.Sprintf("%v", userIDStr))
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: user_id is not a valid UUID")
			}

			// Set the user ID in the context for downstream handlers
			c.Set(UserIDKey, userID)

			return next(c)
		}
	}
}

// UserIDFromContext returns the authenticated user id previously set by
// JWTAuthMiddleware.
func UserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(UserIDKey).(uuid.UUID)
	return userID, ok
}
