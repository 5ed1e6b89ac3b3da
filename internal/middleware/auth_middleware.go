package middleware

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"go-hrm/internal/shared/contextutil"
	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// PrincipalResolver adalah interface lokal.
// Apapun package yang bisa memastikan user aktif boleh masuk ke sini
// (di-wire dengan auth.Service) tanpa membuat import cycle.
type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, userID string) (active bool, err error)
}

// AuthMiddleware resolves the bearer credential into the owning principal.
// Every record read/write downstream is scoped to this owner id.
func AuthMiddleware(resolver PrincipalResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "No token provided", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			code := "INVALID_TOKEN"
			message := "Invalid token"
			if err != nil && strings.Contains(err.Error(), "expired") {
				code = "TOKEN_EXPIRED"
				message = "Token has expired"
			}
			response.Error(c, http.StatusUnauthorized, code, message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token claims", nil)
			c.Abort()
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "User ID not found in token", nil)
			c.Abort()
			return
		}

		if resolver != nil {
			active, err := resolver.ResolvePrincipal(c.Request.Context(), userID)
			if err != nil || !active {
				response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized or account deactivated", nil)
				c.Abort()
				return
			}
		}

		c.Set("owner_id", userID)

		ctx := contextutil.WithOwnerID(c.Request.Context(), userID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
