package middleware

import (
	"errors"
	"net/http"
	"strings"

	jwtsvc "staybook/internal/pkg/jwt"
	"staybook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type accessTokenParser interface {
	ParseAccessToken(tokenStr string) (*jwtsvc.Claims, error)
}

// RequireAuth gates protected routes behind a bearer access token.
// An expired token is always fatal here: callers obtain a fresh access
// token through POST /refresh, the gate itself never rotates anything.
func RequireAuth(tokens accessTokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.Error(c, http.StatusUnauthorized, "MISSING_TOKEN", "Missing Authorization header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid Authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "MISSING_TOKEN", "Empty token")
			c.Abort()
			return
		}

		claims, err := tokens.ParseAccessToken(tokenStr)
		if err != nil {
			if errors.Is(err, jwtsvc.ErrTokenExpired) {
				response.Error(c, http.StatusUnauthorized, "TOKEN_EXPIRED", "Access token expired")
			} else {
				response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
			}
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)

		c.Next()
	}
}
