package auth

import (
	"fmt"
	"net/http"
	"strings"

	"voice-assist-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Guard protects operator-facing endpoints with a shared-secret JWT. When no
// secret is configured the guard is a pass-through, so local setups work
// without minting tokens.
type Guard struct {
	secret string
	logger *observability.Logger
}

// NewGuard creates an operator auth guard
func NewGuard(secret string, logger *observability.Logger) *Guard {
	return &Guard{
		secret: secret,
		logger: logger,
	}
}

// Enabled reports whether a secret is configured.
func (g *Guard) Enabled() bool {
	return g.secret != ""
}

// Middleware validates the Bearer token on protected routes.
func (g *Guard) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !g.Enabled() {
			c.Next()
			return
		}

		tokenHeader := c.GetHeader("Authorization")
		if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is missing or invalid"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(tokenHeader, "Bearer ")
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(g.secret), nil
		})
		if err != nil || !token.Valid {
			g.logger.Warn(c.Request.Context(), "rejected operator token", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Next()
	}
}
