// Package jwtmw provides JWT issuance and the Gin auth middleware.
// Tokens are signed with the SECRET_KEY the deployment contract requires.
package jwtmw

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"finance_backend/internal/platform/config"
)

// ContextUserID is the gin context key under which the authenticated user's
// ID is stored for downstream handlers.
const ContextUserID = "userID"

// AuthRequired returns a Gin middleware that validates Bearer JWTs signed
// with SECRET_KEY and restricts access to authenticated users.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		secret := os.Getenv(config.EnvKeySecretKey)
		if secret == "" {
			// Startup validates SECRET_KEY, so this only triggers when the
			// env was mutated after boot.
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured"})
			return
		}

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			// Only HMAC is accepted; anything else is a forged token.
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if sub, ok := claims["sub"].(float64); ok { // JWT numbers decode as float64
				c.Set(ContextUserID, uint(sub))
			}
		}
		c.Next()
	}
}
