package middleware

import (
	"net/http"
	"strings"

	"tablero/config"
	"tablero/internal/auth"

	"github.com/gin-gonic/gin"
)

// AuthRequired validates the bearer token and sets user_id and is_admin in
// the gin context.
func AuthRequired(cfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseBearer(cfg, c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token inválido o expirado"})
			return
		}
		c.Set("user_id", claims.UserID)
		c.Set("is_admin", claims.IsAdmin)
		c.Next()
	}
}

// AuthOptional resolves the current user when a valid bearer token is
// present and stays silent otherwise. Public endpoints use it to
// personalize their output without mandating login.
func AuthOptional(cfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := parseBearer(cfg, c); err == nil {
			c.Set("user_id", claims.UserID)
			c.Set("is_admin", claims.IsAdmin)
		}
		c.Next()
	}
}

func parseBearer(cfg *config.JWTConfig, c *gin.Context) (*auth.Claims, error) {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, auth.ErrInvalidToken
	}
	return auth.ParseAccessToken(cfg, parts[1])
}

// GetUserID returns the authenticated user ID from context, 0 when absent.
func GetUserID(c *gin.Context) uint {
	v, _ := c.Get("user_id")
	if v == nil {
		return 0
	}
	return v.(uint)
}
