package middleware

import (
	"net/http"

	"tablero/internal/repository"

	"github.com/gin-gonic/gin"
)

// AdminRequired checks the admin flag against the stored user, not just the
// token claim, so a revoked admin is rejected as soon as the row changes.
// Must run after AuthRequired.
func AdminRequired(users *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := users.GetActiveByID(GetUserID(c))
		if err != nil || !u.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Se requieren privilegios de administrador"})
			return
		}
		c.Next()
	}
}
