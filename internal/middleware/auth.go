package middleware

import (
	"net/http"
	"strings"

	"hotel-rooms-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by GuestAuth
const (
	GuestIDKey  = "guestID"
	GuestCPFKey = "guestCPF"
)

// GuestAuth validates the guest JWT from the Authorization header
func GuestAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}

		// Check Bearer prefix
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid authorization format. Use: Bearer <token>")
			c.Abort()
			return
		}

		claims, err := utils.ValidateAccessToken(parts[1])
		if err != nil || claims.GuestID == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(GuestIDKey, claims.GuestID)
		c.Set(GuestCPFKey, claims.CPF)

		c.Next()
	}
}
