package middleware

import (
	"net/http"
	"strings"

	"meetbot/config"

	"github.com/gin-gonic/gin"
)

// WebhookAuthMiddleware validates the shared secret the chat platform sends
// with every webhook call, either as a `token` header or a Bearer token. When
// no secret is configured the check is disabled.
func WebhookAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := config.AppConfig.WebhookToken
		if secret == "" {
			c.Next()
			return
		}

		token := c.GetHeader("token")
		if token == "" {
			if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token != secret {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid webhook token"})
			return
		}
		c.Next()
	}
}
