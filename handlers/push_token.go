package handlers

import (
	"net/http"

	"pushkit_api/notifications"
	"pushkit_api/types"

	"github.com/gin-gonic/gin"
)

// GetPushTokenHandler requests a push registration token. Failures are
// reported as 503 without the underlying error.
func GetPushTokenHandler(logger types.EntryLogger, requester types.TokenRequester, vapidKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := notifications.GetPushToken(c.Request.Context(), requester, vapidKey, logger)
		if !ok {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "push token unavailable"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token": token,
		})
	}
}
