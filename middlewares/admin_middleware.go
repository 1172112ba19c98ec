package middlewares

import (
	"net/http"

	"pushkit_api/types"

	"cloud.google.com/go/logging"
	"firebase.google.com/go/auth"
	"github.com/gin-gonic/gin"
)

// Admin authorization middleware. Must run after AuthMiddleware.
func AdminAuthMiddleware(logger types.EntryLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, exists := c.Get(UserContextKey); exists {
			decodedToken, ok := user.(*auth.Token)
			if !ok {
				logger.Log(logging.Entry{
					Severity: logging.Error,
					Payload:  "Failed to cast the user to *auth.Token",
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unexpected error occurred"})
				return
			}

			if IsAdmin(decodedToken) {
				c.Next()
				return
			}
		}

		logger.Log(logging.Entry{
			Severity: logging.Error,
			Payload:  "You must be an admin to perform this action",
		})
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You must be an admin to perform this action"})
	}
}

// IsAdmin reports whether the verified token carries the admin claim.
func IsAdmin(token *auth.Token) bool {
	if token == nil {
		return false
	}
	admin, ok := token.Claims["admin"].(bool)
	return ok && admin
}

// CurrentUser returns the token stored by AuthMiddleware, or nil.
func CurrentUser(c *gin.Context) *auth.Token {
	user, exists := c.Get(UserContextKey)
	if !exists {
		return nil
	}
	token, _ := user.(*auth.Token)
	return token
}
