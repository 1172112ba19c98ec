package handlers

import (
	"net/http"
	"os"

	"pushkit_api/config"
	"pushkit_api/tools"
	"pushkit_api/types"

	"github.com/gin-gonic/gin"
)

// GetConfigHandler serves the public web configuration.
func GetConfigHandler(cfg types.PlatformConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cfg)
	}
}

func GetConfigOptionsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, config.Options(os.Getenv))
	}
}

// HealthHandler reports whether every handle was initialized. With ?bucket=1
// it also checks the configured storage bucket.
func HealthHandler(app *types.FirebaseApp) gin.HandlerFunc {
	return func(c *gin.Context) {
		handles := gin.H{
			"admin":     app.Admin != nil,
			"firestore": app.DB != nil,
			"storage":   app.Storage != nil,
			"auth":      app.Auth != nil,
			"messaging": app.MessageClient != nil,
			"registrar": app.Registrar != nil,
		}

		for _, ok := range handles {
			if !ok.(bool) {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "handles": handles})
				return
			}
		}

		if c.Query("bucket") == "1" {
			bucket, err := tools.CheckDefaultBucket(c, app.Storage)
			if err != nil {
				tools.LogErrorWithStatus(app.Logger, c, http.StatusServiceUnavailable, err)
				return
			}
			handles["bucket"] = bucket
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok", "handles": handles})
	}
}
