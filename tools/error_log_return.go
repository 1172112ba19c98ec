package tools

import (
	"net/http"

	"pushkit_api/types"

	"cloud.google.com/go/logging"
	"github.com/gin-gonic/gin"
)

func LogError(logger types.EntryLogger, c *gin.Context, err error) {
	LogErrorWithStatus(logger, c, http.StatusBadRequest, err)
}

func LogErrorWithStatus(logger types.EntryLogger, c *gin.Context, code int, err error) {
	logger.Log(logging.Entry{
		Severity: logging.Error,
		Payload:  err.Error(),
		Labels:   map[string]string{"status": "error"},
	})

	c.JSON(code, gin.H{
		"error": err.Error(),
	})
}
