package handlers

import (
	"log/slog"
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"
)

// RecoverWrapper logs a recovered panic with its stack and answers 500.
// Use with gin.CustomRecovery.
func RecoverWrapper(c *gin.Context, rec any) {
	stack := make([]byte, 8*1024)
	stack = stack[:runtime.Stack(stack, false)]
	slog.Error("panic recovered",
		"error", rec,
		"path", c.Request.URL.Path,
		"stack", string(stack),
	)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
