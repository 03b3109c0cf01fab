package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rishabgems/invoicegen/handlers"
)

func corsConfig() cors.Config {
	return cors.Config{
		AllowOrigins:  []string{"*"}, // Replace * with your domain in production
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
}

// requestLogger tags every request with an id and logs its outcome.
func requestLogger(c *gin.Context) {
	start := time.Now()
	id := c.GetHeader("X-Request-ID")
	if id == "" {
		id = uuid.NewString()
	}
	c.Header("X-Request-ID", id)

	c.Next()

	level := slog.LevelInfo
	if c.Writer.Status() >= http.StatusInternalServerError {
		level = slog.LevelError
	} else if c.Writer.Status() >= http.StatusBadRequest {
		level = slog.LevelWarn
	}
	slog.Log(c.Request.Context(), level, "http request",
		"request_id", id,
		"method", c.Request.Method,
		"path", c.FullPath(),
		"status", c.Writer.Status(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

// SetupRoutes registers the API on router. Invoice and billing routes sit
// behind the login session.
func SetupRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	invoiceHandler *handlers.InvoiceHandler,
) {
	router.Use(gin.CustomRecovery(handlers.RecoverWrapper), requestLogger, cors.New(corsConfig()))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	v1.POST("/login", authHandler.Login)

	secured := v1.Group("", authHandler.RequireSession)
	{
		secured.POST("/amount/words", handlers.AmountWords)
		secured.POST("/billing/summary", handlers.BillingSummary)
		secured.POST("/invoices/preview", invoiceHandler.Preview)
		secured.POST("/invoices/generate", invoiceHandler.Generate)
	}
}
