package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"delivery-hooks/internal/middleware"
	"delivery-hooks/internal/services"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	PipelineService services.PipelineService
	AlertService    services.AlertService
	Logger          *logrus.Logger
	RateLimitRPS    float64
	RateLimitBurst  int
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	if config.Logger == nil {
		config.Logger = logrus.StandardLogger()
	}
	if config.RateLimitRPS <= 0 {
		config.RateLimitRPS = 10
	}
	if config.RateLimitBurst <= 0 {
		config.RateLimitBurst = 20
	}

	pipelineHandler := NewPipelineHandler(config.PipelineService, config.Logger)
	webhookHandler := NewWebhookHandler(config.AlertService, config.Logger)

	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger(config.Logger))
	router.Use(middleware.ErrorTracker(config.Logger))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"service":   "delivery-hooks",
			"timestamp": time.Now().UTC(),
		})
	})

	v1 := router.Group("/api/v1")
	v1.Use(middleware.RateLimiter(config.Logger, config.RateLimitRPS, config.RateLimitBurst))
	{
		pipeline := v1.Group("/pipeline")
		{
			pipeline.POST("/trigger", pipelineHandler.TriggerPipeline)
		}

		webhooks := v1.Group("/webhooks")
		{
			webhooks.POST("/github", webhookHandler.ReceiveWebhook)
		}
	}
}
