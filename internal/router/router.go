package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/vendorhub/vendor-approval-api/internal/config"
	"github.com/vendorhub/vendor-approval-api/internal/handlers"
	"github.com/vendorhub/vendor-approval-api/internal/middleware"
)

// HealthChecker reports whether a backing dependency is reachable
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// SetupRouter configures all API routes
func SetupRouter(cfg *config.Config, approvals handlers.ApprovalAPI, health HealthChecker, logger *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.CorrelationID(), middleware.RequestLogger(logger), middleware.Metrics())
	if cfg.CORS.Enabled {
		router.Use(middleware.CORS(cfg.CORS))
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if health != nil {
			if err := health.HealthCheck(ctx); err != nil {
				logger.WithError(err).Warn("Health check failed")
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	applicationHandler := handlers.NewVendorApplicationHandler(approvals)

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(middleware.Authenticate(cfg.Security.JWT, logger))
	{
		applications := v1.Group("/applications")
		{
			applications.POST("", applicationHandler.SubmitApplication)
			applications.GET("", applicationHandler.ListApplications)
			applications.GET("/mine", applicationHandler.ListMyApplications)
			applications.GET("/queue", applicationHandler.ListQueue)
			applications.GET("/:id", applicationHandler.GetApplication)
			applications.GET("/:id/history", applicationHandler.GetApprovalHistory)
			applications.GET("/:id/vendor", applicationHandler.GetVendor)

			// Workflow decisions
			applications.POST("/:id/approve", applicationHandler.Approve)
			applications.POST("/:id/reject", applicationHandler.Reject)
			applications.POST("/:id/request-info", applicationHandler.RequestAdditionalInfo)
			applications.POST("/:id/hold", applicationHandler.PutOnHold)
			applications.POST("/:id/resume", applicationHandler.Resume)
			applications.POST("/:id/resubmit", applicationHandler.Resubmit)
		}
	}

	return router
}
