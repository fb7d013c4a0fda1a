// Package server exposes the feedback engine over HTTP with gin.
// Responses use the {success, data} envelope; storage failures map to
// 500 and are never conflated with a learner simply having no data.
package server

import (
	"net/http"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhisek/mathpal/internal/engine"
)

// ingestRate limits per-client event and log writes.
const (
	ingestRatePeriod = time.Second
	ingestRateLimit  = 30
)

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func rateErrorHandler(c *gin.Context, info ratelimit.Info) {
	c.JSON(http.StatusTooManyRequests, gin.H{"success": false, "error": "Too many requests. Try again later."})
}

// Setup builds the gin router with all routes wired to the engine.
func Setup(log *zap.Logger, svc *engine.Service) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))

	interactions := NewInteractionsHandler(log, svc)
	adaptive := NewAdaptiveHandler(log, svc)
	performance := NewPerformanceHandler(log, svc)
	progress := NewProgressHandler(log, svc)

	rateLimitStore := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  ingestRatePeriod,
		Limit: ingestRateLimit,
	})
	limiter := ratelimit.RateLimiter(rateLimitStore, &ratelimit.Options{
		ErrorHandler: rateErrorHandler,
		KeyFunc:      keyFunc,
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		interactionRoutes := api.Group("/interactions")
		{
			interactionRoutes.POST("/event", limiter, interactions.LogEvent)
			interactionRoutes.POST("/events/batch", limiter, interactions.LogEventsBatch)
			interactionRoutes.GET("/session/:userId/:sessionId", interactions.SessionEvents)
			interactionRoutes.GET("/session/:userId/:sessionId/metrics", interactions.SessionMetrics)
			interactionRoutes.GET("/patterns/:userId", interactions.Patterns)
			interactionRoutes.POST("/adaptive-feedback", interactions.AdaptiveFeedback)
		}

		adaptiveRoutes := api.Group("/adaptive")
		{
			adaptiveRoutes.GET("/recommendation/:userId/:moduleName", adaptive.Recommendation)
			adaptiveRoutes.GET("/parameters/:userId/:moduleName", adaptive.Parameters)
			adaptiveRoutes.GET("/trends/:userId/:moduleName", adaptive.Trends)
			adaptiveRoutes.GET("/mastery/:userId/:moduleName/:concept", adaptive.Mastery)
			adaptiveRoutes.GET("/feedback/:userId/:moduleName", adaptive.Feedback)
		}

		performanceRoutes := api.Group("/performance")
		{
			performanceRoutes.POST("/log", limiter, performance.Log)
			performanceRoutes.GET("/session/:sessionId", performance.Session)
			performanceRoutes.GET("/:userId", performance.History)
		}

		progressRoutes := api.Group("/progress")
		{
			progressRoutes.POST("/update", progress.Update)
			progressRoutes.GET("/:userId", progress.User)
			progressRoutes.GET("/:userId/:moduleName", progress.Module)
		}
	}

	return router
}
