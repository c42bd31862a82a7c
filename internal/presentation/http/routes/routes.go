package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/recibos/ticketero-api/internal/config"
	"github.com/recibos/ticketero-api/internal/presentation/http/handler"
	"github.com/recibos/ticketero-api/internal/presentation/http/middleware"
	"go.uber.org/zap"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Ticket *handler.TicketHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg    *config.Config
	Logger *zap.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		v1.POST("/tickets", h.Ticket.Generate)
	}

	return router
}
