// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/dindin-invest/backend/internal/integration/entrypoint/controller"
	"github.com/dindin-invest/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                   *gin.Engine
	healthController         *controller.HealthController
	calculatorController     *controller.CalculatorController
	recommendationController *controller.RecommendationController
	chatController           *controller.ChatController
	contentController        *controller.ContentController
	aiRateLimiter            *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	calculatorController *controller.CalculatorController,
	recommendationController *controller.RecommendationController,
	chatController *controller.ChatController,
	contentController *controller.ContentController,
	aiRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:         healthController,
		calculatorController:     calculatorController,
		recommendationController: recommendationController,
		chatController:           chatController,
		contentController:        contentController,
		aiRateLimiter:            aiRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
// Routes that call the advisor go through the rate limiter.
func (r *Router) setupAPIRoutes() {
	limited := r.aiRateLimiter.Middleware()

	v1 := r.engine.Group("/api/v1")
	{
		calculate := v1.Group("/calculate")
		{
			calculate.POST("/compound-interest", r.calculatorController.CompoundInterest)
			calculate.POST("/retirement", r.calculatorController.Retirement)
			calculate.POST("/compare", r.calculatorController.Compare)
			calculate.GET("/products", r.calculatorController.Products)
		}

		v1.POST("/recommendations/personalized", limited, r.recommendationController.Personalized)
		v1.POST("/investment-recommendation", r.recommendationController.Allocation)
		v1.GET("/investment-profiles", r.recommendationController.Profiles)

		v1.GET("/market-data", r.contentController.MarketData)

		content := v1.Group("/educational-content")
		{
			content.GET("", r.contentController.ListArticles)
			content.POST("/explain", limited, r.contentController.Explain)
			content.GET("/:id", r.contentController.GetArticle)
		}

		chat := v1.Group("/chat")
		{
			chat.POST("", limited, r.chatController.Send)
			chat.GET("/history", r.chatController.History)
		}
	}
}
