package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rewardsapp/rewards-backend/internal/config"
	"github.com/rewardsapp/rewards-backend/internal/handlers"
	"github.com/rewardsapp/rewards-backend/internal/middleware"
)

// HandlerDependencies carries the handlers the router wires up
type HandlerDependencies struct {
	RewardHandler *handlers.RewardHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	api := router.Group("/api/v1")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	rewards := api.Group("/rewards")
	// Bearer auth is enabled by configuring a JWT secret; without one the
	// API is open, matching single-tenant deployments behind a gateway.
	if cfg.JWT.Secret != "" {
		rewards.Use(middleware.JWTAuthMiddleware(cfg))
	}
	{
		rewards.POST("/transaction", deps.RewardHandler.AddCustomerTransaction)
		rewards.GET("/customers/:customerId", deps.RewardHandler.GetCustomerRewards)
	}

	return router
}
