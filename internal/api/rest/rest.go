package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-rental-engine/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Minting (requires API key authentication)
		v1.POST("/assets", middleware.APIKeyAuth(authCfg), handler.MintAsset)

		// Asset state (public read access)
		v1.GET("/assets/:id", handler.GetAsset)

		// Listing lifecycle (requires authentication; caller is the JWT subject)
		v1.POST("/assets/:id/listing", middleware.Auth(authCfg), handler.ListForRent)
		v1.DELETE("/assets/:id/listing", middleware.Auth(authCfg), handler.CancelListing)

		// Rental lifecycle (renting requires authentication; reclaiming an
		// expired rental is open since it only clears an inactive record)
		v1.POST("/assets/:id/rentals", middleware.Auth(authCfg), handler.RentAsset)
		v1.DELETE("/assets/:id/rentals", handler.ReclaimRental)

		// Usage rights oracle (public read access)
		v1.GET("/assets/:id/usage-rights/:identity", handler.CheckUsageRights)
	}
}
