package routes

import (
	"assetledger/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupMarketplaceRoutes sets up all routes related to listings and purchases
func SetupMarketplaceRoutes(r *gin.Engine) {
	listings := r.Group("/marketplace/listings")
	{
		listings.GET("", handlers.ListListings)
		listings.GET("/:id", handlers.GetListing)
		listings.POST("", handlers.CreateListing)
		listings.POST("/:id/purchase", handlers.ExecutePurchase)
		listings.POST("/:id/cancel", handlers.CancelListing)
	}
}
