package routes

import (
	"assetledger/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupMarketStatRoutes sets up all routes related to market stat snapshots
func SetupMarketStatRoutes(r *gin.Engine) {
	stats := r.Group("/market-stats")
	{
		stats.GET("", handlers.ListMarketStats)
	}
}
