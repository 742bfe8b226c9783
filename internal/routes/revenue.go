package routes

import (
	"assetledger/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupRevenueRoutes sets up all routes related to revenue distribution
func SetupRevenueRoutes(r *gin.Engine) {
	revenue := r.Group("/revenue")
	{
		revenue.POST("/flag-tax", handlers.FlagTax)
		revenue.POST("/distribute", handlers.DistributeRevenue)
		revenue.POST("/claim", handlers.ClaimRevenue)
		revenue.GET("/tax-flags", handlers.ListTaxFlags)
		revenue.GET("/snapshots/:id", handlers.GetSnapshot)
		revenue.GET("/by-asset/:id", handlers.ListSnapshots)
	}
}
