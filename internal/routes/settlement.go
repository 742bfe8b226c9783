package routes

import (
	"assetledger/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupSettlementRoutes sets up all routes related to the settlement balance
func SetupSettlementRoutes(r *gin.Engine) {
	settlement := r.Group("/settlement")
	{
		settlement.POST("/faucet", handlers.SettlementFaucet)
		settlement.POST("/approve", handlers.ApproveSettlement)
		settlement.GET("/:account", handlers.GetSettlementBalance)
	}
}
