package routes

import (
	"assetledger/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupAssetRoutes sets up all routes related to the asset registry
func SetupAssetRoutes(r *gin.Engine) {
	assets := r.Group("/assets")
	{
		assets.GET("", handlers.ListAssets)
		assets.GET("/:id", handlers.GetAsset)
		assets.POST("", handlers.IssueAsset)
		assets.GET("/:id/balances", handlers.GetAssetBalances)
		assets.GET("/:id/balances/:holder", handlers.GetHolderBalance)
		assets.POST("/:id/transfer", handlers.TransferUnits)
		assets.PUT("/:id/whitelist-policy", handlers.SetWhitelistPolicy)
	}
}
