package routes

import (
	"assetledger/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupEscrowRoutes sets up all routes related to the locked-funds ledger
func SetupEscrowRoutes(r *gin.Engine) {
	escrow := r.Group("/escrow")
	{
		escrow.POST("/lock", handlers.LockFunds)
		escrow.POST("/release", handlers.ReleaseFunds)
		escrow.GET("/:holder", handlers.GetLockedFunds)
	}
}
