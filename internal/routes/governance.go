package routes

import (
	"assetledger/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupGovernanceRoutes sets up all routes related to proposals, pauses and params
func SetupGovernanceRoutes(r *gin.Engine) {
	governance := r.Group("/governance")
	{
		governance.GET("/proposals", handlers.ListProposals)
		governance.GET("/proposals/:handle", handlers.GetProposal)
		governance.POST("/proposals", handlers.ProposeUpgrade)
		governance.POST("/proposals/:handle/sign", handlers.SignProposal)
		governance.POST("/pause", handlers.PauseModule)
		governance.POST("/unpause", handlers.UnpauseModule)
		governance.GET("/pauses", handlers.ListPauseStates)
		governance.POST("/audit-events", handlers.LogAuditEvent)
		governance.GET("/params", handlers.GetParams)
		governance.PUT("/params", handlers.SetParams)
	}
}
