package routes

import (
	"assetledger/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupAuditRoutes sets up all routes related to the audit log
func SetupAuditRoutes(r *gin.Engine) {
	audit := r.Group("/audit-log")
	{
		audit.GET("", handlers.ListAuditEntries)
	}
}
