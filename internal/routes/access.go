package routes

import (
	"assetledger/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupAccessRoutes sets up all routes related to roles and the identity registry
func SetupAccessRoutes(r *gin.Engine) {
	roles := r.Group("/roles")
	{
		roles.GET("", handlers.ListRoleGrants)
		roles.POST("/grant", handlers.GrantRole)
		roles.POST("/revoke", handlers.RevokeRole)
		roles.GET("/:role/:account", handlers.CheckRole)
	}

	identity := r.Group("/identity")
	{
		identity.POST("/register", handlers.RegisterIdentity)
		identity.POST("/whitelist", handlers.SetWhitelisted)
		identity.GET("/:account", handlers.GetIdentity)
	}
}
