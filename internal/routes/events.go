package routes

import (
	"assetledger/internal/notify"

	"github.com/gin-gonic/gin"
)

// SetupEventRoutes exposes the websocket stream of ledger events
func SetupEventRoutes(r *gin.Engine, hub *notify.Hub) {
	if hub == nil {
		return
	}
	r.GET("/events/ws", func(c *gin.Context) {
		hub.HandleWS(c.Writer, c.Request)
	})
}
