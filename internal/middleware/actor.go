package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// ActorHeader carries the acting account for every mutating call, standing in
// for the transaction sender the upstream gateway authenticates.
const ActorHeader = "X-Actor"

// ActorMiddleware resolves the acting account from the request header and
// stores it on the context for handlers.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		account := strings.TrimSpace(c.GetHeader(ActorHeader))
		if account != "" {
			c.Set("actor", account)
		}
		c.Next()
	}
}
