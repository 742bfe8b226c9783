package handlers

import (
	"net/http"

	"assetledger/internal/ledger"

	"github.com/gin-gonic/gin"
)

var svc *ledger.Service

// Init wires the ledger service consumed by every handler.
func Init(s *ledger.Service) {
	svc = s
}

// actor returns the acting account resolved by the actor middleware. Mutating
// handlers reject requests without one.
func actor(c *gin.Context) (string, bool) {
	account := c.GetString("actor")
	if account == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-Actor header is required"})
		return "", false
	}
	return account, true
}
