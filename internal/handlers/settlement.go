package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// FaucetRequest represents the request body for crediting settlement funds
type FaucetRequest struct {
	Account string `json:"account" binding:"required"`
	Amount  int64  `json:"amount" binding:"required"`
}

// ApproveRequest represents the request body for approving a settlement pull
type ApproveRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}

// SettlementFaucet credits a settlement balance, admin-only sandbox helper
func SettlementFaucet(c *gin.Context) {
	account, ok := actor(c)
	if !ok {
		return
	}

	var request FaucetRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := svc.Faucet(account, request.Account, request.Amount); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Balance credited"})
}

// ApproveSettlement lets the caller approve the ledger to pull their funds
func ApproveSettlement(c *gin.Context) {
	account, ok := actor(c)
	if !ok {
		return
	}

	var request ApproveRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := svc.ApproveSettlement(account, request.Amount); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Allowance set"})
}

// GetSettlementBalance returns an account's settlement balance
func GetSettlementBalance(c *gin.Context) {
	account := c.Param("account")

	balance, err := svc.Token().BalanceOf(svc.DB(), account)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": account, "balance": balance})
}
