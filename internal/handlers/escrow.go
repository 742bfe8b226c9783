package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// LockFundsRequest represents the request body for locking funds
type LockFundsRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}

// ReleaseFundsRequest represents the request body for releasing funds
type ReleaseFundsRequest struct {
	To     string `json:"to" binding:"required"`
	Amount int64  `json:"amount" binding:"required"`
}

// LockFunds pulls settlement funds from the caller into the escrow ledger
func LockFunds(c *gin.Context) {
	account, ok := actor(c)
	if !ok {
		return
	}

	var request LockFundsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := svc.LockFunds(account, request.Amount); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Funds locked"})
}

// ReleaseFunds pays out locked funds, escrow-operator only
func ReleaseFunds(c *gin.Context) {
	account, ok := actor(c)
	if !ok {
		return
	}

	var request ReleaseFundsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := svc.ReleaseFunds(account, request.To, request.Amount); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Funds released"})
}

// GetLockedFunds returns the locked balance for a holder
func GetLockedFunds(c *gin.Context) {
	holder := c.Param("holder")

	amount, err := svc.LockedBalance(holder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"holder": holder, "amount": amount})
}
