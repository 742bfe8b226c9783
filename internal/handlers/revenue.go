package handlers

import (
	"net/http"
	"strconv"

	"assetledger/internal/models"
	dbconfig "assetledger/pkg/config"

	"github.com/gin-gonic/gin"
)

// FlagTaxRequest represents the request body for flagging a tax portion
type FlagTaxRequest struct {
	TaxAccount string `json:"tax_account" binding:"required"`
	RateLabel  string `json:"rate_label"`
	Amount     int64  `json:"amount" binding:"required"`
}

// DistributeRequest represents the request body for distributing revenue
type DistributeRequest struct {
	AssetID   uint  `json:"asset_id" binding:"required"`
	NetAmount int64 `json:"net_amount" binding:"required"`
}

// ClaimRequest represents the request body for claiming revenue
type ClaimRequest struct {
	Holder  string `json:"holder" binding:"required"`
	AssetID uint   `json:"asset_id" binding:"required"`
}

// FlagTax records that a tax portion was earmarked for a tax account
func FlagTax(c *gin.Context) {
	account, ok := actor(c)
	if !ok {
		return
	}

	var request FlagTaxRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := svc.FlagTax(account, request.TaxAccount, request.RateLabel, request.Amount); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Tax flagged"})
}

// DistributeRevenue snapshots balances and records pro-rata entitlements
func DistributeRevenue(c *gin.Context) {
	account, ok := actor(c)
	if !ok {
		return
	}

	var request DistributeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshotID, err := svc.DistributeRevenue(account, request.AssetID, request.NetAmount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"snapshot_id": snapshotID})
}

// ClaimRevenue pays out the holder's unclaimed entitlements for an asset
func ClaimRevenue(c *gin.Context) {
	account, ok := actor(c)
	if !ok {
		return
	}

	var request ClaimRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	paid, err := svc.ClaimRevenue(account, request.Holder, request.AssetID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"holder": request.Holder, "paid": paid})
}

// ListSnapshots returns revenue snapshots for an asset
func ListSnapshots(c *gin.Context) {
	assetID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var snapshots []models.RevenueSnapshot
	if err := dbconfig.DB.Where("asset_id = ?", assetID).Find(&snapshots).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snapshots)
}

// GetSnapshot returns one snapshot with its entitlements
func GetSnapshot(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var snapshot models.RevenueSnapshot
	if err := dbconfig.DB.Preload("Entitlements").First(&snapshot, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// ListTaxFlags returns tax bookkeeping records
func ListTaxFlags(c *gin.Context) {
	var flags []models.TaxFlag
	if err := dbconfig.DB.Order("id desc").Find(&flags).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flags)
}
