package handlers

import (
	"net/http"
	"strconv"

	"assetledger/internal/models"
	dbconfig "assetledger/pkg/config"

	"github.com/gin-gonic/gin"
)

// IssueAssetRequest represents the request body for issuing an asset
type IssueAssetRequest struct {
	To                string `json:"to" binding:"required"`
	TotalUnits        int64  `json:"total_units" binding:"required"`
	MetadataRef       string `json:"metadata_ref"`
	DocHash           string `json:"doc_hash"`
	WhitelistEnforced bool   `json:"whitelist_enforced"`
}

// TransferRequest represents the request body for a unit transfer
type TransferRequest struct {
	From  string `json:"from" binding:"required"`
	To    string `json:"to" binding:"required"`
	Units int64  `json:"units" binding:"required"`
}

// WhitelistPolicyRequest represents the request body for toggling whitelist enforcement
type WhitelistPolicyRequest struct {
	Enforced *bool `json:"enforced" binding:"required"`
}

// IssueAsset creates a new asset record and credits the full supply
func IssueAsset(c *gin.Context) {
	account, ok := actor(c)
	if !ok {
		return
	}

	var request IssueAssetRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assetID, err := svc.IssueAsset(account, request.To, request.TotalUnits,
		request.MetadataRef, request.DocHash, request.WhitelistEnforced)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"asset_id": assetID})
}

// ListAssets returns all asset records
func ListAssets(c *gin.Context) {
	var assets []models.AssetRecord
	if err := dbconfig.DB.Find(&assets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, assets)
}

// GetAsset returns a specific asset record by ID
func GetAsset(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var asset models.AssetRecord
	if err := dbconfig.DB.First(&asset, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}
	c.JSON(http.StatusOK, asset)
}

// GetAssetBalances returns every holder balance row for an asset
func GetAssetBalances(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var balances []models.AssetBalance
	if err := dbconfig.DB.Where("asset_id = ? AND units > 0", id).Find(&balances).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, balances)
}

// GetHolderBalance returns one holder's balance for an asset
func GetHolderBalance(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	units, err := svc.BalanceOf(uint(id), c.Param("holder"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"asset_id": id, "holder": c.Param("holder"), "units": units})
}

// TransferUnits moves units between holders
func TransferUnits(c *gin.Context) {
	account, ok := actor(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var request TransferRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := svc.Transfer(account, uint(id), request.From, request.To, request.Units); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Transfer completed"})
}

// SetWhitelistPolicy toggles whitelist enforcement for an asset
func SetWhitelistPolicy(c *gin.Context) {
	account, ok := actor(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var request WhitelistPolicyRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := svc.SetWhitelistPolicy(account, uint(id), *request.Enforced); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Whitelist policy updated"})
}
