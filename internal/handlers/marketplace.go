package handlers

import (
	"net/http"
	"strconv"

	"assetledger/internal/models"
	dbconfig "assetledger/pkg/config"

	"github.com/gin-gonic/gin"
)

// CreateListingRequest represents the request body for creating a listing
type CreateListingRequest struct {
	AssetID      uint  `json:"asset_id" binding:"required"`
	PricePerUnit int64 `json:"price_per_unit" binding:"required"`
	Units        int64 `json:"units" binding:"required"`
}

// PurchaseRequest represents the request body for executing a purchase
type PurchaseRequest struct {
	Quantity int64 `json:"quantity" binding:"required"`
}

// CreateListing opens a new listing for the acting seller
func CreateListing(c *gin.Context) {
	seller, ok := actor(c)
	if !ok {
		return
	}

	var request CreateListingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	listingID, err := svc.CreateListing(seller, request.AssetID, request.PricePerUnit, request.Units)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"listing_id": listingID})
}

// ExecutePurchase fills a listing for the acting buyer
func ExecutePurchase(c *gin.Context) {
	buyer, ok := actor(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var request PurchaseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := svc.ExecutePurchase(buyer, uint(id), request.Quantity); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Purchase executed"})
}

// CancelListing deactivates a listing and returns escrowed units
func CancelListing(c *gin.Context) {
	account, ok := actor(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := svc.CancelListing(account, uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Listing cancelled"})
}

// ListListings returns listings, optionally filtered by asset or active flag
func ListListings(c *gin.Context) {
	query := dbconfig.DB.Model(&models.Listing{})

	if assetID := c.Query("asset_id"); assetID != "" {
		query = query.Where("asset_id = ?", assetID)
	}
	if active := c.Query("active"); active != "" {
		query = query.Where("active = ?", active == "true")
	}

	var listings []models.Listing
	if err := query.Find(&listings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, listings)
}

// GetListing returns a specific listing by ID
func GetListing(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var listing models.Listing
	if err := dbconfig.DB.First(&listing, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}
	c.JSON(http.StatusOK, listing)
}
