package handlers

import (
	"net/http"

	"assetledger/internal/models"
	dbconfig "assetledger/pkg/config"

	"github.com/gin-gonic/gin"
)

// ListMarketStats returns recorded market stat snapshots, newest first
func ListMarketStats(c *gin.Context) {
	var stats []models.MarketStatRecord
	if err := dbconfig.DB.Order("id desc").Limit(288).Find(&stats).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
