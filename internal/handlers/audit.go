package handlers

import (
	"net/http"
	"strconv"

	"assetledger/internal/models"
	dbconfig "assetledger/pkg/config"

	"github.com/gin-gonic/gin"
)

// ListAuditEntries returns the audit log, newest first, paginated.
// Query parameters: page (default: 1), page_size (default: 50, max: 200),
// action_type, actor
func ListAuditEntries(c *gin.Context) {
	page := 1
	if p := c.Query("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed > 0 {
			page = parsed
		}
	}

	pageSize := 50
	if ps := c.Query("page_size"); ps != "" {
		if parsed, err := strconv.Atoi(ps); err == nil && parsed > 0 && parsed <= 200 {
			pageSize = parsed
		}
	}

	query := dbconfig.DB.Model(&models.AuditEntry{})
	if actionType := c.Query("action_type"); actionType != "" {
		query = query.Where("action_type = ?", actionType)
	}
	if auditActor := c.Query("actor"); auditActor != "" {
		query = query.Where("actor = ?", auditActor)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var entries []models.AuditEntry
	if err := query.Order("id desc").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entries":   entries,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}
