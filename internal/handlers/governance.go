package handlers

import (
	"net/http"

	"assetledger/internal/models"
	dbconfig "assetledger/pkg/config"

	"github.com/gin-gonic/gin"
)

// ProposalRequest represents the request body for creating a proposal
type ProposalRequest struct {
	Handle      string `json:"handle" binding:"required"`
	Module      string `json:"module" binding:"required"`
	Description string `json:"description"`
}

// PauseRequest represents the request body for pausing or unpausing a module
type PauseRequest struct {
	Module string `json:"module" binding:"required"`
}

// AuditEventRequest represents the request body for logging an audit event
type AuditEventRequest struct {
	ActionType string `json:"action_type" binding:"required"`
	Detail     string `json:"detail"`
}

// ParamsRequest represents the request body for updating governance params
type ParamsRequest struct {
	MaxSellPercent  int64 `json:"max_sell_percent"`
	SignerThreshold int   `json:"signer_threshold"`
}

// ProposeUpgrade creates a new upgrade proposal
func ProposeUpgrade(c *gin.Context) {
	account, ok := actor(c)
	if !ok {
		return
	}

	var request ProposalRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := svc.ProposeUpgrade(account, request.Handle, request.Module, request.Description); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Proposal created"})
}

// SignProposal adds the caller to a proposal's signer set
func SignProposal(c *gin.Context) {
	account, ok := actor(c)
	if !ok {
		return
	}

	if err := svc.SignProposal(account, c.Param("handle")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Proposal signed"})
}

// ListProposals returns all proposals with signatures
func ListProposals(c *gin.Context) {
	var proposals []models.Proposal
	if err := dbconfig.DB.Preload("Signatures").Find(&proposals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, proposals)
}

// GetProposal returns one proposal by handle
func GetProposal(c *gin.Context) {
	var proposal models.Proposal
	if err := dbconfig.DB.Preload("Signatures").
		Where("handle = ?", c.Param("handle")).First(&proposal).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}
	c.JSON(http.StatusOK, proposal)
}

// PauseModule sets the kill switch for a module
func PauseModule(c *gin.Context) {
	account, ok := actor(c)
	if !ok {
		return
	}

	var request PauseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := svc.PauseModule(account, request.Module); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Module paused"})
}

// UnpauseModule clears the kill switch for a module
func UnpauseModule(c *gin.Context) {
	account, ok := actor(c)
	if !ok {
		return
	}

	var request PauseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := svc.UnpauseModule(account, request.Module); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Module unpaused"})
}

// ListPauseStates returns all module pause flags
func ListPauseStates(c *gin.Context) {
	var pauses []models.ModulePause
	if err := dbconfig.DB.Find(&pauses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pauses)
}

// LogAuditEvent appends an audit entry and emits its notification
func LogAuditEvent(c *gin.Context) {
	account, ok := actor(c)
	if !ok {
		return
	}

	var request AuditEventRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := svc.LogAuditEvent(account, request.ActionType, request.Detail); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Audit event logged"})
}

// SetParams updates governance-tunable settings
func SetParams(c *gin.Context) {
	account, ok := actor(c)
	if !ok {
		return
	}

	var request ParamsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := svc.SetParams(account, request.MaxSellPercent, request.SignerThreshold); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Params updated"})
}

// GetParams returns the current governance settings
func GetParams(c *gin.Context) {
	p, err := svc.Params()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}
