package handlers

import (
	"net/http"

	"assetledger/internal/models"
	dbconfig "assetledger/pkg/config"

	"github.com/gin-gonic/gin"
)

// RoleRequest represents the request body for granting or revoking a role
type RoleRequest struct {
	Role    string `json:"role" binding:"required"`
	Account string `json:"account" binding:"required"`
}

// IdentityRequest represents the request body for registering an identity
type IdentityRequest struct {
	Account      string `json:"account" binding:"required"`
	IdentityHash string `json:"identity_hash" binding:"required"`
}

// WhitelistRequest represents the request body for whitelisting an account
type WhitelistRequest struct {
	Account     string `json:"account" binding:"required"`
	Whitelisted *bool  `json:"whitelisted" binding:"required"`
}

// GrantRole grants a role to an account
func GrantRole(c *gin.Context) {
	account, ok := actor(c)
	if !ok {
		return
	}

	var request RoleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := svc.GrantRole(account, request.Role, request.Account); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Role granted"})
}

// RevokeRole removes a role from an account
func RevokeRole(c *gin.Context) {
	account, ok := actor(c)
	if !ok {
		return
	}

	var request RoleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := svc.RevokeRole(account, request.Role, request.Account); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Role revoked"})
}

// CheckRole reports whether an account holds a role
func CheckRole(c *gin.Context) {
	role := c.Param("role")
	account := c.Param("account")

	has, err := svc.HasRole(role, account)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": role, "account": account, "has_role": has})
}

// ListRoleGrants returns all role grants
func ListRoleGrants(c *gin.Context) {
	var grants []models.RoleGrant
	if err := dbconfig.DB.Find(&grants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, grants)
}

// RegisterIdentity records an identity hash for an account
func RegisterIdentity(c *gin.Context) {
	account, ok := actor(c)
	if !ok {
		return
	}

	var request IdentityRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := svc.RegisterIdentity(account, request.Account, request.IdentityHash); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Identity registered"})
}

// SetWhitelisted flips an account's whitelist status
func SetWhitelisted(c *gin.Context) {
	account, ok := actor(c)
	if !ok {
		return
	}

	var request WhitelistRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := svc.SetWhitelisted(account, request.Account, *request.Whitelisted); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Whitelist updated"})
}

// GetIdentity returns the identity record for an account
func GetIdentity(c *gin.Context) {
	var record models.IdentityRecord
	if err := dbconfig.DB.Where("account = ?", c.Param("account")).First(&record).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}
	c.JSON(http.StatusOK, record)
}
