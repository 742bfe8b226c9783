package handlers

import (
	"errors"
	"net/http"

	"assetledger/internal/ledger"

	"github.com/gin-gonic/gin"
)

// respondError maps a ledger failure kind to an HTTP status. Every kind stays
// distinguishable for callers; nothing collapses into a generic failure.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ledger.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, ledger.ErrUnauthorized), errors.Is(err, ledger.ErrNotWhitelisted):
		status = http.StatusForbidden
	case errors.Is(err, ledger.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ledger.ErrDuplicateProposal):
		status = http.StatusConflict
	case errors.Is(err, ledger.ErrInsufficientBalance),
		errors.Is(err, ledger.ErrInsufficientLockedFunds),
		errors.Is(err, ledger.ErrThresholdExceeded),
		errors.Is(err, ledger.ErrZeroSupply),
		errors.Is(err, ledger.ErrNothingToClaim),
		errors.Is(err, ledger.ErrListingInactive):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, ledger.ErrModulePaused):
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
