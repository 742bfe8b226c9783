package ledger

import "errors"

// Failure kinds. Every operation fails with exactly one of these (possibly
// wrapped with detail); callers match with errors.Is.
var (
	ErrUnauthorized            = errors.New("unauthorized")
	ErrInvalidArgument         = errors.New("invalid argument")
	ErrInsufficientBalance     = errors.New("insufficient balance")
	ErrInsufficientLockedFunds = errors.New("insufficient locked funds")
	ErrThresholdExceeded       = errors.New("threshold exceeded")
	ErrModulePaused            = errors.New("module paused")
	ErrZeroSupply              = errors.New("zero supply")
	ErrNothingToClaim          = errors.New("nothing to claim")
	ErrListingInactive         = errors.New("listing inactive")
	ErrNotWhitelisted          = errors.New("not whitelisted")
	ErrDuplicateProposal       = errors.New("duplicate proposal")
	ErrNotFound                = errors.New("not found")
)
