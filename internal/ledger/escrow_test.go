package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockAndReleaseFunds(t *testing.T) {
	svc := newTestService(t)
	fund(t, svc, investorA, 100)

	require.NoError(t, svc.LockFunds(investorA, 60))

	locked, err := svc.LockedBalance(investorA)
	require.NoError(t, err)
	assert.Equal(t, int64(60), locked)
	assert.Equal(t, int64(40), settlementBalance(t, svc, investorA))
	assert.Equal(t, int64(60), settlementBalance(t, svc, CustodyAccount))

	require.NoError(t, svc.ReleaseFunds(escrowOp, investorA, 25))

	locked, err = svc.LockedBalance(investorA)
	require.NoError(t, err)
	assert.Equal(t, int64(35), locked)
	assert.Equal(t, int64(65), settlementBalance(t, svc, investorA))
	assert.Equal(t, int64(35), settlementBalance(t, svc, CustodyAccount))
}

func TestLockFundsAccumulates(t *testing.T) {
	svc := newTestService(t)
	fund(t, svc, investorA, 100)

	require.NoError(t, svc.LockFunds(investorA, 30))
	require.NoError(t, svc.LockFunds(investorA, 20))

	locked, err := svc.LockedBalance(investorA)
	require.NoError(t, err)
	assert.Equal(t, int64(50), locked)
}

func TestLockFundsRequiresFunding(t *testing.T) {
	svc := newTestService(t)

	// No faucet, no approval: the pull fails and no locked row survives.
	err := svc.LockFunds(investorA, 10)
	require.Error(t, err)

	locked, err := svc.LockedBalance(investorA)
	require.NoError(t, err)
	assert.Equal(t, int64(0), locked)
}

func TestReleaseFundsOperatorOnly(t *testing.T) {
	svc := newTestService(t)
	fund(t, svc, investorA, 100)
	require.NoError(t, svc.LockFunds(investorA, 50))

	err := svc.ReleaseFunds(investorA, investorA, 10)
	assert.ErrorIs(t, err, ErrUnauthorized)

	err = svc.ReleaseFunds(admin, investorA, 10)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestReleaseFundsBeyondLocked(t *testing.T) {
	svc := newTestService(t)
	fund(t, svc, investorA, 100)
	require.NoError(t, svc.LockFunds(investorA, 50))

	err := svc.ReleaseFunds(escrowOp, investorA, 51)
	assert.ErrorIs(t, err, ErrInsufficientLockedFunds)

	// Releasing for a holder with nothing locked fails the same way.
	err = svc.ReleaseFunds(escrowOp, investorB, 1)
	assert.ErrorIs(t, err, ErrInsufficientLockedFunds)

	// Exhaust the balance, then once more.
	require.NoError(t, svc.ReleaseFunds(escrowOp, investorA, 50))
	err = svc.ReleaseFunds(escrowOp, investorA, 1)
	assert.ErrorIs(t, err, ErrInsufficientLockedFunds)

	assert.Equal(t, int64(100), settlementBalance(t, svc, investorA))
}
