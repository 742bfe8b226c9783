package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrantAndRevokeRole(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.GrantRole(admin, RoleFundManager, investorA))
	ok, err := svc.HasRole(RoleFundManager, investorA)
	require.NoError(t, err)
	assert.True(t, ok)

	// Granting twice is a no-op success.
	require.NoError(t, svc.GrantRole(admin, RoleFundManager, investorA))

	require.NoError(t, svc.RevokeRole(admin, RoleFundManager, investorA))
	ok, err = svc.HasRole(RoleFundManager, investorA)
	require.NoError(t, err)
	assert.False(t, ok)

	// Revoked accounts lose access immediately.
	_, err = svc.IssueAsset(investorA, investorA, 10, "ref", "hash", false)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGrantRoleAdminOnly(t *testing.T) {
	svc := newTestService(t)

	err := svc.GrantRole(fundManager, RoleFundManager, investorA)
	assert.ErrorIs(t, err, ErrUnauthorized)
	err = svc.RevokeRole(fundManager, RoleFundManager, fundManager)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGrantRoleRejectsUnknownRole(t *testing.T) {
	svc := newTestService(t)

	err := svc.GrantRole(admin, "SUPERUSER", investorA)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	err = svc.GrantRole(admin, RoleFundManager, "")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestBootstrapAdminSeeded(t *testing.T) {
	svc := newTestService(t)

	ok, err := svc.HasRole(RoleAdmin, admin)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRegisterIdentityAndWhitelist(t *testing.T) {
	svc := newTestService(t)

	err := svc.RegisterIdentity(owner, investorA, "did-hash-a")
	assert.ErrorIs(t, err, ErrUnauthorized)

	require.NoError(t, svc.RegisterIdentity(platformMgr, investorA, "did-hash-a"))
	ok, err := svc.IsWhitelisted(investorA)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, svc.SetWhitelisted(platformMgr, investorA, true))
	ok, err = svc.IsWhitelisted(investorA)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, svc.SetWhitelisted(admin, investorA, false))
	ok, err = svc.IsWhitelisted(investorA)
	require.NoError(t, err)
	assert.False(t, ok)
}
