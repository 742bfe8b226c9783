package ledger

import (
	"fmt"
	"testing"

	"assetledger/internal/models"
	"assetledger/pkg/config"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Well-known test accounts.
const (
	admin       = "admin"
	fundManager = "fund-manager"
	platformMgr = "platform-manager"
	escrowOp    = "escrow-operator"
	owner       = "owner"
	investorA   = "investor-a"
	investorB   = "investor-b"
	investorC   = "investor-c"
	taxAccount  = "tax-account"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.MigrateModels(db))

	svc, err := New(db, NewSettlementLedger(), nil, admin)
	require.NoError(t, err)

	require.NoError(t, svc.GrantRole(admin, RoleFundManager, fundManager))
	require.NoError(t, svc.GrantRole(admin, RolePlatformManager, platformMgr))
	require.NoError(t, svc.GrantRole(admin, RoleEscrowOperator, escrowOp))
	return svc
}

// fund credits a settlement balance and approves the custody account to pull
// the full amount, the way a caller pre-approves the contract.
func fund(t *testing.T, svc *Service, account string, amount int64) {
	t.Helper()
	require.NoError(t, svc.Faucet(admin, account, amount))
	require.NoError(t, svc.ApproveSettlement(account, amount))
}

// issueAsset mints a fixed-supply asset to owner.
func issueAsset(t *testing.T, svc *Service, totalUnits int64) uint {
	t.Helper()
	assetID, err := svc.IssueAsset(fundManager, owner, totalUnits, "https://assets.example/prop-1", "doc-hash-1", false)
	require.NoError(t, err)
	return assetID
}

// totalUnitsHeld sums every balance row of the asset, marketplace escrow
// included. Must always equal the issued supply.
func totalUnitsHeld(t *testing.T, svc *Service, assetID uint) int64 {
	t.Helper()
	var total int64
	err := svc.DB().Model(&models.AssetBalance{}).
		Where("asset_id = ?", assetID).
		Select("COALESCE(SUM(units), 0)").Scan(&total).Error
	require.NoError(t, err)
	return total
}

func settlementBalance(t *testing.T, svc *Service, account string) int64 {
	t.Helper()
	balance, err := svc.Token().BalanceOf(svc.DB(), account)
	require.NoError(t, err)
	return balance
}
