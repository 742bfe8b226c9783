package ledger

import (
	"fmt"
	"sort"
	"time"

	"assetledger/internal/models"
	"assetledger/pkg/utils"

	"gorm.io/gorm"
)

// FlagTax records that a tax portion was earmarked for a tax account. Pure
// bookkeeping: moving the tax and the remaining net amount is the caller's
// responsibility before DistributeRevenue runs.
func (s *Service) FlagTax(actor, taxAccount, rateLabel string, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: tax amount must be positive", ErrInvalidArgument)
	}
	if taxAccount == "" {
		return fmt.Errorf("%w: tax account must not be empty", ErrInvalidArgument)
	}

	err := s.run(func(tx *gorm.DB) error {
		if err := requireRole(tx, actor, RolePlatformManager, RoleFundManager); err != nil {
			return err
		}
		flag := models.TaxFlag{
			TaxAccount: taxAccount,
			RateLabel:  rateLabel,
			Amount:     amount,
			FlaggedBy:  actor,
		}
		if err := tx.Create(&flag).Error; err != nil {
			return err
		}
		return audit(tx, "TAX_FLAGGED",
			fmt.Sprintf("%d (%s) earmarked for %s", amount, rateLabel, taxAccount), actor)
	})
	if err != nil {
		return err
	}

	event := notifyEvent("TAX_FLAGGED", fmt.Sprintf("%d (%s) earmarked for %s", amount, rateLabel, taxAccount), actor)
	event.Amount = amount
	s.emit(event)
	return nil
}

// DistributeRevenue pulls the already-net amount into custody, snapshots the
// asset's balance distribution and records each holder's floor-division
// entitlement. Units escrowed in active listings count toward their seller.
// The rounding residual stays in custody and is never redistributed.
func (s *Service) DistributeRevenue(actor string, assetID uint, netAmount int64) (uint, error) {
	if netAmount <= 0 {
		return 0, fmt.Errorf("%w: net amount must be positive", ErrInvalidArgument)
	}

	var snapshot models.RevenueSnapshot
	err := s.run(func(tx *gorm.DB) error {
		if err := requireUnpaused(tx, ModuleRevenue); err != nil {
			return err
		}
		if err := requireRole(tx, actor, RolePlatformManager, RoleFundManager); err != nil {
			return err
		}
		if _, err := getAsset(tx, assetID); err != nil {
			return err
		}

		holdings, supply, err := snapshotHoldings(tx, assetID)
		if err != nil {
			return err
		}
		if supply == 0 {
			return fmt.Errorf("%w: asset %d", ErrZeroSupply, assetID)
		}

		if err := s.token.TransferFrom(tx, CustodyAccount, actor, CustodyAccount, netAmount); err != nil {
			return err
		}

		snapshot = models.RevenueSnapshot{
			AssetID:               assetID,
			NetAmount:             netAmount,
			TotalSupplyAtSnapshot: supply,
			DistributedBy:         actor,
		}
		if err := tx.Create(&snapshot).Error; err != nil {
			return err
		}

		for _, h := range holdings {
			entitlement := models.RevenueEntitlement{
				SnapshotID: snapshot.ID,
				Holder:     h.holder,
				Units:      h.units,
				Amount:     utils.ProRataShare(netAmount, h.units, supply),
			}
			if err := tx.Create(&entitlement).Error; err != nil {
				return err
			}
		}

		return audit(tx, "REVENUE_DISTRIBUTED",
			fmt.Sprintf("asset %d: %d over supply %d", assetID, netAmount, supply), actor)
	})
	if err != nil {
		return 0, err
	}

	event := notifyEvent("REVENUE_DISTRIBUTED", fmt.Sprintf("%d distributed over snapshot %d", netAmount, snapshot.ID), actor)
	event.AssetID = assetID
	event.Amount = netAmount
	s.emit(event)
	return snapshot.ID, nil
}

// ClaimRevenue pays the holder's outstanding entitlement across all unclaimed
// snapshots of the asset. The claimed flags flip before the payout leaves
// custody, so a snapshot entry pays exactly once; with nothing outstanding
// the call fails with ErrNothingToClaim.
func (s *Service) ClaimRevenue(actor, holder string, assetID uint) (int64, error) {
	if holder == "" {
		return 0, fmt.Errorf("%w: holder must not be empty", ErrInvalidArgument)
	}

	var total int64
	err := s.run(func(tx *gorm.DB) error {
		if err := requireUnpaused(tx, ModuleRevenue); err != nil {
			return err
		}
		if _, err := getAsset(tx, assetID); err != nil {
			return err
		}

		var entitlements []models.RevenueEntitlement
		if err := tx.Joins("JOIN revenue_snapshot ON revenue_snapshot.id = revenue_entitlement.snapshot_id").
			Where("revenue_snapshot.asset_id = ? AND revenue_entitlement.holder = ? AND revenue_entitlement.claimed = ?",
				assetID, holder, false).
			Find(&entitlements).Error; err != nil {
			return err
		}

		total = 0
		for _, e := range entitlements {
			total += e.Amount
		}
		if total == 0 {
			return fmt.Errorf("%w: %s has no unclaimed entitlement for asset %d",
				ErrNothingToClaim, holder, assetID)
		}

		now := time.Now().UTC()
		for _, e := range entitlements {
			res := tx.Model(&models.RevenueEntitlement{}).
				Where("id = ? AND claimed = ?", e.ID, false).
				Updates(map[string]interface{}{"claimed": true, "claimed_at": &now})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: entitlement %d already claimed", ErrNothingToClaim, e.ID)
			}
		}

		if err := s.token.Transfer(tx, CustodyAccount, holder, total); err != nil {
			return err
		}
		return audit(tx, "REVENUE_CLAIMED",
			fmt.Sprintf("asset %d: %s claimed %d", assetID, holder, total), actor)
	})
	if err != nil {
		return 0, err
	}

	event := notifyEvent("REVENUE_CLAIMED", fmt.Sprintf("%s claimed %d", holder, total), actor)
	event.AssetID = assetID
	event.Amount = total
	s.emit(event)
	return total, nil
}

type holding struct {
	holder string
	units  int64
}

// snapshotHoldings reads the current balance distribution, attributing units
// sitting in marketplace escrow back to their listing's seller so the
// snapshot supply equals the asset's fixed total.
func snapshotHoldings(tx *gorm.DB, assetID uint) ([]holding, int64, error) {
	var balances []models.AssetBalance
	if err := tx.Where("asset_id = ? AND units > 0", assetID).Find(&balances).Error; err != nil {
		return nil, 0, err
	}

	units := make(map[string]int64)
	for _, b := range balances {
		units[b.Holder] += b.Units
	}

	if escrowed := units[MarketplaceEscrow]; escrowed > 0 {
		var listings []models.Listing
		if err := tx.Where("asset_id = ? AND active = ?", assetID, true).Find(&listings).Error; err != nil {
			return nil, 0, err
		}
		for _, l := range listings {
			units[l.Seller] += l.UnitsAvailable
			units[MarketplaceEscrow] -= l.UnitsAvailable
		}
		delete(units, MarketplaceEscrow)
	}

	holders := make([]string, 0, len(units))
	for h, u := range units {
		if u > 0 {
			holders = append(holders, h)
		}
	}
	sort.Strings(holders)

	holdings := make([]holding, 0, len(holders))
	var supply int64
	for _, h := range holders {
		holdings = append(holdings, holding{holder: h, units: units[h]})
		supply += units[h]
	}
	return holdings, supply, nil
}
