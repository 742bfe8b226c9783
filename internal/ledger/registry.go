package ledger

import (
	"errors"
	"fmt"

	"assetledger/internal/models"

	"gorm.io/gorm"
)

// IssueAsset creates an asset record and credits the full fixed supply to the
// recipient. Restricted to the fund manager. The returned id is monotonic and
// visible to the very next operation.
func (s *Service) IssueAsset(actor, to string, totalUnits int64, metadataRef, docHash string, whitelistEnforced bool) (uint, error) {
	if totalUnits <= 0 {
		return 0, fmt.Errorf("%w: total units must be positive", ErrInvalidArgument)
	}
	if to == "" {
		return 0, fmt.Errorf("%w: recipient must not be empty", ErrInvalidArgument)
	}

	var asset models.AssetRecord
	err := s.run(func(tx *gorm.DB) error {
		if err := requireRole(tx, actor, RoleFundManager); err != nil {
			return err
		}

		asset = models.AssetRecord{
			TotalUnits:        totalUnits,
			MetadataRef:       metadataRef,
			DocHash:           docHash,
			IssuedTo:          to,
			WhitelistEnforced: whitelistEnforced,
		}
		if err := tx.Create(&asset).Error; err != nil {
			return err
		}

		balance := models.AssetBalance{AssetID: asset.ID, Holder: to, Units: totalUnits}
		if err := tx.Create(&balance).Error; err != nil {
			return err
		}

		return audit(tx, "ASSET_ISSUED",
			fmt.Sprintf("asset %d: %d units to %s", asset.ID, totalUnits, to), actor)
	})
	if err != nil {
		return 0, err
	}

	event := notifyEvent("ASSET_ISSUED", fmt.Sprintf("%d units to %s", totalUnits, to), actor)
	event.AssetID = asset.ID
	event.Amount = totalUnits
	s.emit(event)
	return asset.ID, nil
}

// Transfer moves units between holders. The actor must be the source holder
// or an admin. Preserves the closed-system invariant: the debit and credit
// commit together or not at all.
func (s *Service) Transfer(actor string, assetID uint, from, to string, units int64) error {
	if units <= 0 {
		return fmt.Errorf("%w: units must be positive", ErrInvalidArgument)
	}
	if from == to {
		return fmt.Errorf("%w: transfer to self", ErrInvalidArgument)
	}

	err := s.run(func(tx *gorm.DB) error {
		if actor != from {
			if err := requireRole(tx, actor, RoleAdmin); err != nil {
				return err
			}
		}

		asset, err := getAsset(tx, assetID)
		if err != nil {
			return err
		}
		if err := requireWhitelisted(tx, asset, to); err != nil {
			return err
		}
		if err := moveUnits(tx, assetID, from, to, units); err != nil {
			return err
		}
		return audit(tx, "UNITS_TRANSFERRED",
			fmt.Sprintf("asset %d: %d units %s -> %s", assetID, units, from, to), actor)
	})
	if err != nil {
		return err
	}

	event := notifyEvent("UNITS_TRANSFERRED", fmt.Sprintf("%d units %s -> %s", units, from, to), actor)
	event.AssetID = assetID
	event.Amount = units
	s.emit(event)
	return nil
}

// BalanceOf returns the holder's unit balance for an asset.
func (s *Service) BalanceOf(assetID uint, holder string) (int64, error) {
	return balanceOf(s.db, assetID, holder)
}

// SetWhitelistPolicy flips whitelist enforcement for an asset, admin or
// platform manager only.
func (s *Service) SetWhitelistPolicy(actor string, assetID uint, enforced bool) error {
	err := s.run(func(tx *gorm.DB) error {
		if err := requireRole(tx, actor, RolePlatformManager, RoleAdmin); err != nil {
			return err
		}
		asset, err := getAsset(tx, assetID)
		if err != nil {
			return err
		}
		if err := tx.Model(asset).Update("whitelist_enforced", enforced).Error; err != nil {
			return err
		}
		return audit(tx, "WHITELIST_POLICY",
			fmt.Sprintf("asset %d whitelist_enforced=%t", assetID, enforced), actor)
	})
	if err != nil {
		return err
	}

	event := notifyEvent("WHITELIST_POLICY", fmt.Sprintf("whitelist_enforced=%t", enforced), actor)
	event.AssetID = assetID
	s.emit(event)
	return nil
}

func getAsset(tx *gorm.DB, assetID uint) (*models.AssetRecord, error) {
	var asset models.AssetRecord
	err := tx.First(&asset, assetID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: asset %d", ErrNotFound, assetID)
	}
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func balanceOf(tx *gorm.DB, assetID uint, holder string) (int64, error) {
	var balance models.AssetBalance
	err := tx.Where("asset_id = ? AND holder = ?", assetID, holder).First(&balance).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return balance.Units, nil
}

// moveUnits atomically debits from and credits to within the caller's
// transaction. Fails with ErrInsufficientBalance when under-funded.
func moveUnits(tx *gorm.DB, assetID uint, from, to string, units int64) error {
	current, err := balanceOf(tx, assetID, from)
	if err != nil {
		return err
	}
	if current < units {
		return fmt.Errorf("%w: %s holds %d of asset %d, needs %d",
			ErrInsufficientBalance, from, current, assetID, units)
	}

	if err := tx.Model(&models.AssetBalance{}).
		Where("asset_id = ? AND holder = ?", assetID, from).
		Update("units", current-units).Error; err != nil {
		return err
	}

	dest := models.AssetBalance{AssetID: assetID, Holder: to}
	if err := tx.Where(models.AssetBalance{AssetID: assetID, Holder: to}).
		FirstOrCreate(&dest).Error; err != nil {
		return err
	}
	return tx.Model(&dest).Update("units", dest.Units+units).Error
}
