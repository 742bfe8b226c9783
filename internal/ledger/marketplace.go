package ledger

import (
	"errors"
	"fmt"

	"assetledger/internal/models"

	"gorm.io/gorm"
)

// CreateListing opens an offer to sell units at a fixed per-unit price.
// Listed units are escrowed immediately so a seller cannot double-commit them
// across simultaneous listings. Primary sales (seller is the issuance
// recipient) are capped at the configured max-sell percentage of total units.
func (s *Service) CreateListing(seller string, assetID uint, pricePerUnit, units int64) (uint, error) {
	if pricePerUnit <= 0 {
		return 0, fmt.Errorf("%w: price per unit must be positive", ErrInvalidArgument)
	}
	if units <= 0 {
		return 0, fmt.Errorf("%w: units must be positive", ErrInvalidArgument)
	}

	var listing models.Listing
	err := s.run(func(tx *gorm.DB) error {
		if err := requireUnpaused(tx, ModuleMarketplace); err != nil {
			return err
		}

		asset, err := getAsset(tx, assetID)
		if err != nil {
			return err
		}

		primary := seller == asset.IssuedTo
		if primary {
			p, err := params(tx)
			if err != nil {
				return err
			}
			maxUnits := asset.TotalUnits * p.MaxSellPercent / 100
			if units > maxUnits {
				return fmt.Errorf("%w: primary sale of %d units exceeds %d%% of %d",
					ErrThresholdExceeded, units, p.MaxSellPercent, asset.TotalUnits)
			}
		}

		if err := moveUnits(tx, assetID, seller, MarketplaceEscrow, units); err != nil {
			return err
		}

		listing = models.Listing{
			AssetID:        assetID,
			Seller:         seller,
			PricePerUnit:   pricePerUnit,
			UnitsAvailable: units,
			Active:         true,
			PrimarySale:    primary,
		}
		if err := tx.Create(&listing).Error; err != nil {
			return err
		}

		return audit(tx, "LISTING_CREATED",
			fmt.Sprintf("listing %d: %d units of asset %d at %d", listing.ID, units, assetID, pricePerUnit), seller)
	})
	if err != nil {
		return 0, err
	}

	event := notifyEvent("LISTING_CREATED",
		fmt.Sprintf("listing %d: %d units at %d", listing.ID, units, pricePerUnit), seller)
	event.AssetID = assetID
	event.Amount = units
	s.emit(event)
	return listing.ID, nil
}

// ExecutePurchase fills a listing, possibly partially. All unit and listing
// bookkeeping completes before the settlement pull pays the seller, and the
// whole transition reverts if the buyer cannot fund the cost.
func (s *Service) ExecutePurchase(buyer string, listingID uint, quantity int64) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidArgument)
	}

	var listing models.Listing
	var cost int64
	err := s.run(func(tx *gorm.DB) error {
		if err := requireUnpaused(tx, ModuleMarketplace); err != nil {
			return err
		}

		err := tx.First(&listing, listingID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: listing %d", ErrNotFound, listingID)
		}
		if err != nil {
			return err
		}
		if !listing.Active {
			return fmt.Errorf("%w: listing %d", ErrListingInactive, listingID)
		}
		if quantity > listing.UnitsAvailable {
			return fmt.Errorf("%w: listing %d has %d units, requested %d",
				ErrInsufficientBalance, listingID, listing.UnitsAvailable, quantity)
		}

		asset, err := getAsset(tx, listing.AssetID)
		if err != nil {
			return err
		}
		if err := requireWhitelisted(tx, asset, buyer); err != nil {
			return err
		}

		// Effects first: units and listing state, then the settlement pull.
		if err := moveUnits(tx, listing.AssetID, MarketplaceEscrow, buyer, quantity); err != nil {
			return err
		}

		remaining := listing.UnitsAvailable - quantity
		updates := map[string]interface{}{"units_available": remaining}
		if remaining == 0 {
			updates["active"] = false
		}
		if err := tx.Model(&listing).Updates(updates).Error; err != nil {
			return err
		}

		cost = listing.PricePerUnit * quantity
		if err := s.token.TransferFrom(tx, CustodyAccount, buyer, listing.Seller, cost); err != nil {
			return err
		}

		return audit(tx, "LISTING_FILLED",
			fmt.Sprintf("listing %d: %s bought %d units for %d", listingID, buyer, quantity, cost), buyer)
	})
	if err != nil {
		return err
	}

	event := notifyEvent("LISTING_FILLED",
		fmt.Sprintf("listing %d: %d units for %d", listingID, quantity, cost), buyer)
	event.AssetID = listing.AssetID
	event.Amount = quantity
	s.emit(event)
	return nil
}

// CancelListing deactivates a listing and returns the unsold escrowed units
// to the seller. Only the seller or an admin may cancel.
func (s *Service) CancelListing(actor string, listingID uint) error {
	var listing models.Listing
	err := s.run(func(tx *gorm.DB) error {
		if err := requireUnpaused(tx, ModuleMarketplace); err != nil {
			return err
		}

		err := tx.First(&listing, listingID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: listing %d", ErrNotFound, listingID)
		}
		if err != nil {
			return err
		}
		if !listing.Active {
			return fmt.Errorf("%w: listing %d", ErrListingInactive, listingID)
		}
		if actor != listing.Seller {
			if err := requireRole(tx, actor, RoleAdmin); err != nil {
				return err
			}
		}

		if listing.UnitsAvailable > 0 {
			if err := moveUnits(tx, listing.AssetID, MarketplaceEscrow, listing.Seller, listing.UnitsAvailable); err != nil {
				return err
			}
		}
		if err := tx.Model(&listing).Updates(map[string]interface{}{
			"units_available": 0,
			"active":          false,
		}).Error; err != nil {
			return err
		}

		return audit(tx, "LISTING_CANCELLED",
			fmt.Sprintf("listing %d cancelled, %d units returned", listingID, listing.UnitsAvailable), actor)
	})
	if err != nil {
		return err
	}

	event := notifyEvent("LISTING_CANCELLED", fmt.Sprintf("listing %d cancelled", listingID), actor)
	event.AssetID = listing.AssetID
	s.emit(event)
	return nil
}
