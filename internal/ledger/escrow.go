package ledger

import (
	"errors"
	"fmt"

	"assetledger/internal/models"

	"gorm.io/gorm"
)

// LockFunds pulls settlement funds from the caller into custody and credits
// the caller's locked balance. The caller must have approved the custody
// account for at least the amount.
func (s *Service) LockFunds(actor string, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidArgument)
	}

	err := s.run(func(tx *gorm.DB) error {
		locked := models.LockedFunds{Holder: actor}
		if err := tx.Where(models.LockedFunds{Holder: actor}).FirstOrCreate(&locked).Error; err != nil {
			return err
		}
		if err := tx.Model(&locked).Update("amount", locked.Amount+amount).Error; err != nil {
			return err
		}
		if err := s.token.TransferFrom(tx, CustodyAccount, actor, CustodyAccount, amount); err != nil {
			return err
		}
		return audit(tx, "FUNDS_LOCKED", fmt.Sprintf("%s locked %d", actor, amount), actor)
	})
	if err != nil {
		return err
	}

	event := notifyEvent("FUNDS_LOCKED", fmt.Sprintf("locked %d", amount), actor)
	event.Amount = amount
	s.emit(event)
	return nil
}

// ReleaseFunds pays out locked funds to their holder, escrow-operator only.
// Releasing beyond the locked balance fails with ErrInsufficientLockedFunds.
// The locked-balance debit commits before the settlement payout leaves
// custody.
func (s *Service) ReleaseFunds(actor, to string, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidArgument)
	}

	err := s.run(func(tx *gorm.DB) error {
		if err := requireRole(tx, actor, RoleEscrowOperator); err != nil {
			return err
		}

		var locked models.LockedFunds
		err := tx.Where("holder = ?", to).First(&locked).Error
		if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && locked.Amount < amount) {
			return fmt.Errorf("%w: %s has %d locked, requested %d",
				ErrInsufficientLockedFunds, to, locked.Amount, amount)
		}
		if err != nil {
			return err
		}

		if err := tx.Model(&locked).Update("amount", locked.Amount-amount).Error; err != nil {
			return err
		}
		if err := s.token.Transfer(tx, CustodyAccount, to, amount); err != nil {
			return err
		}
		return audit(tx, "FUNDS_RELEASED", fmt.Sprintf("released %d to %s", amount, to), actor)
	})
	if err != nil {
		return err
	}

	event := notifyEvent("FUNDS_RELEASED", fmt.Sprintf("released %d to %s", amount, to), actor)
	event.Amount = amount
	s.emit(event)
	return nil
}

// LockedBalance returns the holder's locked amount.
func (s *Service) LockedBalance(holder string) (int64, error) {
	var locked models.LockedFunds
	err := s.db.Where("holder = ?", holder).First(&locked).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return locked.Amount, nil
}
