package ledger

import (
	"errors"
	"fmt"

	"assetledger/internal/models"

	"gorm.io/gorm"
)

// SettlementToken is the fungible settlement collaborator every monetary
// movement goes through. Methods take the operation's transaction handle so
// fund movement commits or reverts together with the ledger bookkeeping.
type SettlementToken interface {
	Transfer(tx *gorm.DB, from, to string, amount int64) error
	TransferFrom(tx *gorm.DB, spender, from, to string, amount int64) error
	Approve(tx *gorm.DB, owner, spender string, amount int64) error
	Allowance(tx *gorm.DB, owner, spender string) (int64, error)
	BalanceOf(tx *gorm.DB, account string) (int64, error)
}

// settlementLedger is the default SettlementToken over the settlement
// account/allowance tables. The token contract itself is an external
// collaborator; this models its transfer/approve/balanceOf surface.
type settlementLedger struct{}

// NewSettlementLedger returns the database-backed settlement token.
func NewSettlementLedger() SettlementToken {
	return settlementLedger{}
}

func (settlementLedger) BalanceOf(tx *gorm.DB, account string) (int64, error) {
	var acct models.SettlementAccount
	err := tx.Where("account = ?", account).First(&acct).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return acct.Balance, nil
}

func (s settlementLedger) Transfer(tx *gorm.DB, from, to string, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: transfer amount must be positive", ErrInvalidArgument)
	}
	if err := s.debit(tx, from, amount); err != nil {
		return err
	}
	return s.credit(tx, to, amount)
}

func (s settlementLedger) TransferFrom(tx *gorm.DB, spender, from, to string, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: transfer amount must be positive", ErrInvalidArgument)
	}

	var allowance models.SettlementAllowance
	err := tx.Where("owner = ? AND spender = ?", from, spender).First(&allowance).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && allowance.Amount < amount) {
		return fmt.Errorf("%w: allowance of %s for %s below %d", ErrInsufficientBalance, from, spender, amount)
	}
	if err != nil {
		return err
	}

	if err := tx.Model(&allowance).Update("amount", allowance.Amount-amount).Error; err != nil {
		return err
	}
	return s.Transfer(tx, from, to, amount)
}

func (settlementLedger) Approve(tx *gorm.DB, owner, spender string, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("%w: allowance must not be negative", ErrInvalidArgument)
	}
	allowance := models.SettlementAllowance{Owner: owner, Spender: spender}
	if err := tx.Where(allowance).FirstOrCreate(&allowance).Error; err != nil {
		return err
	}
	return tx.Model(&allowance).Update("amount", amount).Error
}

func (settlementLedger) Allowance(tx *gorm.DB, owner, spender string) (int64, error) {
	var allowance models.SettlementAllowance
	err := tx.Where("owner = ? AND spender = ?", owner, spender).First(&allowance).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return allowance.Amount, nil
}

func (settlementLedger) debit(tx *gorm.DB, account string, amount int64) error {
	var acct models.SettlementAccount
	err := tx.Where("account = ?", account).First(&acct).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && acct.Balance < amount) {
		return fmt.Errorf("%w: settlement balance of %s below %d", ErrInsufficientBalance, account, amount)
	}
	if err != nil {
		return err
	}
	return tx.Model(&acct).Update("balance", acct.Balance-amount).Error
}

func (settlementLedger) credit(tx *gorm.DB, account string, amount int64) error {
	acct := models.SettlementAccount{Account: account}
	if err := tx.Where(acct).FirstOrCreate(&acct).Error; err != nil {
		return err
	}
	return tx.Model(&acct).Update("balance", acct.Balance+amount).Error
}

// Faucet credits a settlement balance, admin-only. Stands in for external
// token issuance in sandbox deployments.
func (s *Service) Faucet(actor, account string, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: faucet amount must be positive", ErrInvalidArgument)
	}

	err := s.run(func(tx *gorm.DB) error {
		if err := requireRole(tx, actor, RoleAdmin); err != nil {
			return err
		}
		acct := models.SettlementAccount{Account: account}
		if err := tx.Where(acct).FirstOrCreate(&acct).Error; err != nil {
			return err
		}
		if err := tx.Model(&acct).Update("balance", acct.Balance+amount).Error; err != nil {
			return err
		}
		return audit(tx, "SETTLEMENT_FAUCET", fmt.Sprintf("credited %d to %s", amount, account), actor)
	})
	if err != nil {
		return err
	}

	event := notifyEvent("SETTLEMENT_FAUCET", fmt.Sprintf("credited %d to %s", amount, account), actor)
	event.Amount = amount
	s.emit(event)
	return nil
}

// ApproveSettlement sets the ledger custody account's allowance over the
// actor's settlement balance, enabling pull-based operations.
func (s *Service) ApproveSettlement(actor string, amount int64) error {
	return s.run(func(tx *gorm.DB) error {
		return s.token.Approve(tx, actor, CustodyAccount, amount)
	})
}
