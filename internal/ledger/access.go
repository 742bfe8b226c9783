package ledger

import (
	"errors"
	"fmt"

	"assetledger/internal/models"

	"gorm.io/gorm"
)

var validRoles = map[string]bool{
	RoleAdmin:           true,
	RolePlatformManager: true,
	RoleFundManager:     true,
	RoleEscrowOperator:  true,
}

// GrantRole grants a role to an account, admin-only. Granting an already-held
// role is a no-op success.
func (s *Service) GrantRole(actor, role, account string) error {
	if !validRoles[role] {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidArgument, role)
	}
	if account == "" {
		return fmt.Errorf("%w: account must not be empty", ErrInvalidArgument)
	}

	err := s.run(func(tx *gorm.DB) error {
		if err := requireRole(tx, actor, RoleAdmin); err != nil {
			return err
		}
		grant := models.RoleGrant{Role: role, Account: account}
		if err := tx.Where(grant).Attrs(models.RoleGrant{GrantedBy: actor}).
			FirstOrCreate(&grant).Error; err != nil {
			return err
		}
		return audit(tx, "ROLE_GRANTED", fmt.Sprintf("%s granted to %s", role, account), actor)
	})
	if err != nil {
		return err
	}

	s.emit(notifyEvent("ROLE_GRANTED", fmt.Sprintf("%s granted to %s", role, account), actor))
	return nil
}

// RevokeRole removes a role from an account, admin-only.
func (s *Service) RevokeRole(actor, role, account string) error {
	if !validRoles[role] {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidArgument, role)
	}

	err := s.run(func(tx *gorm.DB) error {
		if err := requireRole(tx, actor, RoleAdmin); err != nil {
			return err
		}
		if err := tx.Where("role = ? AND account = ?", role, account).
			Delete(&models.RoleGrant{}).Error; err != nil {
			return err
		}
		return audit(tx, "ROLE_REVOKED", fmt.Sprintf("%s revoked from %s", role, account), actor)
	})
	if err != nil {
		return err
	}

	s.emit(notifyEvent("ROLE_REVOKED", fmt.Sprintf("%s revoked from %s", role, account), actor))
	return nil
}

// HasRole reports whether the account holds the role.
func (s *Service) HasRole(role, account string) (bool, error) {
	return hasRole(s.db, role, account)
}

// RegisterIdentity records an identity hash for an account. Registrar is the
// platform manager or admin.
func (s *Service) RegisterIdentity(actor, account, identityHash string) error {
	if account == "" || identityHash == "" {
		return fmt.Errorf("%w: account and identity hash are required", ErrInvalidArgument)
	}

	err := s.run(func(tx *gorm.DB) error {
		if err := requireRole(tx, actor, RolePlatformManager, RoleAdmin); err != nil {
			return err
		}
		record := models.IdentityRecord{Account: account}
		if err := tx.Where(models.IdentityRecord{Account: account}).
			FirstOrCreate(&record).Error; err != nil {
			return err
		}
		if err := tx.Model(&record).Update("identity_hash", identityHash).Error; err != nil {
			return err
		}
		return audit(tx, "IDENTITY_REGISTERED", fmt.Sprintf("identity registered for %s", account), actor)
	})
	if err != nil {
		return err
	}

	s.emit(notifyEvent("IDENTITY_REGISTERED", fmt.Sprintf("identity registered for %s", account), actor))
	return nil
}

// SetWhitelisted flips an account's whitelist status.
func (s *Service) SetWhitelisted(actor, account string, whitelisted bool) error {
	if account == "" {
		return fmt.Errorf("%w: account must not be empty", ErrInvalidArgument)
	}

	err := s.run(func(tx *gorm.DB) error {
		if err := requireRole(tx, actor, RolePlatformManager, RoleAdmin); err != nil {
			return err
		}
		record := models.IdentityRecord{Account: account}
		if err := tx.Where(models.IdentityRecord{Account: account}).
			FirstOrCreate(&record).Error; err != nil {
			return err
		}
		if err := tx.Model(&record).Update("whitelisted", whitelisted).Error; err != nil {
			return err
		}
		return audit(tx, "WHITELIST_UPDATED", fmt.Sprintf("%s whitelisted=%t", account, whitelisted), actor)
	})
	if err != nil {
		return err
	}

	s.emit(notifyEvent("WHITELIST_UPDATED", fmt.Sprintf("%s whitelisted=%t", account, whitelisted), actor))
	return nil
}

// IsWhitelisted reports the account's whitelist status.
func (s *Service) IsWhitelisted(account string) (bool, error) {
	return isWhitelisted(s.db, account)
}

func isWhitelisted(tx *gorm.DB, account string) (bool, error) {
	var record models.IdentityRecord
	err := tx.Where("account = ?", account).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return record.Whitelisted, nil
}

// requireWhitelisted gates unit recipients when the asset enforces
// whitelisting. Internal ledger accounts are exempt.
func requireWhitelisted(tx *gorm.DB, asset *models.AssetRecord, account string) error {
	if !asset.WhitelistEnforced {
		return nil
	}
	if account == MarketplaceEscrow || account == CustodyAccount {
		return nil
	}
	ok, err := isWhitelisted(tx, account)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotWhitelisted, account)
	}
	return nil
}
