package ledger

import (
	"errors"
	"fmt"

	"assetledger/internal/models"

	"gorm.io/gorm"
)

// ProposeUpgrade opens a proposal under a caller-supplied unique handle.
// Approval is informational: upgrade mechanics live outside this system.
func (s *Service) ProposeUpgrade(actor, handle, module, description string) error {
	if handle == "" || module == "" {
		return fmt.Errorf("%w: handle and module are required", ErrInvalidArgument)
	}

	err := s.run(func(tx *gorm.DB) error {
		if err := requireRole(tx, actor, RolePlatformManager, RoleAdmin); err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.Proposal{}).Where("handle = ?", handle).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: %s", ErrDuplicateProposal, handle)
		}

		proposal := models.Proposal{
			Handle:      handle,
			Module:      module,
			Description: description,
			Status:      models.ProposalStatusOpen,
			ProposedBy:  actor,
		}
		if err := tx.Create(&proposal).Error; err != nil {
			return err
		}
		return audit(tx, "PROPOSAL_CREATED", fmt.Sprintf("%s targeting %s", handle, module), actor)
	})
	if err != nil {
		return err
	}

	s.emit(notifyEvent("PROPOSAL_CREATED", fmt.Sprintf("%s targeting %s", handle, module), actor))
	return nil
}

// SignProposal adds the caller to the proposal's signer set. Once the
// configured signer threshold is reached the status flips to Approved.
// Signing twice is a no-op success.
func (s *Service) SignProposal(actor, handle string) error {
	err := s.run(func(tx *gorm.DB) error {
		if err := requireAnyRole(tx, actor); err != nil {
			return err
		}

		var proposal models.Proposal
		err := tx.Where("handle = ?", handle).First(&proposal).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: proposal %s", ErrNotFound, handle)
		}
		if err != nil {
			return err
		}

		signature := models.ProposalSignature{ProposalID: proposal.ID, Signer: actor}
		if err := tx.Where(signature).FirstOrCreate(&signature).Error; err != nil {
			return err
		}

		var signatures int64
		if err := tx.Model(&models.ProposalSignature{}).
			Where("proposal_id = ?", proposal.ID).Count(&signatures).Error; err != nil {
			return err
		}

		p, err := params(tx)
		if err != nil {
			return err
		}
		if proposal.Status == models.ProposalStatusOpen && signatures >= int64(p.ProposalSignerThreshold) {
			if err := tx.Model(&proposal).Update("status", models.ProposalStatusApproved).Error; err != nil {
				return err
			}
		}
		return audit(tx, "PROPOSAL_SIGNED", fmt.Sprintf("%s signed by %s", handle, actor), actor)
	})
	if err != nil {
		return err
	}

	s.emit(notifyEvent("PROPOSAL_SIGNED", handle, actor))
	return nil
}

// PauseModule flips the governance kill switch for a module, admin-only.
func (s *Service) PauseModule(actor, module string) error {
	return s.setPause(actor, module, true)
}

// UnpauseModule clears the kill switch, admin-only.
func (s *Service) UnpauseModule(actor, module string) error {
	return s.setPause(actor, module, false)
}

func (s *Service) setPause(actor, module string, paused bool) error {
	if module == "" {
		return fmt.Errorf("%w: module must not be empty", ErrInvalidArgument)
	}

	action := "MODULE_UNPAUSED"
	if paused {
		action = "MODULE_PAUSED"
	}

	err := s.run(func(tx *gorm.DB) error {
		if err := requireRole(tx, actor, RoleAdmin); err != nil {
			return err
		}
		pause := models.ModulePause{Module: module}
		if err := tx.Where(models.ModulePause{Module: module}).FirstOrCreate(&pause).Error; err != nil {
			return err
		}
		if err := tx.Model(&pause).Updates(map[string]interface{}{
			"paused":     paused,
			"updated_by": actor,
		}).Error; err != nil {
			return err
		}
		return audit(tx, action, module, actor)
	})
	if err != nil {
		return err
	}

	s.emit(notifyEvent(action, module, actor))
	return nil
}

// IsPaused reports the module's pause state.
func (s *Service) IsPaused(module string) (bool, error) {
	var pause models.ModulePause
	err := s.db.Where("module = ?", module).First(&pause).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return pause.Paused, nil
}

// LogAuditEvent appends a governance audit entry and emits the matching
// notification. Callable by any account holding a role.
func (s *Service) LogAuditEvent(actor, actionType, detail string) error {
	if actionType == "" {
		return fmt.Errorf("%w: action type must not be empty", ErrInvalidArgument)
	}

	err := s.run(func(tx *gorm.DB) error {
		if err := requireAnyRole(tx, actor); err != nil {
			return err
		}
		return audit(tx, actionType, detail, actor)
	})
	if err != nil {
		return err
	}

	s.emit(notifyEvent(actionType, detail, actor))
	return nil
}

// SetParams updates governance-tunable settings, admin-only. Zero values
// leave the corresponding setting unchanged.
func (s *Service) SetParams(actor string, maxSellPercent int64, signerThreshold int) error {
	if maxSellPercent < 0 || maxSellPercent > 100 {
		return fmt.Errorf("%w: max sell percent must be within [0,100]", ErrInvalidArgument)
	}
	if signerThreshold < 0 {
		return fmt.Errorf("%w: signer threshold must not be negative", ErrInvalidArgument)
	}

	err := s.run(func(tx *gorm.DB) error {
		if err := requireRole(tx, actor, RoleAdmin); err != nil {
			return err
		}
		p, err := params(tx)
		if err != nil {
			return err
		}
		updates := map[string]interface{}{"updated_by": actor}
		if maxSellPercent > 0 {
			updates["max_sell_percent"] = maxSellPercent
		}
		if signerThreshold > 0 {
			updates["proposal_signer_threshold"] = signerThreshold
		}
		if err := tx.Model(&p).Updates(updates).Error; err != nil {
			return err
		}
		return audit(tx, "PARAMS_UPDATED",
			fmt.Sprintf("max_sell_percent=%d signer_threshold=%d", maxSellPercent, signerThreshold), actor)
	})
	if err != nil {
		return err
	}

	s.emit(notifyEvent("PARAMS_UPDATED",
		fmt.Sprintf("max_sell_percent=%d signer_threshold=%d", maxSellPercent, signerThreshold), actor))
	return nil
}

// Params returns the current governance settings.
func (s *Service) Params() (models.LedgerParams, error) {
	return params(s.db)
}
