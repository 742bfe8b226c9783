package models

import (
	"time"
)

// Proposal statuses.
const (
	ProposalStatusOpen     = "Open"
	ProposalStatusApproved = "Approved"
)

// RoleGrant records that an account holds a role.
type RoleGrant struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Role      string    `gorm:"size:32;not null;uniqueIndex:idx_role_account" json:"role"`
	Account   string    `gorm:"size:100;not null;uniqueIndex:idx_role_account" json:"account"`
	GrantedBy string    `gorm:"size:100" json:"granted_by"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// Proposal is an upgrade proposal with a caller-supplied unique handle.
type Proposal struct {
	ID          uint                `gorm:"primarykey" json:"id"`
	Handle      string              `gorm:"size:128;not null;uniqueIndex" json:"handle"`
	Module      string              `gorm:"size:64;not null" json:"module"`
	Description string              `gorm:"size:512" json:"description"`
	Status      string              `gorm:"size:16;not null;default:Open" json:"status"`
	ProposedBy  string              `gorm:"size:100;not null" json:"proposed_by"`
	CreatedAt   time.Time           `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time           `json:"updated_at" gorm:"autoUpdateTime"`
	Signatures  []ProposalSignature `gorm:"foreignKey:ProposalID" json:"signatures"`
}

// ProposalSignature is one signer's approval of a proposal.
type ProposalSignature struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	ProposalID uint      `gorm:"not null;uniqueIndex:idx_proposal_signer" json:"proposal_id"`
	Signer     string    `gorm:"size:100;not null;uniqueIndex:idx_proposal_signer" json:"signer"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// ModulePause is the governance kill switch for a named module.
type ModulePause struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Module    string    `gorm:"size:64;not null;uniqueIndex" json:"module"`
	Paused    bool      `gorm:"default:false" json:"paused"`
	UpdatedBy string    `gorm:"size:100" json:"updated_by"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// LedgerParams holds governance-tunable settings as a single row.
type LedgerParams struct {
	ID                      uint      `gorm:"primarykey" json:"id"`
	MaxSellPercent          int64     `gorm:"not null;default:100" json:"max_sell_percent"`
	ProposalSignerThreshold int       `gorm:"not null;default:1" json:"proposal_signer_threshold"`
	UpdatedBy               string    `gorm:"size:100" json:"updated_by"`
	CreatedAt               time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt               time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (RoleGrant) TableName() string {
	return "role_grant"
}

func (Proposal) TableName() string {
	return "proposal"
}

func (ProposalSignature) TableName() string {
	return "proposal_signature"
}

func (ModulePause) TableName() string {
	return "module_pause"
}

func (LedgerParams) TableName() string {
	return "ledger_params"
}
