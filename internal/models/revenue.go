package models

import (
	"time"
)

// RevenueSnapshot records one distribution for an asset: the net amount
// pulled into custody and the balance supply at snapshot time. Immutable once
// written.
type RevenueSnapshot struct {
	ID                    uint                 `gorm:"primarykey" json:"id"`
	AssetID               uint                 `gorm:"not null;index" json:"asset_id"`
	NetAmount             int64                `gorm:"not null" json:"net_amount"`
	TotalSupplyAtSnapshot int64                `gorm:"not null" json:"total_supply_at_snapshot"`
	DistributedBy         string               `gorm:"size:100;not null" json:"distributed_by"`
	CreatedAt             time.Time            `json:"created_at" gorm:"autoCreateTime"`
	Entitlements          []RevenueEntitlement `gorm:"foreignKey:SnapshotID" json:"entitlements"`
}

// RevenueEntitlement is one holder's share of a snapshot. Claimed flips to
// true exactly once, atomically with the payout.
type RevenueEntitlement struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	SnapshotID uint      `gorm:"not null;uniqueIndex:idx_snapshot_holder" json:"snapshot_id"`
	Holder     string    `gorm:"size:100;not null;uniqueIndex:idx_snapshot_holder" json:"holder"`
	Units      int64     `gorm:"not null" json:"units"`
	Amount     int64     `gorm:"not null" json:"amount"`
	Claimed    bool      `gorm:"default:false" json:"claimed"`
	ClaimedAt  *time.Time `json:"claimed_at"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TaxFlag is a bookkeeping record that a tax portion was earmarked for a tax
// account before a distribution. It moves no funds.
type TaxFlag struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	TaxAccount string    `gorm:"size:100;not null" json:"tax_account"`
	RateLabel  string    `gorm:"size:32" json:"rate_label"`
	Amount     int64     `gorm:"not null" json:"amount"`
	FlaggedBy  string    `gorm:"size:100;not null" json:"flagged_by"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (RevenueSnapshot) TableName() string {
	return "revenue_snapshot"
}

func (RevenueEntitlement) TableName() string {
	return "revenue_entitlement"
}

func (TaxFlag) TableName() string {
	return "tax_flag"
}
