package models

import (
	"time"
)

// IdentityRecord stores a registered identity hash and whitelist status for
// an account. Consulted before transfers and purchases when the asset
// enforces whitelisting.
type IdentityRecord struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Account      string    `gorm:"size:100;not null;uniqueIndex" json:"account"`
	IdentityHash string    `gorm:"size:64" json:"identity_hash"`
	Whitelisted  bool      `gorm:"default:false" json:"whitelisted"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (IdentityRecord) TableName() string {
	return "identity_record"
}
