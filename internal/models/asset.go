package models

import (
	"time"
)

// AssetRecord represents an issued fractional asset. TotalUnits is fixed at
// issuance; the record is never deleted.
type AssetRecord struct {
	ID                 uint      `gorm:"primarykey" json:"id"`
	TotalUnits         int64     `gorm:"not null" json:"total_units"`
	MetadataRef        string    `gorm:"size:512;not null" json:"metadata_ref"`
	DocHash            string    `gorm:"size:64;not null" json:"doc_hash"`
	IssuedTo           string    `gorm:"size:100;not null" json:"issued_to"`
	WhitelistEnforced  bool      `gorm:"default:false" json:"whitelist_enforced"`
	CreatedAt          time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt          time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// AssetBalance maps (asset, holder) to a unit count. For every asset the sum
// over holder rows equals TotalUnits; escrowed units sit on the marketplace
// escrow holder row.
type AssetBalance struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	AssetID   uint      `gorm:"not null;uniqueIndex:idx_asset_holder" json:"asset_id"`
	Holder    string    `gorm:"size:100;not null;uniqueIndex:idx_asset_holder" json:"holder"`
	Units     int64     `gorm:"not null;default:0" json:"units"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (AssetRecord) TableName() string {
	return "asset_record"
}

func (AssetBalance) TableName() string {
	return "asset_balance"
}
