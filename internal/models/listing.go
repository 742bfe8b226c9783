package models

import (
	"time"
)

// Listing is an open offer to sell units of an asset at a fixed per-unit
// price. Listed units are escrowed at creation and flow back to the seller on
// cancel or to buyers on purchase.
type Listing struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	AssetID        uint      `gorm:"not null;index" json:"asset_id"`
	Seller         string    `gorm:"size:100;not null;index" json:"seller"`
	PricePerUnit   int64     `gorm:"not null" json:"price_per_unit"`
	UnitsAvailable int64     `gorm:"not null" json:"units_available"`
	Active         bool      `gorm:"default:true" json:"active"`
	PrimarySale    bool      `gorm:"default:false" json:"primary_sale"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Listing) TableName() string {
	return "listing"
}
