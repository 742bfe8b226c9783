package models

import (
	"time"
)

// LockedFunds tracks settlement funds held for an account in the general
// escrow ledger. Amount never goes negative.
type LockedFunds struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Holder    string    `gorm:"size:100;not null;uniqueIndex" json:"holder"`
	Amount    int64     `gorm:"not null;default:0" json:"amount"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (LockedFunds) TableName() string {
	return "locked_funds"
}
