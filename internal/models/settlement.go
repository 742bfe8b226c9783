package models

import (
	"time"
)

// SettlementAccount is one account's balance in the settlement-token ledger
// the system settles against.
type SettlementAccount struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Account   string    `gorm:"size:100;not null;uniqueIndex" json:"account"`
	Balance   int64     `gorm:"not null;default:0" json:"balance"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// SettlementAllowance records how much a spender may pull from an owner.
type SettlementAllowance struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Owner     string    `gorm:"size:100;not null;uniqueIndex:idx_owner_spender" json:"owner"`
	Spender   string    `gorm:"size:100;not null;uniqueIndex:idx_owner_spender" json:"spender"`
	Amount    int64     `gorm:"not null;default:0" json:"amount"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (SettlementAccount) TableName() string {
	return "settlement_account"
}

func (SettlementAllowance) TableName() string {
	return "settlement_allowance"
}
