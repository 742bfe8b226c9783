package models

import (
	"time"
)

// MarketStatRecord is a periodic snapshot of marketplace activity written by
// the stat worker.
type MarketStatRecord struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	ActiveListings   int64     `json:"active_listings"`
	UnitsEscrowed    int64     `json:"units_escrowed"`
	AssetsIssued     int64     `json:"assets_issued"`
	TotalDistributed int64     `json:"total_distributed"`
	TotalClaimed     int64     `json:"total_claimed"`
	AuditEntries     int64     `json:"audit_entries"`
	RecordedAt       time.Time `json:"recorded_at"`
	CreatedAt        time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (MarketStatRecord) TableName() string {
	return "market_stat_record"
}
