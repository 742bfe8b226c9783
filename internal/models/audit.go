package models

import (
	"time"
)

// AuditEntry is one row of the append-only audit log. Entries are never
// updated or removed.
type AuditEntry struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	ActionType string    `gorm:"size:64;not null;index" json:"action_type"`
	Detail     string    `gorm:"size:1024" json:"detail"`
	Actor      string    `gorm:"size:100;not null;index" json:"actor"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (AuditEntry) TableName() string {
	return "audit_entry"
}
