package models

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog records create/delete actions against roster and observation
// records, with the raw payload kept as JSON for later inspection.
type AuditLog struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Action    string         `gorm:"size:64;not null;index" json:"action"`
	Entity    string         `gorm:"size:32;not null" json:"entity"`
	EntityID  uint           `json:"entityId"`
	Detail    datatypes.JSON `json:"detail"`
	CreatedAt time.Time      `json:"createdAt"`
}

// TableName specifies the table name for AuditLog model
func (AuditLog) TableName() string {
	return "audit_logs"
}
