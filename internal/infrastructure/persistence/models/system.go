package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditLogModel is the append-only record of state-changing operations.
// Nothing in the core reads this table back.
type AuditLogModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ActorID      *uuid.UUID `gorm:"type:uuid;index"`
	Action       string     `gorm:"type:varchar(100);not null;index"`
	ResourceType string     `gorm:"type:varchar(100);not null"`
	ResourceID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Details      []byte     `gorm:"type:jsonb"`
	CreatedAt    time.Time  `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (AuditLogModel) TableName() string {
	return "audit_logs"
}

// SettingModel is a key-value row of runtime configuration, read through the
// TTL settings cache.
type SettingModel struct {
	Key       string    `gorm:"type:varchar(100);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SettingModel) TableName() string {
	return "settings"
}
