package model

import (
	"time"

	"github.com/google/uuid"
)

// SwipeModel mirrors the 'swipes' table. Rows are insert-only.
type SwipeModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key"`
	UserID       uuid.UUID  `gorm:"type:uuid;index;not null"`
	TargetUserID *uuid.UUID `gorm:"type:uuid;index"`
	Action       string     `gorm:"type:varchar(32);not null"`
	Timestamp    time.Time  `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (SwipeModel) TableName() string {
	return "swipes"
}
