package models

import (
	"time"

	"rms/internal/uuid"

	"gorm.io/gorm"
)

// Base contains common columns for all tables. Records are identified by
// opaque string ids generated at creation time; ids are unique and stable.
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate hook generates a time-ordered UUID for new records.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}
