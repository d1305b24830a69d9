package models

import (
	"time"

	"privfin/internal/uuid"

	"gorm.io/gorm"
)

// Base contains the common columns shared by all tables.
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate hook generates a UUIDv7 for new records. UUIDv7 keys are
// time-ordered, which keeps the created_at-descending listing stable when
// two rows share a creation timestamp.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}
