package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Exercise keeps Date as a zero-padded YYYY-MM-DD string so range filters
// can compare it lexicographically.
type Exercise struct {
	ID          string    `gorm:"primaryKey;size:36" json:"_id"`
	UserID      string    `gorm:"size:64;not null;index:idx_exercises_user_date,priority:1" json:"user_id"`
	Username    string    `gorm:"size:128;not null" json:"username"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Duration    float64   `gorm:"not null" json:"duration"`
	Date        string    `gorm:"size:10;not null;index:idx_exercises_user_date,priority:2" json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

func (e *Exercise) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
