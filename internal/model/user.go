package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"_id"`
	Username  string    `gorm:"size:128;not null;index" json:"username"`
	CreatedAt time.Time `json:"-"`
}

// BeforeCreate assigns a UUID when the caller left the id empty.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
