package domain

import (
	"time"

	"gorm.io/gorm"
)

// RecipientCC is an additional notification address copied on inquiry emails.
// Address uniqueness is enforced by the settings service at add time only.
type RecipientCC struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"size:120;not null;index" json:"email"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for RecipientCC
func (RecipientCC) TableName() string {
	return "recipient_cc"
}

// BeforeCreate hook
func (r *RecipientCC) BeforeCreate(tx *gorm.DB) error {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	return nil
}
