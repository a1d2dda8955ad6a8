package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Flag is a secret value that validates a challenge's algorithmic phase.
// A challenge may hold several flags (rotation); only active ones are checked.
type Flag struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	ChallengeID string    `gorm:"type:uuid;not null;index;column:challenge_id" json:"challenge_id"`
	Value       string    `gorm:"type:varchar(255);not null" json:"value"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`

	Challenge *Challenge `gorm:"foreignKey:ChallengeID" json:"-"`
}

func (f *Flag) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
