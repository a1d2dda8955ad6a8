package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamChallenge tracks one team's progress through one challenge.
// Created lazily on the first accepted flag submission.
type TeamChallenge struct {
	ID                   string     `gorm:"type:uuid;primary_key" json:"id"`
	TeamID               string     `gorm:"type:uuid;not null;uniqueIndex:idx_team_challenge;column:team_id" json:"team_id"`
	ChallengeID          string     `gorm:"type:uuid;not null;uniqueIndex:idx_team_challenge;column:challenge_id" json:"challenge_id"`
	AlgorithmicCompleted bool       `gorm:"not null;default:false;column:algorithmic_completed" json:"algorithmic_completed"`
	BuildathonUnlocked   bool       `gorm:"not null;default:false;column:buildathon_unlocked" json:"buildathon_unlocked"`
	BuildathonCompleted  bool       `gorm:"not null;default:false;column:buildathon_completed" json:"buildathon_completed"`
	StartedAt            time.Time  `gorm:"not null;column:started_at" json:"started_at"`
	CompletedAt          *time.Time `gorm:"column:completed_at" json:"completed_at"`
	TotalPoints          int        `gorm:"not null;default:0;column:total_points" json:"total_points"`

	Team      *Team      `gorm:"foreignKey:TeamID" json:"-"`
	Challenge *Challenge `gorm:"foreignKey:ChallengeID" json:"challenge,omitempty"`
}

func (tc *TeamChallenge) BeforeCreate(tx *gorm.DB) error {
	if tc.ID == "" {
		tc.ID = uuid.NewString()
	}
	return nil
}
