package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BuildathonProblem is the build-a-project brief attached to a challenge,
// hidden from a team until it solves the algorithmic phase
type BuildathonProblem struct {
	ID                 string    `gorm:"type:uuid;primary_key" json:"id"`
	ChallengeID        string    `gorm:"type:uuid;not null;uniqueIndex;column:challenge_id" json:"challenge_id"`
	Title              string    `gorm:"type:varchar(200);not null" json:"title"`
	Description        string    `gorm:"type:text;not null" json:"description"`
	Requirements       string    `gorm:"type:text" json:"requirements"`
	Deliverables       string    `gorm:"type:text" json:"deliverables"`
	EvaluationCriteria string    `gorm:"type:text" json:"evaluation_criteria"`
	TimeLimit          int       `gorm:"not null;default:24" json:"time_limit"` // hours
	CreatedAt          time.Time `json:"created_at"`

	Challenge *Challenge `gorm:"foreignKey:ChallengeID" json:"-"`
}

func (p *BuildathonProblem) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
