package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Challenge represents a two-phase competition challenge: an algorithmic phase
// guarded by a flag and a buildathon phase unlocked by solving it
type Challenge struct {
	ID          string     `gorm:"type:uuid;primary_key" json:"id"`
	Title       string     `gorm:"type:varchar(200);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Points      int        `gorm:"not null;default:100" json:"points"`
	IsActive    bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`

	AlgorithmicProblem *AlgorithmicProblem `gorm:"foreignKey:ChallengeID;constraint:OnDelete:CASCADE" json:"algorithmic_problem,omitempty"`
	BuildathonProblem  *BuildathonProblem  `gorm:"foreignKey:ChallengeID;constraint:OnDelete:CASCADE" json:"buildathon_problem,omitempty"`
	Flags              []*Flag             `gorm:"foreignKey:ChallengeID;constraint:OnDelete:CASCADE" json:"flags,omitempty"`
	Submissions        []*Submission       `gorm:"foreignKey:ChallengeID" json:"-"`
	TeamChallenges     []*TeamChallenge    `gorm:"foreignKey:ChallengeID" json:"-"`
}

func (ch *Challenge) BeforeCreate(tx *gorm.DB) error {
	if ch.ID == "" {
		ch.ID = uuid.NewString()
	}
	return nil
}
