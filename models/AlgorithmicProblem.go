package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AlgorithmicProblem is the coding problem attached to a challenge (at most one per challenge)
type AlgorithmicProblem struct {
	ID               string    `gorm:"type:uuid;primary_key" json:"id"`
	ChallengeID      string    `gorm:"type:uuid;not null;uniqueIndex;column:challenge_id" json:"challenge_id"`
	Title            string    `gorm:"type:varchar(200);not null" json:"title"`
	ProblemStatement string    `gorm:"type:text;not null" json:"problem_statement"`
	InputFormat      string    `gorm:"type:text" json:"input_format"`
	OutputFormat     string    `gorm:"type:text" json:"output_format"`
	Constraints      string    `gorm:"type:text" json:"constraints"`
	SampleInput      string    `gorm:"type:text" json:"sample_input"`
	SampleOutput     string    `gorm:"type:text" json:"sample_output"`
	TestCases        string    `gorm:"type:text" json:"test_cases"` // JSON encoded
	TimeLimit        int       `gorm:"not null;default:2" json:"time_limit"`    // seconds
	MemoryLimit      int       `gorm:"not null;default:128" json:"memory_limit"` // MB
	CreatedAt        time.Time `json:"created_at"`

	Challenge *Challenge `gorm:"foreignKey:ChallengeID" json:"-"`
}

func (p *AlgorithmicProblem) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
