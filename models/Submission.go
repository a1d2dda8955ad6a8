package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubmissionType string

const (
	SubmissionTypeAlgorithmic SubmissionType = "Algorithmic"
	SubmissionTypeFlag        SubmissionType = "Flag"
	SubmissionTypeBuildathon  SubmissionType = "Buildathon"
)

type SubmissionStatus string

const (
	StatusPending             SubmissionStatus = "Pending"
	StatusAccepted            SubmissionStatus = "Accepted"
	StatusWrongAnswer         SubmissionStatus = "WrongAnswer"
	StatusTimeLimitExceeded   SubmissionStatus = "TimeLimitExceeded"
	StatusRuntimeError        SubmissionStatus = "RuntimeError"
	StatusCompilationError    SubmissionStatus = "CompilationError"
	StatusMemoryLimitExceeded SubmissionStatus = "MemoryLimitExceeded"
	StatusRejected            SubmissionStatus = "Rejected"
)

// Submission is one team attempt at a challenge: a flag value,
// a piece of code, or a buildathon repository link
type Submission struct {
	ID            string           `gorm:"type:uuid;primary_key" json:"id"`
	TeamID        string           `gorm:"type:uuid;not null;index;column:team_id" json:"team_id"`
	ChallengeID   string           `gorm:"type:uuid;not null;index;column:challenge_id" json:"challenge_id"`
	Type          SubmissionType   `gorm:"type:varchar(20);not null" json:"type"`
	Code          string           `gorm:"type:text" json:"code"`
	Language      string           `gorm:"type:varchar(50)" json:"language"`
	FlagValue     *string          `gorm:"type:varchar(255);column:flag_value" json:"flag_value"`
	GithubLink    *string          `gorm:"type:varchar(500);column:github_link" json:"github_link"`
	Status        SubmissionStatus `gorm:"type:varchar(30);not null;default:'Pending'" json:"status"`
	Output        *string          `gorm:"type:text" json:"output"`
	ErrorMessage  *string          `gorm:"type:text;column:error_message" json:"error_message"`
	ExecutionTime *int             `gorm:"column:execution_time" json:"execution_time"` // milliseconds
	MemoryUsed    *int             `gorm:"column:memory_used" json:"memory_used"`       // KB
	Points        int              `gorm:"not null;default:0" json:"points"`
	SubmittedAt   time.Time        `gorm:"not null;column:submitted_at" json:"submitted_at"`
	EvaluatedAt   *time.Time       `gorm:"column:evaluated_at" json:"evaluated_at"`

	Team      *Team      `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	Challenge *Challenge `gorm:"foreignKey:ChallengeID" json:"challenge,omitempty"`
}

func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
