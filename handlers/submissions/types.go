package submissions

import (
	"oasis/models"
	"oasis/utils/response"

	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrSubmissionNotFound = "Submission not found"
	ErrChallengeNotFound  = "Challenge not found"
	ErrInvalidFormat      = "Invalid request format"
	ErrFlagCooldown       = "Too many wrong attempts, try again later"
)

// CreateSubmissionRequest model for generic submission creation
type CreateSubmissionRequest struct {
	ChallengeID string                `json:"challenge_id" binding:"required"`
	Type        models.SubmissionType `json:"type" binding:"required"`
	Code        string                `json:"code"`
	Language    string                `json:"language"`
	FlagValue   *string               `json:"flag_value"`
	GithubLink  *string               `json:"github_link"`
}

// SubmitFlagRequest model for flag attempts
type SubmitFlagRequest struct {
	ChallengeID string `json:"challenge_id" binding:"required"`
	FlagValue   string `json:"flag_value" binding:"required"`
}

// SubmitFlagResponse model for flag attempt outcomes
type SubmitFlagResponse struct {
	Accepted bool   `json:"accepted"`
	Message  string `json:"message"`
}

// ExecuteRequest model for interactive code runs
type ExecuteRequest struct {
	Code     string `json:"code" binding:"required"`
	Language string `json:"language" binding:"required"`
	Stdin    string `json:"stdin"`
}

func respondWithError(c *gin.Context, status int, message string) {
	response.Error(c, status, message)
}
