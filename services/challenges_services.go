package services

import (
	"fmt"
	"time"

	"oasis/database"
	"oasis/models"

	"gorm.io/gorm"
)

// ChallengeSummary is a challenge list row with attachment indicators
type ChallengeSummary struct {
	ID                    string    `json:"id"`
	Title                 string    `json:"title"`
	Description           string    `json:"description"`
	Points                int       `json:"points"`
	IsActive              bool      `json:"is_active"`
	CreatedAt             time.Time `json:"created_at"`
	HasAlgorithmicProblem bool      `json:"has_algorithmic_problem"`
	HasBuildathonProblem  bool      `json:"has_buildathon_problem"`
	FlagCount             int64     `json:"flag_count"`
	SubmissionCount       int64     `json:"submission_count"`
}

// GetChallengeSummaries lists challenges with attachment indicators.
// With activeOnly set, inactive challenges are filtered out (team view).
func GetChallengeSummaries(activeOnly bool) ([]ChallengeSummary, error) {
	tx := database.DB.Model(&models.Challenge{}).
		Preload("AlgorithmicProblem").Preload("BuildathonProblem")
	if activeOnly {
		tx = tx.Where("is_active = ?", true).Order("created_at ASC")
	} else {
		tx = tx.Order("created_at DESC")
	}

	var challenges []models.Challenge
	if err := tx.Find(&challenges).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch challenges: %w", err)
	}

	summaries := make([]ChallengeSummary, 0, len(challenges))
	for _, ch := range challenges {
		summary := ChallengeSummary{
			ID:                    ch.ID,
			Title:                 ch.Title,
			Description:           ch.Description,
			Points:                ch.Points,
			IsActive:              ch.IsActive,
			CreatedAt:             ch.CreatedAt,
			HasAlgorithmicProblem: ch.AlgorithmicProblem != nil,
			HasBuildathonProblem:  ch.BuildathonProblem != nil,
		}
		database.DB.Model(&models.Flag{}).
			Where("challenge_id = ? AND is_active = ?", ch.ID, true).Count(&summary.FlagCount)
		database.DB.Model(&models.Submission{}).
			Where("challenge_id = ?", ch.ID).Count(&summary.SubmissionCount)
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// GetChallenge returns a challenge with both problems and its active flags
func GetChallenge(id string) (*models.Challenge, error) {
	var challenge models.Challenge
	err := database.DB.
		Preload("AlgorithmicProblem").
		Preload("BuildathonProblem").
		Preload("Flags", "is_active = ?", true).
		First(&challenge, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch challenge: %w", err)
	}
	return &challenge, nil
}

// CreateChallengeRequest carries the fields of a new challenge
type CreateChallengeRequest struct {
	Title       string `json:"title" binding:"required,min=3,max=200"`
	Description string `json:"description"`
	Points      int    `json:"points" binding:"required,min=1"`
	IsActive    *bool  `json:"is_active"`
}

// UpdateChallengeRequest carries a partial challenge update; nil fields are untouched
type UpdateChallengeRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Points      *int    `json:"points"`
	IsActive    *bool   `json:"is_active"`
}

// CreateChallenge creates a new challenge
func CreateChallenge(req CreateChallengeRequest) (*models.Challenge, error) {
	challenge := models.Challenge{
		Title:       req.Title,
		Description: req.Description,
		Points:      req.Points,
		IsActive:    true,
	}
	if req.IsActive != nil {
		challenge.IsActive = *req.IsActive
	}
	if err := database.DB.Create(&challenge).Error; err != nil {
		return nil, fmt.Errorf("failed to create challenge: %w", err)
	}
	return &challenge, nil
}

// UpdateChallenge applies a partial update to a challenge
func UpdateChallenge(id string, req UpdateChallengeRequest) (*models.Challenge, error) {
	var challenge models.Challenge
	if err := database.DB.First(&challenge, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch challenge: %w", err)
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Points != nil {
		if *req.Points < 1 {
			return nil, fmt.Errorf("%w: points must be positive", ErrInvalidRequest)
		}
		updates["points"] = *req.Points
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return &challenge, nil
	}

	now := time.Now()
	updates["updated_at"] = &now
	if err := database.DB.Model(&challenge).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update challenge: %w", err)
	}
	return &challenge, nil
}

// DeleteChallenge removes a challenge and, through the FK constraints,
// its problems and flags
func DeleteChallenge(id string) error {
	result := database.DB.Delete(&models.Challenge{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete challenge: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetChallengeForTeam returns the team view of an active challenge:
// flags are never exposed and the buildathon problem stays hidden until
// the team has unlocked that phase
func GetChallengeForTeam(challengeID, teamID string) (*models.Challenge, error) {
	challenge, err := GetChallenge(challengeID)
	if err != nil {
		return nil, err
	}
	if !challenge.IsActive {
		return nil, ErrNotFound
	}

	challenge.Flags = nil
	if !BuildathonUnlocked(teamID, challengeID) {
		challenge.BuildathonProblem = nil
	}
	return challenge, nil
}
