package services

import (
	"fmt"
	"time"

	"oasis/database"
	"oasis/models"

	"gorm.io/gorm"
)

// AlgorithmicProblemRequest carries the fields of an algorithmic problem
type AlgorithmicProblemRequest struct {
	Title            string `json:"title" binding:"required,min=3,max=200"`
	ProblemStatement string `json:"problem_statement" binding:"required"`
	InputFormat      string `json:"input_format"`
	OutputFormat     string `json:"output_format"`
	Constraints      string `json:"constraints"`
	SampleInput      string `json:"sample_input"`
	SampleOutput     string `json:"sample_output"`
	TestCases        string `json:"test_cases"`
	TimeLimit        int    `json:"time_limit"`
	MemoryLimit      int    `json:"memory_limit"`
}

// BuildathonProblemRequest carries the fields of a buildathon problem
type BuildathonProblemRequest struct {
	Title              string `json:"title" binding:"required,min=3,max=200"`
	Description        string `json:"description" binding:"required"`
	Requirements       string `json:"requirements"`
	Deliverables       string `json:"deliverables"`
	EvaluationCriteria string `json:"evaluation_criteria"`
	TimeLimit          int    `json:"time_limit"`
}

// FlagRequest carries the fields of a flag
type FlagRequest struct {
	Value    string `json:"value" binding:"required,min=1,max=255"`
	IsActive *bool  `json:"is_active"`
}

func challengeExists(challengeID string) error {
	var count int64
	if err := database.DB.Model(&models.Challenge{}).
		Where("id = ?", challengeID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check challenge: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

// AttachAlgorithmicProblem attaches the algorithmic problem to a challenge.
// A challenge can hold at most one, so attaching twice returns ErrConflict.
func AttachAlgorithmicProblem(challengeID string, req AlgorithmicProblemRequest) (*models.AlgorithmicProblem, error) {
	if err := challengeExists(challengeID); err != nil {
		return nil, err
	}

	var count int64
	database.DB.Model(&models.AlgorithmicProblem{}).
		Where("challenge_id = ?", challengeID).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("%w: challenge already has an algorithmic problem", ErrConflict)
	}

	problem := models.AlgorithmicProblem{
		ChallengeID:      challengeID,
		Title:            req.Title,
		ProblemStatement: req.ProblemStatement,
		InputFormat:      req.InputFormat,
		OutputFormat:     req.OutputFormat,
		Constraints:      req.Constraints,
		SampleInput:      req.SampleInput,
		SampleOutput:     req.SampleOutput,
		TestCases:        req.TestCases,
		TimeLimit:        req.TimeLimit,
		MemoryLimit:      req.MemoryLimit,
	}
	if problem.TimeLimit <= 0 {
		problem.TimeLimit = 2
	}
	if problem.MemoryLimit <= 0 {
		problem.MemoryLimit = 128
	}
	if err := database.DB.Create(&problem).Error; err != nil {
		return nil, fmt.Errorf("failed to create algorithmic problem: %w", err)
	}
	return &problem, nil
}

// UpdateAlgorithmicProblem replaces the challenge's algorithmic problem fields
func UpdateAlgorithmicProblem(challengeID string, req AlgorithmicProblemRequest) (*models.AlgorithmicProblem, error) {
	var problem models.AlgorithmicProblem
	err := database.DB.First(&problem, "challenge_id = ?", challengeID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch algorithmic problem: %w", err)
	}

	problem.Title = req.Title
	problem.ProblemStatement = req.ProblemStatement
	problem.InputFormat = req.InputFormat
	problem.OutputFormat = req.OutputFormat
	problem.Constraints = req.Constraints
	problem.SampleInput = req.SampleInput
	problem.SampleOutput = req.SampleOutput
	problem.TestCases = req.TestCases
	if req.TimeLimit > 0 {
		problem.TimeLimit = req.TimeLimit
	}
	if req.MemoryLimit > 0 {
		problem.MemoryLimit = req.MemoryLimit
	}
	if err := database.DB.Save(&problem).Error; err != nil {
		return nil, fmt.Errorf("failed to update algorithmic problem: %w", err)
	}
	return &problem, nil
}

// DeleteAlgorithmicProblem detaches the algorithmic problem from a challenge
func DeleteAlgorithmicProblem(challengeID string) error {
	result := database.DB.Delete(&models.AlgorithmicProblem{}, "challenge_id = ?", challengeID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete algorithmic problem: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AttachBuildathonProblem attaches the buildathon problem to a challenge.
// A challenge can hold at most one, so attaching twice returns ErrConflict.
func AttachBuildathonProblem(challengeID string, req BuildathonProblemRequest) (*models.BuildathonProblem, error) {
	if err := challengeExists(challengeID); err != nil {
		return nil, err
	}

	var count int64
	database.DB.Model(&models.BuildathonProblem{}).
		Where("challenge_id = ?", challengeID).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("%w: challenge already has a buildathon problem", ErrConflict)
	}

	problem := models.BuildathonProblem{
		ChallengeID:        challengeID,
		Title:              req.Title,
		Description:        req.Description,
		Requirements:       req.Requirements,
		Deliverables:       req.Deliverables,
		EvaluationCriteria: req.EvaluationCriteria,
		TimeLimit:          req.TimeLimit,
	}
	if problem.TimeLimit <= 0 {
		problem.TimeLimit = 24
	}
	if err := database.DB.Create(&problem).Error; err != nil {
		return nil, fmt.Errorf("failed to create buildathon problem: %w", err)
	}
	return &problem, nil
}

// UpdateBuildathonProblem replaces the challenge's buildathon problem fields
func UpdateBuildathonProblem(challengeID string, req BuildathonProblemRequest) (*models.BuildathonProblem, error) {
	var problem models.BuildathonProblem
	err := database.DB.First(&problem, "challenge_id = ?", challengeID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch buildathon problem: %w", err)
	}

	problem.Title = req.Title
	problem.Description = req.Description
	problem.Requirements = req.Requirements
	problem.Deliverables = req.Deliverables
	problem.EvaluationCriteria = req.EvaluationCriteria
	if req.TimeLimit > 0 {
		problem.TimeLimit = req.TimeLimit
	}
	if err := database.DB.Save(&problem).Error; err != nil {
		return nil, fmt.Errorf("failed to update buildathon problem: %w", err)
	}
	return &problem, nil
}

// DeleteBuildathonProblem detaches the buildathon problem from a challenge
func DeleteBuildathonProblem(challengeID string) error {
	result := database.DB.Delete(&models.BuildathonProblem{}, "challenge_id = ?", challengeID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete buildathon problem: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// FlagView is a flag joined with its challenge title, for the admin panel's
// global flag listing
type FlagView struct {
	ID             string    `json:"id"`
	ChallengeID    string    `json:"challenge_id"`
	ChallengeTitle string    `json:"challenge_title"`
	Value          string    `json:"value"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

// GetAllFlags lists every flag across all challenges with its challenge
// title, newest first
func GetAllFlags() ([]FlagView, error) {
	var views []FlagView
	err := database.DB.Model(&models.Flag{}).
		Select("flags.id, flags.challenge_id, challenges.title AS challenge_title, flags.value, flags.is_active, flags.created_at").
		Joins("JOIN challenges ON challenges.id = flags.challenge_id").
		Order("flags.created_at DESC").
		Scan(&views).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch flags: %w", err)
	}
	return views, nil
}

// GetFlags lists every flag of a challenge, active or not
func GetFlags(challengeID string) ([]models.Flag, error) {
	if err := challengeExists(challengeID); err != nil {
		return nil, err
	}
	var flags []models.Flag
	if err := database.DB.Where("challenge_id = ?", challengeID).
		Order("created_at ASC").Find(&flags).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch flags: %w", err)
	}
	return flags, nil
}

// AddFlag adds a flag to a challenge
func AddFlag(challengeID string, req FlagRequest) (*models.Flag, error) {
	if err := challengeExists(challengeID); err != nil {
		return nil, err
	}

	flag := models.Flag{
		ChallengeID: challengeID,
		Value:       req.Value,
		IsActive:    true,
	}
	if req.IsActive != nil {
		flag.IsActive = *req.IsActive
	}
	if err := database.DB.Create(&flag).Error; err != nil {
		return nil, fmt.Errorf("failed to create flag: %w", err)
	}
	return &flag, nil
}

// UpdateFlag replaces a flag's value and active state
func UpdateFlag(flagID string, req FlagRequest) (*models.Flag, error) {
	var flag models.Flag
	err := database.DB.First(&flag, "id = ?", flagID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch flag: %w", err)
	}

	flag.Value = req.Value
	if req.IsActive != nil {
		flag.IsActive = *req.IsActive
	}
	if err := database.DB.Save(&flag).Error; err != nil {
		return nil, fmt.Errorf("failed to update flag: %w", err)
	}
	return &flag, nil
}

// DeleteFlag removes a flag
func DeleteFlag(flagID string) error {
	result := database.DB.Delete(&models.Flag{}, "id = ?", flagID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete flag: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
