package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"oasis/config"
	"oasis/database"
	"oasis/metrics"
	"oasis/models"
	"oasis/realtime"
	"oasis/utils"

	"gorm.io/gorm"
)

const (
	MsgFlagAccepted  = "Flag accepted! Buildathon phase unlocked."
	MsgFlagRejected  = "Invalid flag."
	msgInvalidGithub = "Invalid GitHub link"
)

// CreateSubmissionRequest carries a new submission of any type
type CreateSubmissionRequest struct {
	ChallengeID string
	Type        models.SubmissionType
	Code        string
	Language    string
	FlagValue   *string
	GithubLink  *string
}

// SubmissionView is a submission joined with its team and challenge names
type SubmissionView struct {
	ID             string                  `json:"id"`
	TeamID         string                  `json:"team_id"`
	TeamName       string                  `json:"team_name"`
	ChallengeID    string                  `json:"challenge_id"`
	ChallengeTitle string                  `json:"challenge_title"`
	Type           models.SubmissionType   `json:"type"`
	Code           string                  `json:"code"`
	Language       string                  `json:"language"`
	FlagValue      *string                 `json:"flag_value"`
	GithubLink     *string                 `json:"github_link"`
	Status         models.SubmissionStatus `json:"status"`
	Output         *string                 `json:"output"`
	ErrorMessage   *string                 `json:"error_message"`
	ExecutionTime  *int                    `json:"execution_time"`
	MemoryUsed     *int                    `json:"memory_used"`
	Points         int                     `json:"points"`
	SubmittedAt    time.Time               `json:"submitted_at"`
	EvaluatedAt    *time.Time              `json:"evaluated_at"`
}

// CreateSubmission persists a submission and evaluates it immediately:
// flags against the flag store, buildathon links against the GitHub rule,
// algorithmic code through the configured judge.
func CreateSubmission(teamID string, req CreateSubmissionRequest) (*SubmissionView, error) {
	var challenge models.Challenge
	if err := database.DB.First(&challenge, "id = ?", req.ChallengeID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch challenge: %w", err)
	}

	if err := validatePayload(req.Type, req.FlagValue, req.GithubLink); err != nil {
		return nil, err
	}

	// Flag guesses go through the same cooldown regardless of entry point
	if req.Type == models.SubmissionTypeFlag && flagCooldownActive(teamID, req.ChallengeID) {
		return nil, ErrRateLimited
	}

	submission := models.Submission{
		TeamID:      teamID,
		ChallengeID: req.ChallengeID,
		Type:        req.Type,
		Code:        req.Code,
		Language:    req.Language,
		FlagValue:   req.FlagValue,
		GithubLink:  req.GithubLink,
		Status:      models.StatusPending,
		SubmittedAt: time.Now().UTC(),
	}
	if err := database.DB.Create(&submission).Error; err != nil {
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}

	if err := evaluate(&submission, &challenge); err != nil {
		return nil, err
	}

	return GetSubmissionByID(submission.ID)
}

// SubmitFlag records a flag attempt and evaluates it, enforcing the
// per-team cooldown after repeated wrong attempts
func SubmitFlag(teamID, challengeID, flagValue string) (bool, string, error) {
	if flagValue == "" {
		return false, "", ErrInvalidRequest
	}

	if flagCooldownActive(teamID, challengeID) {
		return false, "", ErrRateLimited
	}

	var challenge models.Challenge
	if err := database.DB.First(&challenge, "id = ?", challengeID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, "", ErrNotFound
		}
		return false, "", fmt.Errorf("failed to fetch challenge: %w", err)
	}

	submission := models.Submission{
		TeamID:      teamID,
		ChallengeID: challengeID,
		Type:        models.SubmissionTypeFlag,
		FlagValue:   &flagValue,
		Status:      models.StatusPending,
		SubmittedAt: time.Now().UTC(),
	}
	if err := database.DB.Create(&submission).Error; err != nil {
		return false, "", fmt.Errorf("failed to create submission: %w", err)
	}

	accepted, err := evaluateFlagSubmission(&submission, &challenge)
	if err != nil {
		return false, "", err
	}
	if accepted {
		return true, MsgFlagAccepted, nil
	}
	return false, MsgFlagRejected, nil
}

// EvaluateSubmission re-runs evaluation for a submission by id. Used by
// the admin panel; status and points are reset first and the pair's
// totals recomputed afterwards so re-evaluation cannot double-count.
func EvaluateSubmission(submissionID string) error {
	var submission models.Submission
	if err := database.DB.First(&submission, "id = ?", submissionID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to fetch submission: %w", err)
	}

	var challenge models.Challenge
	if err := database.DB.First(&challenge, "id = ?", submission.ChallengeID).Error; err != nil {
		return fmt.Errorf("failed to fetch challenge: %w", err)
	}

	if err := validatePayload(submission.Type, submission.FlagValue, submission.GithubLink); err != nil {
		return err
	}

	submission.Status = models.StatusPending
	submission.Points = 0
	if err := database.DB.Model(&submission).Updates(map[string]interface{}{
		"status": models.StatusPending,
		"points": 0,
	}).Error; err != nil {
		return fmt.Errorf("failed to reset submission: %w", err)
	}

	if err := evaluate(&submission, &challenge); err != nil {
		return err
	}

	return RecomputeChallengePoints(submission.TeamID, submission.ChallengeID)
}

func validatePayload(subType models.SubmissionType, flagValue, githubLink *string) error {
	switch subType {
	case models.SubmissionTypeFlag:
		if flagValue == nil || *flagValue == "" {
			return ErrInvalidRequest
		}
	case models.SubmissionTypeBuildathon:
		if githubLink == nil || *githubLink == "" {
			return ErrInvalidRequest
		}
	case models.SubmissionTypeAlgorithmic:
		// code may legitimately be empty for some languages; the judge decides
	default:
		return ErrInvalidRequest
	}
	return nil
}

func evaluate(submission *models.Submission, challenge *models.Challenge) error {
	start := time.Now()
	defer metrics.RecordEvaluation(string(submission.Type), start)

	var err error
	switch submission.Type {
	case models.SubmissionTypeFlag:
		_, err = evaluateFlagSubmission(submission, challenge)
	case models.SubmissionTypeAlgorithmic:
		err = evaluateAlgorithmicSubmission(submission, challenge)
	case models.SubmissionTypeBuildathon:
		err = evaluateBuildathonSubmission(submission, challenge)
	default:
		err = ErrInvalidRequest
	}
	return err
}

// evaluateFlagSubmission matches the submitted value against the
// challenge's active flags: exact, case-sensitive equality
func evaluateFlagSubmission(submission *models.Submission, challenge *models.Challenge) (bool, error) {
	var flag models.Flag
	matchErr := database.DB.Where("challenge_id = ? AND is_active = ? AND value = ?",
		submission.ChallengeID, true, submission.FlagValue).First(&flag).Error

	now := time.Now().UTC()
	if matchErr == nil {
		submission.Status = models.StatusAccepted
		submission.Points = challenge.Points
		submission.EvaluatedAt = &now
		if err := database.DB.Save(submission).Error; err != nil {
			return false, fmt.Errorf("failed to save submission: %w", err)
		}

		if err := UnlockBuildathonPhase(submission.TeamID, submission.ChallengeID); err != nil {
			return false, err
		}

		metrics.SubmissionCounter.WithLabelValues(string(submission.Type), string(submission.Status)).Inc()
		afterAccepted()
		return true, nil
	}

	if matchErr != gorm.ErrRecordNotFound {
		return false, fmt.Errorf("failed to look up flag: %w", matchErr)
	}

	submission.Status = models.StatusWrongAnswer
	submission.EvaluatedAt = &now
	if err := database.DB.Save(submission).Error; err != nil {
		return false, fmt.Errorf("failed to save submission: %w", err)
	}
	metrics.SubmissionCounter.WithLabelValues(string(submission.Type), string(submission.Status)).Inc()
	return false, nil
}

// evaluateAlgorithmicSubmission delegates the verdict to the configured judge
func evaluateAlgorithmicSubmission(submission *models.Submission, challenge *models.Challenge) error {
	result, err := activeJudge.Evaluate(context.Background(), submission, challenge)
	if err != nil {
		return fmt.Errorf("judge evaluation failed: %w", err)
	}

	now := time.Now().UTC()
	submission.Status = result.Status
	submission.Output = result.Output
	submission.ErrorMessage = result.ErrorMessage
	submission.ExecutionTime = result.ExecutionTime
	submission.MemoryUsed = result.MemoryUsed
	submission.EvaluatedAt = &now
	if result.Status == models.StatusAccepted {
		submission.Points = result.Points
	}
	if err := database.DB.Save(submission).Error; err != nil {
		return fmt.Errorf("failed to save submission: %w", err)
	}

	metrics.SubmissionCounter.WithLabelValues(string(submission.Type), string(submission.Status)).Inc()
	if submission.Status == models.StatusAccepted {
		afterAccepted()
	}
	return nil
}

// evaluateBuildathonSubmission validates the repository link and, when
// accepted, completes the buildathon phase at half the challenge points
func evaluateBuildathonSubmission(submission *models.Submission, challenge *models.Challenge) error {
	now := time.Now().UTC()

	if submission.GithubLink == nil || !utils.IsValidGitHubURL(*submission.GithubLink) {
		message := msgInvalidGithub
		submission.Status = models.StatusRejected
		submission.ErrorMessage = &message
		submission.EvaluatedAt = &now
		if err := database.DB.Save(submission).Error; err != nil {
			return fmt.Errorf("failed to save submission: %w", err)
		}
		metrics.SubmissionCounter.WithLabelValues(string(submission.Type), string(submission.Status)).Inc()
		return nil
	}

	submission.Status = models.StatusAccepted
	submission.Points = challenge.Points / 2
	submission.EvaluatedAt = &now
	if err := database.DB.Save(submission).Error; err != nil {
		return fmt.Errorf("failed to save submission: %w", err)
	}

	if err := CompleteBuildathonPhase(submission.TeamID, submission.ChallengeID); err != nil {
		return err
	}

	metrics.SubmissionCounter.WithLabelValues(string(submission.Type), string(submission.Status)).Inc()
	afterAccepted()
	return nil
}

// flagCooldownActive reports whether the team has burned through its
// wrong-flag attempt budget for this challenge
func flagCooldownActive(teamID, challengeID string) bool {
	cfg := config.DefaultFlagRateLimitConfig
	now := time.Now().UTC()

	var recent int64
	database.DB.Model(&models.Submission{}).
		Where("team_id = ? AND challenge_id = ? AND type = ? AND status = ? AND submitted_at > ?",
			teamID, challengeID, models.SubmissionTypeFlag, models.StatusWrongAnswer, now.Add(-cfg.CooldownDuration2)).
		Count(&recent)
	if recent >= int64(cfg.AttemptsThreshold2) {
		return true
	}

	database.DB.Model(&models.Submission{}).
		Where("team_id = ? AND challenge_id = ? AND type = ? AND status = ? AND submitted_at > ?",
			teamID, challengeID, models.SubmissionTypeFlag, models.StatusWrongAnswer, now.Add(-cfg.CooldownDuration1)).
		Count(&recent)
	return recent >= int64(cfg.AttemptsThreshold1)
}

// afterAccepted refreshes everything derived from the ledger: the cached
// leaderboard is dropped and the live stream gets the new standings.
// Failures here never fail the evaluation itself.
func afterAccepted() {
	ctx := context.Background()
	if err := database.InvalidateCachePattern(ctx, "leaderboard:*"); err != nil {
		log.Printf("failed to invalidate leaderboard cache: %v", err)
	}

	entries, err := GetLeaderboard(ctx, 10)
	if err != nil {
		log.Printf("failed to refresh leaderboard for broadcast: %v", err)
		return
	}
	realtime.BroadcastLeaderboard(entries)
}

// GetSubmissionByID returns one submission with team and challenge names
func GetSubmissionByID(id string) (*SubmissionView, error) {
	var submission models.Submission
	err := database.DB.Preload("Team").Preload("Challenge").First(&submission, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch submission: %w", err)
	}
	view := toSubmissionView(&submission)
	return &view, nil
}

// GetAllSubmissions returns every submission, newest first
func GetAllSubmissions() ([]SubmissionView, error) {
	return listSubmissions(database.DB)
}

// GetSubmissionsByTeam returns a team's submissions, newest first
func GetSubmissionsByTeam(teamID string) ([]SubmissionView, error) {
	return listSubmissions(database.DB.Where("team_id = ?", teamID))
}

// GetSubmissionsByChallenge returns a challenge's submissions, newest first
func GetSubmissionsByChallenge(challengeID string) ([]SubmissionView, error) {
	return listSubmissions(database.DB.Where("challenge_id = ?", challengeID))
}

func listSubmissions(tx *gorm.DB) ([]SubmissionView, error) {
	var submissions []models.Submission
	if err := tx.Preload("Team").Preload("Challenge").
		Order("submitted_at DESC").Find(&submissions).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch submissions: %w", err)
	}

	views := make([]SubmissionView, 0, len(submissions))
	for i := range submissions {
		views = append(views, toSubmissionView(&submissions[i]))
	}
	return views, nil
}

func toSubmissionView(s *models.Submission) SubmissionView {
	view := SubmissionView{
		ID:            s.ID,
		TeamID:        s.TeamID,
		ChallengeID:   s.ChallengeID,
		Type:          s.Type,
		Code:          s.Code,
		Language:      s.Language,
		FlagValue:     s.FlagValue,
		GithubLink:    s.GithubLink,
		Status:        s.Status,
		Output:        s.Output,
		ErrorMessage:  s.ErrorMessage,
		ExecutionTime: s.ExecutionTime,
		MemoryUsed:    s.MemoryUsed,
		Points:        s.Points,
		SubmittedAt:   s.SubmittedAt,
		EvaluatedAt:   s.EvaluatedAt,
	}
	if s.Team != nil {
		view.TeamName = s.Team.Name
	}
	if s.Challenge != nil {
		view.ChallengeTitle = s.Challenge.Title
	}
	return view
}
