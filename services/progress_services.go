package services

import (
	"fmt"
	"sort"
	"time"

	"oasis/database"
	"oasis/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ChallengeProgress is one team's progress snapshot for one challenge
type ChallengeProgress struct {
	ChallengeID          string     `json:"challenge_id"`
	ChallengeTitle       string     `json:"challenge_title"`
	AlgorithmicCompleted bool       `json:"algorithmic_completed"`
	BuildathonUnlocked   bool       `json:"buildathon_unlocked"`
	BuildathonCompleted  bool       `json:"buildathon_completed"`
	Points               int        `json:"points"`
	StartedAt            time.Time  `json:"started_at"`
	CompletedAt          *time.Time `json:"completed_at"`
}

// TeamProgress aggregates a team's standing across all challenges
type TeamProgress struct {
	TeamID              string              `json:"team_id"`
	TeamName            string              `json:"team_name"`
	TotalPoints         int                 `json:"total_points"`
	ChallengesStarted   int                 `json:"challenges_started"`
	ChallengesCompleted int                 `json:"challenges_completed"`
	LastActivity        *time.Time          `json:"last_activity"`
	ChallengeProgress   []ChallengeProgress `json:"challenge_progress"`
}

// UnlockBuildathonPhase records that the team solved the algorithmic phase
// of the challenge. The upsert is atomic on the (team, challenge) unique
// index so concurrent evaluations cannot lose the unlock.
func UnlockBuildathonPhase(teamID, challengeID string) error {
	teamChallenge := models.TeamChallenge{
		TeamID:               teamID,
		ChallengeID:          challengeID,
		AlgorithmicCompleted: true,
		BuildathonUnlocked:   true,
		StartedAt:            time.Now().UTC(),
	}

	err := database.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "team_id"}, {Name: "challenge_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"algorithmic_completed": true,
			"buildathon_unlocked":   true,
		}),
	}).Create(&teamChallenge).Error
	if err != nil {
		return fmt.Errorf("failed to unlock buildathon phase: %w", err)
	}

	// The accepted flag submission is already in the ledger, fold it in
	return RecomputeChallengePoints(teamID, challengeID)
}

// CompleteBuildathonPhase marks the buildathon done and recomputes the
// pair's total points from the submission ledger in the same statement,
// so concurrent evaluations cannot overwrite each other's totals.
// A missing progress record is a silent no-op.
func CompleteBuildathonPhase(teamID, challengeID string) error {
	now := time.Now().UTC()
	err := database.DB.Model(&models.TeamChallenge{}).
		Where("team_id = ? AND challenge_id = ?", teamID, challengeID).
		Updates(map[string]interface{}{
			"buildathon_completed": true,
			"completed_at":         now,
			"total_points": gorm.Expr(
				"(SELECT COALESCE(SUM(points), 0) FROM submissions WHERE team_id = ? AND challenge_id = ? AND status = ?)",
				teamID, challengeID, models.StatusAccepted,
			),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to complete buildathon phase: %w", err)
	}
	return nil
}

// RecomputeChallengePoints refreshes a pair's total points from the ledger.
// Used after admin re-evaluation so totals never drift from the submissions.
func RecomputeChallengePoints(teamID, challengeID string) error {
	err := database.DB.Model(&models.TeamChallenge{}).
		Where("team_id = ? AND challenge_id = ?", teamID, challengeID).
		Update("total_points", gorm.Expr(
			"(SELECT COALESCE(SUM(points), 0) FROM submissions WHERE team_id = ? AND challenge_id = ? AND status = ?)",
			teamID, challengeID, models.StatusAccepted,
		)).Error
	if err != nil {
		return fmt.Errorf("failed to recompute challenge points: %w", err)
	}
	return nil
}

// GetTeamProgress returns aggregate stats plus per-challenge snapshots for one team
func GetTeamProgress(teamID string) (*TeamProgress, error) {
	var team models.Team
	if err := database.DB.Preload("TeamChallenges.Challenge").First(&team, "id = ?", teamID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch team: %w", err)
	}

	return buildTeamProgress(&team), nil
}

// GetAllTeamProgress returns the progress dossier of every active team,
// ordered by points then completions
func GetAllTeamProgress() ([]TeamProgress, error) {
	var teams []models.Team
	if err := database.DB.Preload("TeamChallenges.Challenge").
		Where("is_active = ?", true).Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch teams: %w", err)
	}

	result := make([]TeamProgress, 0, len(teams))
	for i := range teams {
		result = append(result, *buildTeamProgress(&teams[i]))
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].TotalPoints != result[j].TotalPoints {
			return result[i].TotalPoints > result[j].TotalPoints
		}
		return result[i].ChallengesCompleted > result[j].ChallengesCompleted
	})

	return result, nil
}

func buildTeamProgress(team *models.Team) *TeamProgress {
	progress := TeamProgress{
		TeamID:            team.ID,
		TeamName:          team.Name,
		ChallengesStarted: len(team.TeamChallenges),
		ChallengeProgress: make([]ChallengeProgress, 0, len(team.TeamChallenges)),
	}

	for _, tc := range team.TeamChallenges {
		progress.TotalPoints += tc.TotalPoints
		if tc.BuildathonCompleted {
			progress.ChallengesCompleted++
		}

		snapshot := ChallengeProgress{
			ChallengeID:          tc.ChallengeID,
			AlgorithmicCompleted: tc.AlgorithmicCompleted,
			BuildathonUnlocked:   tc.BuildathonUnlocked,
			BuildathonCompleted:  tc.BuildathonCompleted,
			Points:               tc.TotalPoints,
			StartedAt:            tc.StartedAt,
			CompletedAt:          tc.CompletedAt,
		}
		if tc.Challenge != nil {
			snapshot.ChallengeTitle = tc.Challenge.Title
		}
		progress.ChallengeProgress = append(progress.ChallengeProgress, snapshot)
	}

	var lastSubmission models.Submission
	if err := database.DB.Where("team_id = ?", team.ID).
		Order("submitted_at DESC").First(&lastSubmission).Error; err == nil {
		progress.LastActivity = &lastSubmission.SubmittedAt
	}

	return &progress
}

// BuildathonUnlocked reports whether the team has unlocked the buildathon phase of a challenge
func BuildathonUnlocked(teamID, challengeID string) bool {
	var teamChallenge models.TeamChallenge
	err := database.DB.Where("team_id = ? AND challenge_id = ?", teamID, challengeID).
		First(&teamChallenge).Error
	return err == nil && teamChallenge.BuildathonUnlocked
}
