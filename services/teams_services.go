package services

import (
	"fmt"
	"time"

	"oasis/database"
	"oasis/middleware"
	"oasis/models"
	"oasis/utils"

	"gorm.io/gorm"
)

// TeamView is a team with its leaderboard aggregates
type TeamView struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Email               string     `json:"email"`
	IsActive            bool       `json:"is_active"`
	CreatedAt           time.Time  `json:"created_at"`
	LastLoginAt         *time.Time `json:"last_login_at"`
	TotalPoints         int        `json:"total_points"`
	ChallengesCompleted int        `json:"challenges_completed"`
}

// RegisterTeam creates a team account; name and email must be unused
func RegisterTeam(name, email, password string) (*TeamView, error) {
	var count int64
	database.DB.Model(&models.Team{}).Where("name = ?", name).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("%w: team name already exists", ErrConflict)
	}

	database.DB.Model(&models.Team{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("%w: email already exists", ErrConflict)
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	team := models.Team{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
		IsActive:     true,
	}
	if err := database.DB.Create(&team).Error; err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return &TeamView{
		ID:        team.ID,
		Name:      team.Name,
		Email:     team.Email,
		IsActive:  team.IsActive,
		CreatedAt: team.CreatedAt,
	}, nil
}

// LoginTeam verifies credentials and issues a team token.
// Wrong email and wrong password are indistinguishable to the caller.
func LoginTeam(email, password string) (string, *models.Team, error) {
	var team models.Team
	err := database.DB.Where("email = ?", email).First(&team).Error
	if err != nil || !utils.CheckPasswordHash(password, team.PasswordHash) {
		return "", nil, ErrUnauthorized
	}

	if !team.IsActive {
		return "", nil, ErrAccountDisabled
	}

	now := time.Now().UTC()
	team.LastLoginAt = &now
	if err := database.DB.Save(&team).Error; err != nil {
		return "", nil, fmt.Errorf("failed to update last login: %w", err)
	}

	token, err := utils.GenerateToken(team.ID, team.Name, team.Email, middleware.RoleTeam)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return token, &team, nil
}

// GetAllTeams lists every team with its aggregates, ordered by name
func GetAllTeams() ([]TeamView, error) {
	var views []TeamView
	err := database.DB.Raw(`
		SELECT t.id, t.name, t.email, t.is_active, t.created_at, t.last_login_at,
		       (SELECT COALESCE(SUM(tc.total_points), 0)
		          FROM team_challenges tc WHERE tc.team_id = t.id) AS total_points,
		       (SELECT COUNT(*)
		          FROM team_challenges tc WHERE tc.team_id = t.id AND tc.buildathon_completed = ?) AS challenges_completed
		FROM teams t
		ORDER BY t.name ASC
	`, true).Scan(&views).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch teams: %w", err)
	}
	return views, nil
}

// GetTeamByID returns one team with its aggregates
func GetTeamByID(id string) (*TeamView, error) {
	var team models.Team
	if err := database.DB.First(&team, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch team: %w", err)
	}

	view := TeamView{
		ID:          team.ID,
		Name:        team.Name,
		Email:       team.Email,
		IsActive:    team.IsActive,
		CreatedAt:   team.CreatedAt,
		LastLoginAt: team.LastLoginAt,
	}

	var totalPoints int64
	database.DB.Model(&models.TeamChallenge{}).
		Where("team_id = ?", team.ID).
		Select("COALESCE(SUM(total_points), 0)").Scan(&totalPoints)
	view.TotalPoints = int(totalPoints)

	var completed int64
	database.DB.Model(&models.TeamChallenge{}).
		Where("team_id = ? AND buildathon_completed = ?", team.ID, true).Count(&completed)
	view.ChallengesCompleted = int(completed)

	return &view, nil
}

// SetTeamActive toggles a team account's active flag
func SetTeamActive(id string, active bool) error {
	result := database.DB.Model(&models.Team{}).Where("id = ?", id).Update("is_active", active)
	if result.Error != nil {
		return fmt.Errorf("failed to update team: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
