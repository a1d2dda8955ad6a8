package services

import (
	"context"
	"fmt"
	"time"

	"oasis/database"
	"oasis/models"
)

// DashboardStats is the admin panel's front-page summary
type DashboardStats struct {
	TotalTeams        int64                     `json:"total_teams"`
	ActiveTeams       int64                     `json:"active_teams"`
	TotalChallenges   int64                     `json:"total_challenges"`
	ActiveChallenges  int64                     `json:"active_challenges"`
	TotalSubmissions  int64                     `json:"total_submissions"`
	TodaySubmissions  int64                     `json:"today_submissions"`
	TopTeams          []models.LeaderboardEntry `json:"top_teams"`
	RecentSubmissions []RecentSubmission        `json:"recent_submissions"`
}

// RecentSubmission is a compact submission row for the admin dashboard feed
type RecentSubmission struct {
	ID             string    `json:"id"`
	TeamName       string    `json:"team_name"`
	ChallengeTitle string    `json:"challenge_title"`
	Type           string    `json:"type"`
	Status         string    `json:"status"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

// GetLeaderboard ranks active teams by total points, then completed
// challenges, then earliest last submission. Results are cached briefly;
// accepted evaluations invalidate the cache.
func GetLeaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	cacheKey := fmt.Sprintf("leaderboard:%d", limit)
	var entries []models.LeaderboardEntry
	if found, _ := database.GetFromCache(ctx, cacheKey, &entries); found {
		return entries, nil
	}

	err := database.DB.Raw(`
		SELECT t.id AS team_id,
		       t.name AS team_name,
		       (SELECT COALESCE(SUM(tc.total_points), 0)
		          FROM team_challenges tc WHERE tc.team_id = t.id) AS total_points,
		       (SELECT COUNT(*)
		          FROM team_challenges tc WHERE tc.team_id = t.id AND tc.buildathon_completed = ?) AS challenges_completed,
		       (SELECT MAX(s.submitted_at)
		          FROM submissions s WHERE s.team_id = t.id) AS last_submission
		FROM teams t
		WHERE t.is_active = ?
		ORDER BY total_points DESC, challenges_completed DESC, last_submission ASC
		LIMIT ?
	`, true, true, limit).Scan(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute leaderboard: %w", err)
	}

	for i := range entries {
		entries[i].Rank = i + 1
	}

	_ = database.SetToCache(ctx, cacheKey, entries)
	return entries, nil
}

// GetDashboardStats aggregates platform-wide counters plus the top teams
// and the most recent submissions
func GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := DashboardStats{}

	database.DB.Model(&models.Team{}).Count(&stats.TotalTeams)
	database.DB.Model(&models.Team{}).Where("is_active = ?", true).Count(&stats.ActiveTeams)
	database.DB.Model(&models.Challenge{}).Count(&stats.TotalChallenges)
	database.DB.Model(&models.Challenge{}).Where("is_active = ?", true).Count(&stats.ActiveChallenges)
	database.DB.Model(&models.Submission{}).Count(&stats.TotalSubmissions)

	todayStart := time.Now().UTC().Truncate(24 * time.Hour)
	database.DB.Model(&models.Submission{}).
		Where("submitted_at >= ?", todayStart).Count(&stats.TodaySubmissions)

	topTeams, err := GetLeaderboard(ctx, 5)
	if err != nil {
		return nil, err
	}
	stats.TopTeams = topTeams

	recent, err := getRecentSubmissions(10)
	if err != nil {
		return nil, err
	}
	stats.RecentSubmissions = recent

	return &stats, nil
}

func getRecentSubmissions(limit int) ([]RecentSubmission, error) {
	var submissions []models.Submission
	if err := database.DB.Preload("Team").Preload("Challenge").
		Order("submitted_at DESC").Limit(limit).Find(&submissions).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch recent submissions: %w", err)
	}

	recent := make([]RecentSubmission, 0, len(submissions))
	for _, s := range submissions {
		row := RecentSubmission{
			ID:          s.ID,
			Type:        string(s.Type),
			Status:      string(s.Status),
			SubmittedAt: s.SubmittedAt,
		}
		if s.Team != nil {
			row.TeamName = s.Team.Name
		}
		if s.Challenge != nil {
			row.ChallengeTitle = s.Challenge.Title
		}
		recent = append(recent, row)
	}
	return recent, nil
}
