package models

// LeaderboardEntry is one ranked row of the team leaderboard.
// Ties on points and completions break on earliest last submission;
// that ordering happens in the query, the timestamp itself is not exposed.
type LeaderboardEntry struct {
	Rank                int    `json:"rank"`
	TeamID              string `gorm:"column:team_id" json:"team_id"`
	TeamName            string `gorm:"column:team_name" json:"team_name"`
	TotalPoints         int    `gorm:"column:total_points" json:"total_points"`
	ChallengesCompleted int    `gorm:"column:challenges_completed" json:"challenges_completed"`
}
