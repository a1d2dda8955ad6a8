package services

import (
	"context"
	"testing"
	"time"

	"oasis/database"
	"oasis/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedStandings(t *testing.T) (alpha, beta, gamma *models.Team) {
	t.Helper()

	alpha = createTestTeam(t, "alpha")
	beta = createTestTeam(t, "beta")
	gamma = createTestTeam(t, "gamma")

	one := createTestChallenge(t, "Gate One", 100, "F1")
	two := createTestChallenge(t, "Gate Two", 100, "F2")

	// alpha: both flags, one buildathon finished
	_, _, err := SubmitFlag(alpha.ID, one.ID, "F1")
	require.NoError(t, err)
	_, _, err = SubmitFlag(alpha.ID, two.ID, "F2")
	require.NoError(t, err)
	link := "https://github.com/alpha/project"
	_, err = CreateSubmission(alpha.ID, CreateSubmissionRequest{
		ChallengeID: one.ID,
		Type:        models.SubmissionTypeBuildathon,
		GithubLink:  &link,
	})
	require.NoError(t, err)

	// beta: one flag
	_, _, err = SubmitFlag(beta.ID, one.ID, "F1")
	require.NoError(t, err)

	// gamma: one flag, later than beta
	time.Sleep(5 * time.Millisecond)
	_, _, err = SubmitFlag(gamma.ID, one.ID, "F1")
	require.NoError(t, err)

	return alpha, beta, gamma
}

func TestLeaderboardOrdering(t *testing.T) {
	setupTestDB(t)
	alpha, beta, gamma := seedStandings(t)

	entries, err := GetLeaderboard(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, alpha.ID, entries[0].TeamID)
	assert.Equal(t, 250, entries[0].TotalPoints)
	assert.Equal(t, 1, entries[0].ChallengesCompleted)
	assert.Equal(t, 1, entries[0].Rank)

	// beta and gamma tie on points and completions; the earlier last
	// submission ranks first
	assert.Equal(t, beta.ID, entries[1].TeamID)
	assert.Equal(t, gamma.ID, entries[2].TeamID)
	assert.Equal(t, 100, entries[1].TotalPoints)
	assert.Equal(t, 3, entries[2].Rank)
}

func TestLeaderboardExcludesInactiveTeams(t *testing.T) {
	setupTestDB(t)
	_, beta, _ := seedStandings(t)

	require.NoError(t, database.DB.Model(&models.Team{}).
		Where("id = ?", beta.ID).Update("is_active", false).Error)

	entries, err := GetLeaderboard(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.NotEqual(t, beta.ID, entry.TeamID)
	}
}

func TestLeaderboardLimit(t *testing.T) {
	setupTestDB(t)
	seedStandings(t)

	entries, err := GetLeaderboard(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestLeaderboardCaching(t *testing.T) {
	setupTestDB(t)

	mr := miniredis.RunT(t)
	database.RDB = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { database.RDB = nil })

	alpha := createTestTeam(t, "alpha")
	challenge := createTestChallenge(t, "Gate One", 100, "F1")

	ctx := context.Background()
	entries, err := GetLeaderboard(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.True(t, mr.Exists("leaderboard:10"))

	// An accepted submission invalidates the cached standings and the
	// next read reflects the new points
	_, _, err = SubmitFlag(alpha.ID, challenge.ID, "F1")
	require.NoError(t, err)

	entries, err = GetLeaderboard(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 100, entries[0].TotalPoints)
}

func TestDashboardStats(t *testing.T) {
	setupTestDB(t)
	seedStandings(t)

	stats, err := GetDashboardStats(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, 3, stats.TotalTeams)
	assert.EqualValues(t, 3, stats.ActiveTeams)
	assert.EqualValues(t, 2, stats.TotalChallenges)
	assert.EqualValues(t, 5, stats.TotalSubmissions)
	assert.NotEmpty(t, stats.TopTeams)
	assert.NotEmpty(t, stats.RecentSubmissions)
	assert.Equal(t, "alpha", stats.TopTeams[0].TeamName)
}
