package services

import (
	"testing"
	"time"

	"oasis/database"
	"oasis/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetChallengeForTeamHidesSecrets(t *testing.T) {
	setupTestDB(t)
	team := createTestTeam(t, "phoenix")
	challenge := createTestChallenge(t, "Gate One", 100, "X1")

	_, err := AttachBuildathonProblem(challenge.ID, BuildathonProblemRequest{
		Title:       "Build the thing",
		Description: "A project brief",
	})
	require.NoError(t, err)

	view, err := GetChallengeForTeam(challenge.ID, team.ID)
	require.NoError(t, err)
	assert.Nil(t, view.Flags)
	assert.Nil(t, view.BuildathonProblem)
}

func TestGetChallengeForTeamRevealsBuildathonAfterUnlock(t *testing.T) {
	setupTestDB(t)
	team := createTestTeam(t, "phoenix")
	challenge := createTestChallenge(t, "Gate One", 100, "X1")

	_, err := AttachBuildathonProblem(challenge.ID, BuildathonProblemRequest{
		Title:       "Build the thing",
		Description: "A project brief",
	})
	require.NoError(t, err)

	_, _, err = SubmitFlag(team.ID, challenge.ID, "X1")
	require.NoError(t, err)

	view, err := GetChallengeForTeam(challenge.ID, team.ID)
	require.NoError(t, err)
	require.NotNil(t, view.BuildathonProblem)
	assert.Equal(t, "Build the thing", view.BuildathonProblem.Title)
	assert.Nil(t, view.Flags)
}

func TestGetChallengeForTeamInactive(t *testing.T) {
	setupTestDB(t)
	team := createTestTeam(t, "phoenix")
	challenge := createTestChallenge(t, "Gate One", 100, "X1")

	require.NoError(t, database.DB.Model(challenge).Update("is_active", false).Error)

	_, err := GetChallengeForTeam(challenge.ID, team.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestChallengeSummariesActiveFilter(t *testing.T) {
	setupTestDB(t)
	createTestChallenge(t, "Gate One", 100, "X1")
	inactive := createTestChallenge(t, "Gate Two", 100)
	require.NoError(t, database.DB.Model(inactive).Update("is_active", false).Error)

	all, err := GetChallengeSummaries(false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := GetChallengeSummaries(true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Gate One", active[0].Title)
	assert.EqualValues(t, 1, active[0].FlagCount)
}

func TestUpdateChallengePartial(t *testing.T) {
	setupTestDB(t)
	challenge := createTestChallenge(t, "Gate One", 100, "X1")

	points := 200
	updated, err := UpdateChallenge(challenge.ID, UpdateChallengeRequest{Points: &points})
	require.NoError(t, err)
	assert.Equal(t, 200, updated.Points)
	assert.Equal(t, "Gate One", updated.Title)

	bad := 0
	_, err = UpdateChallenge(challenge.ID, UpdateChallengeRequest{Points: &bad})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = UpdateChallenge("00000000-0000-0000-0000-000000000000", UpdateChallengeRequest{Points: &points})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteChallenge(t *testing.T) {
	setupTestDB(t)
	challenge := createTestChallenge(t, "Gate One", 100, "X1")

	require.NoError(t, DeleteChallenge(challenge.ID))
	assert.ErrorIs(t, DeleteChallenge(challenge.ID), ErrNotFound)
}

func TestAttachProblemTwiceConflicts(t *testing.T) {
	setupTestDB(t)
	challenge := createTestChallenge(t, "Gate One", 100)

	req := AlgorithmicProblemRequest{
		Title:            "Sum of parts",
		ProblemStatement: "Add the numbers",
	}
	problem, err := AttachAlgorithmicProblem(challenge.ID, req)
	require.NoError(t, err)
	assert.Equal(t, 2, problem.TimeLimit)
	assert.Equal(t, 128, problem.MemoryLimit)

	_, err = AttachAlgorithmicProblem(challenge.ID, req)
	assert.ErrorIs(t, err, ErrConflict)

	_, err = AttachAlgorithmicProblem("00000000-0000-0000-0000-000000000000", req)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFlagLifecycle(t *testing.T) {
	setupTestDB(t)
	challenge := createTestChallenge(t, "Gate One", 100, "X1")

	flag, err := AddFlag(challenge.ID, FlagRequest{Value: "X2"})
	require.NoError(t, err)
	assert.True(t, flag.IsActive)

	inactive := false
	updated, err := UpdateFlag(flag.ID, FlagRequest{Value: "X3", IsActive: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "X3", updated.Value)
	assert.False(t, updated.IsActive)

	flags, err := GetFlags(challenge.ID)
	require.NoError(t, err)
	assert.Len(t, flags, 2)

	require.NoError(t, DeleteFlag(flag.ID))
	assert.ErrorIs(t, DeleteFlag(flag.ID), ErrNotFound)
}

func TestGetAllFlagsJoinsChallengeTitles(t *testing.T) {
	setupTestDB(t)
	createTestChallenge(t, "Gate One", 100, "X1")
	gateTwo := createTestChallenge(t, "Gate Two", 200, "Y1")

	// A later flag must come back first
	recent := models.Flag{
		ChallengeID: gateTwo.ID,
		Value:       "Y2",
		IsActive:    true,
		CreatedAt:   time.Now().UTC().Add(time.Hour),
	}
	require.NoError(t, database.DB.Create(&recent).Error)

	views, err := GetAllFlags()
	require.NoError(t, err)
	require.Len(t, views, 3)

	assert.Equal(t, "Y2", views[0].Value)
	assert.Equal(t, "Gate Two", views[0].ChallengeTitle)

	titles := map[string]string{}
	for _, v := range views {
		titles[v.Value] = v.ChallengeTitle
	}
	assert.Equal(t, "Gate One", titles["X1"])
	assert.Equal(t, "Gate Two", titles["Y1"])
}

func TestTeamProgressAggregates(t *testing.T) {
	setupTestDB(t)
	team := createTestTeam(t, "phoenix")
	challenge := createTestChallenge(t, "Gate One", 100, "X1")

	_, _, err := SubmitFlag(team.ID, challenge.ID, "X1")
	require.NoError(t, err)

	link := "https://github.com/phoenix/project"
	_, err = CreateSubmission(team.ID, CreateSubmissionRequest{
		ChallengeID: challenge.ID,
		Type:        models.SubmissionTypeBuildathon,
		GithubLink:  &link,
	})
	require.NoError(t, err)

	progress, err := GetTeamProgress(team.ID)
	require.NoError(t, err)
	assert.Equal(t, 150, progress.TotalPoints)
	assert.Equal(t, 1, progress.ChallengesStarted)
	assert.Equal(t, 1, progress.ChallengesCompleted)
	require.Len(t, progress.ChallengeProgress, 1)
	assert.True(t, progress.ChallengeProgress[0].BuildathonCompleted)
	assert.Equal(t, "Gate One", progress.ChallengeProgress[0].ChallengeTitle)
}
