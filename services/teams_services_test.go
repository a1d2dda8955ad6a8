package services

import (
	"testing"

	"oasis/config"
	"oasis/database"
	"oasis/middleware"
	"oasis/models"
	"oasis/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterTeam(t *testing.T) {
	setupTestDB(t)

	view, err := RegisterTeam("phoenix", "phoenix@test.io", "secret-password")
	require.NoError(t, err)
	assert.Equal(t, "phoenix", view.Name)
	assert.True(t, view.IsActive)

	var team models.Team
	require.NoError(t, database.DB.First(&team, "id = ?", view.ID).Error)
	assert.NotEqual(t, "secret-password", team.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("secret-password", team.PasswordHash))
}

func TestRegisterTeamDuplicate(t *testing.T) {
	setupTestDB(t)
	createTestTeam(t, "phoenix")

	_, err := RegisterTeam("phoenix", "other@test.io", "secret-password")
	assert.ErrorIs(t, err, ErrConflict)

	_, err = RegisterTeam("other", "phoenix@test.io", "secret-password")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestLoginTeam(t *testing.T) {
	setupTestDB(t)
	config.JWTSecret = "test-secret"
	created := createTestTeam(t, "phoenix")

	token, team, err := LoginTeam(created.Email, "secret-password")
	require.NoError(t, err)
	assert.Equal(t, created.ID, team.ID)
	require.NotNil(t, team.LastLoginAt)

	claims, err := utils.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, claims.SubjectID)
	assert.Equal(t, middleware.RoleTeam, claims.Role)
}

func TestLoginTeamBadCredentials(t *testing.T) {
	setupTestDB(t)
	created := createTestTeam(t, "phoenix")

	_, _, err := LoginTeam(created.Email, "wrong-password")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, _, err = LoginTeam("nobody@test.io", "secret-password")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLoginTeamDeactivated(t *testing.T) {
	setupTestDB(t)
	created := createTestTeam(t, "phoenix")
	require.NoError(t, database.DB.Model(created).Update("is_active", false).Error)

	_, _, err := LoginTeam(created.Email, "secret-password")
	assert.ErrorIs(t, err, ErrAccountDisabled)
}

func TestSetTeamActive(t *testing.T) {
	setupTestDB(t)
	created := createTestTeam(t, "phoenix")

	require.NoError(t, SetTeamActive(created.ID, false))

	var team models.Team
	require.NoError(t, database.DB.First(&team, "id = ?", created.ID).Error)
	assert.False(t, team.IsActive)

	assert.ErrorIs(t, SetTeamActive("00000000-0000-0000-0000-000000000000", true), ErrNotFound)
}

func TestGetAllTeamsAggregates(t *testing.T) {
	setupTestDB(t)
	team := createTestTeam(t, "phoenix")
	challenge := createTestChallenge(t, "Gate One", 100, "X1")

	_, _, err := SubmitFlag(team.ID, challenge.ID, "X1")
	require.NoError(t, err)

	teams, err := GetAllTeams()
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, 100, teams[0].TotalPoints)
}
