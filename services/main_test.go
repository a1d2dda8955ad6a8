package services

import (
	"fmt"
	"testing"
	"time"

	"oasis/database"
	"oasis/models"
	"oasis/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the package-level connection at a fresh in-memory
// database. Each test gets its own schema; redis stays disconnected so
// cached reads fall through to SQL.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.Challenge{},
		&models.AlgorithmicProblem{},
		&models.BuildathonProblem{},
		&models.Flag{},
		&models.Submission{},
		&models.TeamChallenge{},
	))

	database.DB = db
	database.RDB = nil
}

func createTestTeam(t *testing.T, name string) *models.Team {
	t.Helper()

	hash, err := utils.HashPassword("secret-password")
	require.NoError(t, err)

	team := models.Team{
		Name:         name,
		Email:        fmt.Sprintf("%s@test.io", name),
		PasswordHash: hash,
		IsActive:     true,
	}
	require.NoError(t, database.DB.Create(&team).Error)
	return &team
}

func createTestChallenge(t *testing.T, title string, points int, flags ...string) *models.Challenge {
	t.Helper()

	challenge := models.Challenge{
		Title:       title,
		Description: "test challenge",
		Points:      points,
		IsActive:    true,
	}
	require.NoError(t, database.DB.Create(&challenge).Error)

	for _, value := range flags {
		flag := models.Flag{
			ChallengeID: challenge.ID,
			Value:       value,
			IsActive:    true,
		}
		require.NoError(t, database.DB.Create(&flag).Error)
	}
	return &challenge
}

func createWrongFlagAttempts(t *testing.T, teamID, challengeID string, n int, age time.Duration) {
	t.Helper()

	value := "not-the-flag"
	for i := 0; i < n; i++ {
		submission := models.Submission{
			TeamID:      teamID,
			ChallengeID: challengeID,
			Type:        models.SubmissionTypeFlag,
			FlagValue:   &value,
			Status:      models.StatusWrongAnswer,
			SubmittedAt: time.Now().UTC().Add(-age),
		}
		require.NoError(t, database.DB.Create(&submission).Error)
	}
}
