package teams

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"oasis/config"
	"oasis/database"
	"oasis/models"
	"oasis/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Team{},
		&models.Challenge{},
		&models.Flag{},
		&models.Submission{},
		&models.TeamChallenge{},
	))
	database.DB = db
	database.RDB = nil

	config.JWTSecret = "test-secret"
	config.JWTExpireHours = "24"

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"))
	return r
}

func postJSON(r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterAndLoginFlow(t *testing.T) {
	r := setupRouter(t)

	w := postJSON(r, "/api/v1/teams/register", RegisterTeamRequest{
		Name:     "phoenix",
		Email:    "phoenix@test.io",
		Password: "secret-password",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(r, "/api/v1/teams/login", LoginTeamRequest{
		Email:    "phoenix@test.io",
		Password: "secret-password",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp TeamAuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "phoenix", resp.TeamName)
}

func TestGetOwnTeamProfile(t *testing.T) {
	r := setupRouter(t)

	require.Equal(t, http.StatusCreated, postJSON(r, "/api/v1/teams/register", RegisterTeamRequest{
		Name:     "phoenix",
		Email:    "phoenix@test.io",
		Password: "secret-password",
	}).Code)

	w := postJSON(r, "/api/v1/teams/login", LoginTeamRequest{
		Email:    "phoenix@test.io",
		Password: "secret-password",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var auth TeamAuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &auth))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/teams/me", nil)
	req.Header.Set("Authorization", "Bearer "+auth.Token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var view services.TeamView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "phoenix", view.Name)
	assert.Equal(t, "phoenix@test.io", view.Email)
	assert.Equal(t, 0, view.TotalPoints)

	// No token, no profile
	req = httptest.NewRequest(http.MethodGet, "/api/v1/teams/me", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterDuplicateName(t *testing.T) {
	r := setupRouter(t)

	req := RegisterTeamRequest{Name: "phoenix", Email: "phoenix@test.io", Password: "secret-password"}
	require.Equal(t, http.StatusCreated, postJSON(r, "/api/v1/teams/register", req).Code)

	req.Email = "other@test.io"
	assert.Equal(t, http.StatusConflict, postJSON(r, "/api/v1/teams/register", req).Code)
}

func TestRegisterValidation(t *testing.T) {
	r := setupRouter(t)

	w := postJSON(r, "/api/v1/teams/register", RegisterTeamRequest{
		Name:     "ab", // below minimum length
		Email:    "phoenix@test.io",
		Password: "secret-password",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(r, "/api/v1/teams/register", RegisterTeamRequest{
		Name:     "phoenix",
		Email:    "not-an-email",
		Password: "secret-password",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	r := setupRouter(t)

	require.Equal(t, http.StatusCreated, postJSON(r, "/api/v1/teams/register", RegisterTeamRequest{
		Name:     "phoenix",
		Email:    "phoenix@test.io",
		Password: "secret-password",
	}).Code)

	w := postJSON(r, "/api/v1/teams/login", LoginTeamRequest{
		Email:    "phoenix@test.io",
		Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), ErrInvalidCredentials)
}

func TestLoginDeactivatedTeam(t *testing.T) {
	r := setupRouter(t)

	require.Equal(t, http.StatusCreated, postJSON(r, "/api/v1/teams/register", RegisterTeamRequest{
		Name:     "phoenix",
		Email:    "phoenix@test.io",
		Password: "secret-password",
	}).Code)

	require.NoError(t, database.DB.Model(&models.Team{}).
		Where("email = ?", "phoenix@test.io").Update("is_active", false).Error)

	w := postJSON(r, "/api/v1/teams/login", LoginTeamRequest{
		Email:    "phoenix@test.io",
		Password: "secret-password",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), ErrTeamDeactivated)
}
