package users

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
	"oasis/utils"

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

func setupRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	database.DB = db

	config.JWTSecret = "test-secret"
	config.JWTExpireHours = "24"

	admin := createUser(t, database.DefaultAdminEmail, models.RoleAdmin)
	token, err := utils.GenerateToken(admin.ID, "OASIS Admin", admin.Email, admin.Role)
	require.NoError(t, err)

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"))
	return r, token
}

func createUser(t *testing.T, email, role string) *models.User {
	t.Helper()

	hash, err := utils.HashPassword("secret-password")
	require.NoError(t, err)

	user := models.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    "Test",
		LastName:     "User",
		Role:         role,
	}
	require.NoError(t, database.DB.Create(&user).Error)
	return &user
}

func doJSON(r *gin.Engine, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPromoteSecondAdminBlocked(t *testing.T) {
	r, token := setupRouter(t)
	other := createUser(t, "second@test.io", models.RoleUser)

	w := doJSON(r, http.MethodPut, "/api/v1/admin/users/"+other.ID+"/role", token,
		UpdateRoleRequest{Role: models.RoleAdmin})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrSingleAdmin)
}

func TestDemoteDefaultAdminBlocked(t *testing.T) {
	r, token := setupRouter(t)

	var admin models.User
	require.NoError(t, database.DB.First(&admin, "email = ?", database.DefaultAdminEmail).Error)

	w := doJSON(r, http.MethodPut, "/api/v1/admin/users/"+admin.ID+"/role", token,
		UpdateRoleRequest{Role: models.RoleUser})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrDefaultAdminRole)
}

func TestDeleteDefaultAdminBlocked(t *testing.T) {
	r, token := setupRouter(t)

	var admin models.User
	require.NoError(t, database.DB.First(&admin, "email = ?", database.DefaultAdminEmail).Error)

	w := doJSON(r, http.MethodDelete, "/api/v1/admin/users/"+admin.ID, token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrDefaultAdminDel)
}

func TestDeleteRegularUser(t *testing.T) {
	r, token := setupRouter(t)
	other := createUser(t, "second@test.io", models.RoleUser)

	w := doJSON(r, http.MethodDelete, "/api/v1/admin/users/"+other.ID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	database.DB.Model(&models.User{}).Where("id = ?", other.ID).Count(&count)
	assert.Zero(t, count)
}

func TestUserRoutesRequireAdmin(t *testing.T) {
	r, _ := setupRouter(t)
	regular := createUser(t, "second@test.io", models.RoleUser)
	token, err := utils.GenerateToken(regular.ID, "Test User", regular.Email, regular.Role)
	require.NoError(t, err)

	w := doJSON(r, http.MethodGet, "/api/v1/admin/users", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestInvalidRoleRejected(t *testing.T) {
	r, token := setupRouter(t)
	other := createUser(t, "second@test.io", models.RoleUser)

	w := doJSON(r, http.MethodPut, "/api/v1/admin/users/"+other.ID+"/role", token,
		UpdateRoleRequest{Role: "Overlord"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid role")
}
