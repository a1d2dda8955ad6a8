package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"oasis/config"
	"oasis/models"
	"oasis/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testRouter() *gin.Engine {
	r := gin.New()
	r.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"subject": c.GetString(ContextSubjectID)})
	})
	r.GET("/admin", AuthMiddleware(), RequireRole(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doRequest(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	config.JWTSecret = "test-secret"
	r := testRouter()

	w := doRequest(r, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	config.JWTSecret = "test-secret"
	r := testRouter()

	w := doRequest(r, "/protected", "not.a.token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	config.JWTSecret = "test-secret"
	config.JWTExpireHours = "24"
	r := testRouter()

	token, err := utils.GenerateToken("team-1", "phoenix", "phoenix@test.io", RoleTeam)
	require.NoError(t, err)

	w := doRequest(r, "/protected", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "team-1")
}

func TestRequireRole(t *testing.T) {
	config.JWTSecret = "test-secret"
	config.JWTExpireHours = "24"
	r := testRouter()

	teamToken, err := utils.GenerateToken("team-1", "phoenix", "phoenix@test.io", RoleTeam)
	require.NoError(t, err)
	adminToken, err := utils.GenerateToken("user-1", "admin", "admin@oasis.com", models.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, doRequest(r, "/admin", teamToken).Code)
	assert.Equal(t, http.StatusOK, doRequest(r, "/admin", adminToken).Code)
}
