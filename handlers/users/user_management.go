package users

import (
	"net/http"

	"oasis/database"
	"oasis/models"
	"oasis/utils/response"

	"github.com/gin-gonic/gin"
)

// GetAllUsers lists every admin-panel user
// @Summary Get all admin-panel users
// @Description List every admin-panel account
// @Tags Users
// @Produce json
// @Success 200 {array} models.User
// @Failure 401 {object} map[string]string
// @Router /admin/users [get]
// @Security Bearer
func GetAllUsers(c *gin.Context) {
	var users []models.User
	if err := database.DB.Order("created_at ASC").Find(&users).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser returns one admin-panel user by id
// @Summary Get an admin-panel user
// @Description Get a single admin-panel account by id
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} map[string]string
// @Router /admin/users/{id} [get]
// @Security Bearer
func GetUser(c *gin.Context) {
	var user models.User
	if err := database.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrUserNotFound)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUserRole changes a user's role. The system allows at most one
// Admin, and the seeded default admin can never be demoted; both rules
// are checked here before anything is persisted.
// @Summary Update a user's role
// @Description Change an admin-panel account's role, enforcing the single-admin rule
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body UpdateRoleRequest true "New role"
// @Success 200 {object} models.User
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/users/{id}/role [put]
// @Security Bearer
func UpdateUserRole(c *gin.Context) {
	userID := c.Param("id")

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.Role != models.RoleAdmin && req.Role != models.RoleUser {
		respondWithError(c, http.StatusBadRequest, ErrInvalidRole)
		return
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrUserNotFound)
		return
	}

	if req.Role == models.RoleAdmin {
		var otherAdmins int64
		database.DB.Model(&models.User{}).
			Where("role = ? AND id <> ?", models.RoleAdmin, userID).Count(&otherAdmins)
		if otherAdmins > 0 {
			respondWithError(c, http.StatusBadRequest, ErrSingleAdmin)
			return
		}
	}

	if user.Email == database.DefaultAdminEmail && req.Role == models.RoleUser {
		respondWithError(c, http.StatusBadRequest, ErrDefaultAdminRole)
		return
	}

	user.Role = req.Role
	if err := database.DB.Save(&user).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrUserUpdateFailed)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser removes an admin-panel account; the default admin is protected
// @Summary Delete an admin-panel user
// @Description Delete an admin-panel account by id
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/users/{id} [delete]
// @Security Bearer
func DeleteUser(c *gin.Context) {
	var user models.User
	if err := database.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrUserNotFound)
		return
	}

	if user.Email == database.DefaultAdminEmail {
		respondWithError(c, http.StatusBadRequest, ErrDefaultAdminDel)
		return
	}

	if err := database.DB.Delete(&user).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrUserDeleteFailed)
		return
	}

	response.Message(c, http.StatusOK, "User deleted successfully")
}
