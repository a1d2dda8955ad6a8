package users

import (
	"oasis/utils/response"

	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrUserNotFound     = "User not found"
	ErrInvalidRole      = "Invalid role. Must be 'Admin' or 'User'"
	ErrSingleAdmin      = "Only one admin user is allowed in the system"
	ErrDefaultAdminRole = "Cannot change the default admin user role"
	ErrDefaultAdminDel  = "Cannot delete the default admin user"
	ErrUserUpdateFailed = "Failed to update user"
	ErrUserDeleteFailed = "Failed to delete user"
)

// UpdateRoleRequest model for role changes
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

func respondWithError(c *gin.Context, status int, message string) {
	response.Error(c, status, message)
}
