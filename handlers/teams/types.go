package teams

import (
	"oasis/utils/response"

	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrTeamNotFound       = "Team not found"
	ErrInvalidCredentials = "Invalid email or password"
	ErrTeamDeactivated    = "Team account is deactivated"
)

// RegisterTeamRequest model for team registration
type RegisterTeamRequest struct {
	Name     string `json:"name" binding:"required,min=3,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginTeamRequest model for team login
type LoginTeamRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TeamAuthResponse model for team authentication responses
type TeamAuthResponse struct {
	Token    string `json:"token"`
	TeamID   string `json:"team_id"`
	TeamName string `json:"team_name"`
	Email    string `json:"email"`
}

// SetActiveRequest model for activating/deactivating a team
type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

func respondWithError(c *gin.Context, status int, message string) {
	response.Error(c, status, message)
}
