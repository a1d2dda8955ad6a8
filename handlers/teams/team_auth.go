package teams

import (
	"errors"
	"net/http"

	"oasis/services"

	"github.com/gin-gonic/gin"
)

// RegisterTeam registers a new team account
// @Summary Register a team
// @Description Create a team account; name and email must be unused
// @Tags Teams
// @Accept json
// @Produce json
// @Param request body RegisterTeamRequest true "Team registration details"
// @Success 201 {object} services.TeamView
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /teams/register [post]
func RegisterTeam(c *gin.Context) {
	var req RegisterTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	team, err := services.RegisterTeam(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			respondWithError(c, http.StatusConflict, err.Error())
			return
		}
		respondWithError(c, http.StatusInternalServerError, "Failed to register team")
		return
	}

	c.JSON(http.StatusCreated, team)
}

// LoginTeam authenticates a team and issues a bearer token
// @Summary Log in a team
// @Description Authenticate with email and password, returns a bearer token
// @Tags Teams
// @Accept json
// @Produce json
// @Param request body LoginTeamRequest true "Login credentials"
// @Success 200 {object} TeamAuthResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /teams/login [post]
func LoginTeam(c *gin.Context) {
	var req LoginTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, team, err := services.LoginTeam(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnauthorized):
			respondWithError(c, http.StatusUnauthorized, ErrInvalidCredentials)
		case errors.Is(err, services.ErrAccountDisabled):
			respondWithError(c, http.StatusForbidden, ErrTeamDeactivated)
		default:
			respondWithError(c, http.StatusInternalServerError, "Failed to log in")
		}
		return
	}

	c.JSON(http.StatusOK, TeamAuthResponse{
		Token:    token,
		TeamID:   team.ID,
		TeamName: team.Name,
		Email:    team.Email,
	})
}
