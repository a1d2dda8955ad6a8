package teams

import (
	"errors"
	"net/http"

	"oasis/services"
	"oasis/utils/response"

	"github.com/gin-gonic/gin"
)

// GetAllTeams lists every team with its aggregates (admin view)
// @Summary Get all teams
// @Description List every team with points and completion aggregates
// @Tags Teams
// @Produce json
// @Success 200 {array} services.TeamView
// @Failure 401 {object} map[string]string
// @Router /admin/teams [get]
// @Security Bearer
func GetAllTeams(c *gin.Context) {
	teams, err := services.GetAllTeams()
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to fetch teams")
		return
	}
	c.JSON(http.StatusOK, teams)
}

// GetTeam returns one team with its aggregates (admin view)
// @Summary Get a team
// @Description Get a single team by id with its aggregates
// @Tags Teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} services.TeamView
// @Failure 404 {object} map[string]string
// @Router /admin/teams/{id} [get]
// @Security Bearer
func GetTeam(c *gin.Context) {
	team, err := services.GetTeamByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondWithError(c, http.StatusNotFound, ErrTeamNotFound)
			return
		}
		respondWithError(c, http.StatusInternalServerError, "Failed to fetch team")
		return
	}
	c.JSON(http.StatusOK, team)
}

// SetTeamActive activates or deactivates a team account
// @Summary Activate or deactivate a team
// @Description Toggle a team account's active flag
// @Tags Teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param request body SetActiveRequest true "Desired active state"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/teams/{id}/active [put]
// @Security Bearer
func SetTeamActive(c *gin.Context) {
	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := services.SetTeamActive(c.Param("id"), *req.IsActive); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondWithError(c, http.StatusNotFound, ErrTeamNotFound)
			return
		}
		respondWithError(c, http.StatusInternalServerError, "Failed to update team")
		return
	}

	response.Message(c, http.StatusOK, "Team updated successfully")
}

// GetTeamSubmissions returns a team's submissions (admin view)
// @Summary Get a team's submissions
// @Description All submissions of the given team, newest first
// @Tags Teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {array} services.SubmissionView
// @Failure 401 {object} map[string]string
// @Router /admin/teams/{id}/submissions [get]
// @Security Bearer
func GetTeamSubmissions(c *gin.Context) {
	submissions, err := services.GetSubmissionsByTeam(c.Param("id"))
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to fetch submissions")
		return
	}
	c.JSON(http.StatusOK, submissions)
}

// GetTeamProgress returns a team's progress dossier (admin view)
// @Summary Get a team's progress
// @Description Aggregate stats plus per-challenge snapshots for the given team
// @Tags Teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} services.TeamProgress
// @Failure 404 {object} map[string]string
// @Router /admin/teams/{id}/progress [get]
// @Security Bearer
func GetTeamProgress(c *gin.Context) {
	progress, err := services.GetTeamProgress(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondWithError(c, http.StatusNotFound, ErrTeamNotFound)
			return
		}
		respondWithError(c, http.StatusInternalServerError, "Failed to fetch progress")
		return
	}
	c.JSON(http.StatusOK, progress)
}
