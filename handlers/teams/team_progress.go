package teams

import (
	"net/http"

	"oasis/middleware"
	"oasis/services"

	"github.com/gin-gonic/gin"
)

// GetOwnTeam returns the authenticated team's profile with its aggregates
// @Summary Get own team profile
// @Description Profile and point aggregates of the authenticated team
// @Tags Teams
// @Produce json
// @Success 200 {object} services.TeamView
// @Failure 401 {object} map[string]string
// @Router /teams/me [get]
// @Security Bearer
func GetOwnTeam(c *gin.Context) {
	team, err := middleware.GetTeamFromRequest(c)
	if err != nil {
		return
	}

	view, err := services.GetTeamByID(team.ID)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to fetch team")
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetOwnProgress returns the authenticated team's progress dossier
// @Summary Get own team progress
// @Description Aggregate stats plus per-challenge snapshots for the authenticated team
// @Tags Teams
// @Produce json
// @Success 200 {object} services.TeamProgress
// @Failure 401 {object} map[string]string
// @Router /teams/me/progress [get]
// @Security Bearer
func GetOwnProgress(c *gin.Context) {
	team, err := middleware.GetTeamFromRequest(c)
	if err != nil {
		return
	}

	progress, err := services.GetTeamProgress(team.ID)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to fetch progress")
		return
	}
	c.JSON(http.StatusOK, progress)
}

// GetOwnSubmissions returns the authenticated team's submissions
// @Summary Get own team submissions
// @Description All submissions of the authenticated team, newest first
// @Tags Teams
// @Produce json
// @Success 200 {array} services.SubmissionView
// @Failure 401 {object} map[string]string
// @Router /teams/me/submissions [get]
// @Security Bearer
func GetOwnSubmissions(c *gin.Context) {
	team, err := middleware.GetTeamFromRequest(c)
	if err != nil {
		return
	}

	submissions, err := services.GetSubmissionsByTeam(team.ID)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to fetch submissions")
		return
	}
	c.JSON(http.StatusOK, submissions)
}
