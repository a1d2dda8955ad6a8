package challenges

import (
	"errors"
	"net/http"

	"oasis/middleware"
	"oasis/services"
	"oasis/utils/response"

	"github.com/gin-gonic/gin"
)

// ListChallenges lists active challenges for the authenticated team
// @Summary List active challenges
// @Description Active challenges with attachment indicators, oldest first
// @Tags Challenges
// @Produce json
// @Success 200 {array} services.ChallengeSummary
// @Failure 401 {object} map[string]string
// @Router /challenges [get]
// @Security Bearer
func ListChallenges(c *gin.Context) {
	summaries, err := services.GetChallengeSummaries(true)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to fetch challenges")
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// GetChallengeForTeam returns a challenge as the team sees it: no flags,
// and the buildathon problem only once the team has unlocked that phase
// @Summary Get a challenge (team view)
// @Description Challenge detail without flags; buildathon brief appears after unlock
// @Tags Challenges
// @Produce json
// @Param id path string true "Challenge ID"
// @Success 200 {object} models.Challenge
// @Failure 404 {object} map[string]string
// @Router /challenges/{id} [get]
// @Security Bearer
func GetChallengeForTeam(c *gin.Context) {
	team, err := middleware.GetTeamFromRequest(c)
	if err != nil {
		return
	}

	challenge, err := services.GetChallengeForTeam(c.Param("id"), team.ID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondWithError(c, http.StatusNotFound, ErrChallengeNotFound)
			return
		}
		respondWithError(c, http.StatusInternalServerError, "Failed to fetch challenge")
		return
	}
	c.JSON(http.StatusOK, challenge)
}

// ListAllChallenges lists every challenge, active or not (admin view)
// @Summary List all challenges
// @Description Every challenge with attachment indicators, newest first
// @Tags Challenges
// @Produce json
// @Success 200 {array} services.ChallengeSummary
// @Failure 401 {object} map[string]string
// @Router /admin/challenges [get]
// @Security Bearer
func ListAllChallenges(c *gin.Context) {
	summaries, err := services.GetChallengeSummaries(false)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to fetch challenges")
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// GetChallenge returns a challenge with its problems and active flags (admin view)
// @Summary Get a challenge
// @Description Full challenge detail including problems and active flags
// @Tags Challenges
// @Produce json
// @Param id path string true "Challenge ID"
// @Success 200 {object} models.Challenge
// @Failure 404 {object} map[string]string
// @Router /admin/challenges/{id} [get]
// @Security Bearer
func GetChallenge(c *gin.Context) {
	challenge, err := services.GetChallenge(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondWithError(c, http.StatusNotFound, ErrChallengeNotFound)
			return
		}
		respondWithError(c, http.StatusInternalServerError, "Failed to fetch challenge")
		return
	}
	c.JSON(http.StatusOK, challenge)
}

// CreateChallenge creates a new challenge
// @Summary Create a challenge
// @Description Create a new challenge shell; problems and flags are attached separately
// @Tags Challenges
// @Accept json
// @Produce json
// @Param request body services.CreateChallengeRequest true "Challenge fields"
// @Success 201 {object} models.Challenge
// @Failure 400 {object} map[string]string
// @Router /admin/challenges [post]
// @Security Bearer
func CreateChallenge(c *gin.Context) {
	var req services.CreateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidFormat)
		return
	}

	challenge, err := services.CreateChallenge(req)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to create challenge")
		return
	}
	c.JSON(http.StatusCreated, challenge)
}

// UpdateChallenge applies a partial update to a challenge
// @Summary Update a challenge
// @Description Update title, description, points or active state; omitted fields are untouched
// @Tags Challenges
// @Accept json
// @Produce json
// @Param id path string true "Challenge ID"
// @Param request body services.UpdateChallengeRequest true "Fields to update"
// @Success 200 {object} models.Challenge
// @Failure 404 {object} map[string]string
// @Router /admin/challenges/{id} [put]
// @Security Bearer
func UpdateChallenge(c *gin.Context) {
	var req services.UpdateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidFormat)
		return
	}

	challenge, err := services.UpdateChallenge(c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			respondWithError(c, http.StatusNotFound, ErrChallengeNotFound)
		case errors.Is(err, services.ErrInvalidRequest):
			respondWithError(c, http.StatusBadRequest, err.Error())
		default:
			respondWithError(c, http.StatusInternalServerError, "Failed to update challenge")
		}
		return
	}
	c.JSON(http.StatusOK, challenge)
}

// DeleteChallenge removes a challenge and its attachments
// @Summary Delete a challenge
// @Description Delete a challenge; its problems and flags go with it
// @Tags Challenges
// @Produce json
// @Param id path string true "Challenge ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/challenges/{id} [delete]
// @Security Bearer
func DeleteChallenge(c *gin.Context) {
	if err := services.DeleteChallenge(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondWithError(c, http.StatusNotFound, ErrChallengeNotFound)
			return
		}
		respondWithError(c, http.StatusInternalServerError, "Failed to delete challenge")
		return
	}
	response.Message(c, http.StatusOK, "Challenge deleted successfully")
}

// GetChallengeSubmissions returns a challenge's submissions (admin view)
// @Summary Get a challenge's submissions
// @Description All submissions against the given challenge, newest first
// @Tags Challenges
// @Produce json
// @Param id path string true "Challenge ID"
// @Success 200 {array} services.SubmissionView
// @Failure 401 {object} map[string]string
// @Router /admin/challenges/{id}/submissions [get]
// @Security Bearer
func GetChallengeSubmissions(c *gin.Context) {
	submissions, err := services.GetSubmissionsByChallenge(c.Param("id"))
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to fetch submissions")
		return
	}
	c.JSON(http.StatusOK, submissions)
}
