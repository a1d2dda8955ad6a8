package submissions

import (
	"errors"
	"net/http"

	"oasis/middleware"
	"oasis/models"
	"oasis/services"
	"oasis/utils/response"

	"github.com/gin-gonic/gin"
)

// CreateSubmission records a submission of any type and evaluates it
// @Summary Create a submission
// @Description Submit flag, code or GitHub link against a challenge; evaluated synchronously
// @Tags Submissions
// @Accept json
// @Produce json
// @Param request body CreateSubmissionRequest true "Submission payload"
// @Success 201 {object} services.SubmissionView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /submissions [post]
// @Security Bearer
func CreateSubmission(c *gin.Context) {
	team, err := middleware.GetTeamFromRequest(c)
	if err != nil {
		return
	}

	var req CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidFormat)
		return
	}

	view, err := services.CreateSubmission(team.ID, services.CreateSubmissionRequest{
		ChallengeID: req.ChallengeID,
		Type:        req.Type,
		Code:        req.Code,
		Language:    req.Language,
		FlagValue:   req.FlagValue,
		GithubLink:  req.GithubLink,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			respondWithError(c, http.StatusNotFound, ErrChallengeNotFound)
		case errors.Is(err, services.ErrRateLimited):
			respondWithError(c, http.StatusTooManyRequests, ErrFlagCooldown)
		case errors.Is(err, services.ErrInvalidRequest):
			respondWithError(c, http.StatusBadRequest, err.Error())
		default:
			respondWithError(c, http.StatusInternalServerError, "Failed to create submission")
		}
		return
	}
	c.JSON(http.StatusCreated, view)
}

// SubmitFlag records a flag attempt and reports the verdict
// @Summary Submit a flag
// @Description Check a flag against a challenge; success unlocks the buildathon phase
// @Tags Submissions
// @Accept json
// @Produce json
// @Param request body SubmitFlagRequest true "Flag attempt"
// @Success 200 {object} SubmitFlagResponse
// @Failure 404 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /submissions/flag [post]
// @Security Bearer
func SubmitFlag(c *gin.Context) {
	team, err := middleware.GetTeamFromRequest(c)
	if err != nil {
		return
	}

	var req SubmitFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidFormat)
		return
	}

	accepted, message, err := services.SubmitFlag(team.ID, req.ChallengeID, req.FlagValue)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			respondWithError(c, http.StatusNotFound, ErrChallengeNotFound)
		case errors.Is(err, services.ErrRateLimited):
			respondWithError(c, http.StatusTooManyRequests, ErrFlagCooldown)
		case errors.Is(err, services.ErrInvalidRequest):
			respondWithError(c, http.StatusBadRequest, ErrInvalidFormat)
		default:
			respondWithError(c, http.StatusInternalServerError, "Failed to submit flag")
		}
		return
	}

	c.JSON(http.StatusOK, SubmitFlagResponse{Accepted: accepted, Message: message})
}

// GetSubmission returns a single submission, visible to its owning team or an admin
// @Summary Get a submission
// @Description Submission detail; teams can only read their own
// @Tags Submissions
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} services.SubmissionView
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /submissions/{id} [get]
// @Security Bearer
func GetSubmission(c *gin.Context) {
	view, err := services.GetSubmissionByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondWithError(c, http.StatusNotFound, ErrSubmissionNotFound)
			return
		}
		respondWithError(c, http.StatusInternalServerError, "Failed to fetch submission")
		return
	}

	if c.GetString(middleware.ContextRole) != models.RoleAdmin &&
		c.GetString(middleware.ContextSubjectID) != view.TeamID {
		respondWithError(c, http.StatusForbidden, "Access denied")
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetAllSubmissions lists every submission (admin view)
// @Summary Get all submissions
// @Description Every submission across teams and challenges, newest first
// @Tags Submissions
// @Produce json
// @Success 200 {array} services.SubmissionView
// @Failure 401 {object} map[string]string
// @Router /admin/submissions [get]
// @Security Bearer
func GetAllSubmissions(c *gin.Context) {
	views, err := services.GetAllSubmissions()
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to fetch submissions")
		return
	}
	c.JSON(http.StatusOK, views)
}

// ReevaluateSubmission re-runs evaluation for a submission (admin)
// @Summary Re-evaluate a submission
// @Description Reset a submission's verdict and evaluate it again
// @Tags Submissions
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/submissions/{id}/evaluate [post]
// @Security Bearer
func ReevaluateSubmission(c *gin.Context) {
	if err := services.EvaluateSubmission(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondWithError(c, http.StatusNotFound, ErrSubmissionNotFound)
			return
		}
		respondWithError(c, http.StatusInternalServerError, "Failed to evaluate submission")
		return
	}
	response.Message(c, http.StatusOK, "Submission evaluated successfully")
}
