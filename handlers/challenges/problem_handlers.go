package challenges

import (
	"errors"
	"net/http"

	"oasis/services"
	"oasis/utils/response"

	"github.com/gin-gonic/gin"
)

// AttachAlgorithmicProblem attaches the algorithmic problem to a challenge
// @Summary Attach an algorithmic problem
// @Description Attach the coding problem; a challenge holds at most one
// @Tags Problems
// @Accept json
// @Produce json
// @Param id path string true "Challenge ID"
// @Param request body services.AlgorithmicProblemRequest true "Problem fields"
// @Success 201 {object} models.AlgorithmicProblem
// @Failure 409 {object} map[string]string
// @Router /admin/challenges/{id}/algorithmic [post]
// @Security Bearer
func AttachAlgorithmicProblem(c *gin.Context) {
	var req services.AlgorithmicProblemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidFormat)
		return
	}

	problem, err := services.AttachAlgorithmicProblem(c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			respondWithError(c, http.StatusNotFound, ErrChallengeNotFound)
		case errors.Is(err, services.ErrConflict):
			respondWithError(c, http.StatusConflict, err.Error())
		default:
			respondWithError(c, http.StatusInternalServerError, "Failed to create problem")
		}
		return
	}
	c.JSON(http.StatusCreated, problem)
}

// UpdateAlgorithmicProblem replaces the challenge's algorithmic problem
// @Summary Update an algorithmic problem
// @Description Replace the coding problem attached to a challenge
// @Tags Problems
// @Accept json
// @Produce json
// @Param id path string true "Challenge ID"
// @Param request body services.AlgorithmicProblemRequest true "Problem fields"
// @Success 200 {object} models.AlgorithmicProblem
// @Failure 404 {object} map[string]string
// @Router /admin/challenges/{id}/algorithmic [put]
// @Security Bearer
func UpdateAlgorithmicProblem(c *gin.Context) {
	var req services.AlgorithmicProblemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidFormat)
		return
	}

	problem, err := services.UpdateAlgorithmicProblem(c.Param("id"), req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondWithError(c, http.StatusNotFound, ErrProblemNotFound)
			return
		}
		respondWithError(c, http.StatusInternalServerError, "Failed to update problem")
		return
	}
	c.JSON(http.StatusOK, problem)
}

// DeleteAlgorithmicProblem detaches the algorithmic problem from a challenge
// @Summary Delete an algorithmic problem
// @Description Detach the coding problem from a challenge
// @Tags Problems
// @Produce json
// @Param id path string true "Challenge ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/challenges/{id}/algorithmic [delete]
// @Security Bearer
func DeleteAlgorithmicProblem(c *gin.Context) {
	if err := services.DeleteAlgorithmicProblem(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondWithError(c, http.StatusNotFound, ErrProblemNotFound)
			return
		}
		respondWithError(c, http.StatusInternalServerError, "Failed to delete problem")
		return
	}
	response.Message(c, http.StatusOK, "Problem deleted successfully")
}

// AttachBuildathonProblem attaches the buildathon problem to a challenge
// @Summary Attach a buildathon problem
// @Description Attach the build brief; a challenge holds at most one
// @Tags Problems
// @Accept json
// @Produce json
// @Param id path string true "Challenge ID"
// @Param request body services.BuildathonProblemRequest true "Problem fields"
// @Success 201 {object} models.BuildathonProblem
// @Failure 409 {object} map[string]string
// @Router /admin/challenges/{id}/buildathon [post]
// @Security Bearer
func AttachBuildathonProblem(c *gin.Context) {
	var req services.BuildathonProblemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidFormat)
		return
	}

	problem, err := services.AttachBuildathonProblem(c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			respondWithError(c, http.StatusNotFound, ErrChallengeNotFound)
		case errors.Is(err, services.ErrConflict):
			respondWithError(c, http.StatusConflict, err.Error())
		default:
			respondWithError(c, http.StatusInternalServerError, "Failed to create problem")
		}
		return
	}
	c.JSON(http.StatusCreated, problem)
}

// UpdateBuildathonProblem replaces the challenge's buildathon problem
// @Summary Update a buildathon problem
// @Description Replace the build brief attached to a challenge
// @Tags Problems
// @Accept json
// @Produce json
// @Param id path string true "Challenge ID"
// @Param request body services.BuildathonProblemRequest true "Problem fields"
// @Success 200 {object} models.BuildathonProblem
// @Failure 404 {object} map[string]string
// @Router /admin/challenges/{id}/buildathon [put]
// @Security Bearer
func UpdateBuildathonProblem(c *gin.Context) {
	var req services.BuildathonProblemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidFormat)
		return
	}

	problem, err := services.UpdateBuildathonProblem(c.Param("id"), req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondWithError(c, http.StatusNotFound, ErrProblemNotFound)
			return
		}
		respondWithError(c, http.StatusInternalServerError, "Failed to update problem")
		return
	}
	c.JSON(http.StatusOK, problem)
}

// DeleteBuildathonProblem detaches the buildathon problem from a challenge
// @Summary Delete a buildathon problem
// @Description Detach the build brief from a challenge
// @Tags Problems
// @Produce json
// @Param id path string true "Challenge ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/challenges/{id}/buildathon [delete]
// @Security Bearer
func DeleteBuildathonProblem(c *gin.Context) {
	if err := services.DeleteBuildathonProblem(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondWithError(c, http.StatusNotFound, ErrProblemNotFound)
			return
		}
		respondWithError(c, http.StatusInternalServerError, "Failed to delete problem")
		return
	}
	response.Message(c, http.StatusOK, "Problem deleted successfully")
}
