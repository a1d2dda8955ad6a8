package challenges

import (
	"errors"
	"net/http"

	"oasis/services"
	"oasis/utils/response"

	"github.com/gin-gonic/gin"
)

// ListAllFlags lists every flag across all challenges
// @Summary List all flags
// @Description Every flag with its challenge title, newest first
// @Tags Flags
// @Produce json
// @Success 200 {array} services.FlagView
// @Failure 401 {object} map[string]string
// @Router /admin/flags [get]
// @Security Bearer
func ListAllFlags(c *gin.Context) {
	flags, err := services.GetAllFlags()
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to fetch flags")
		return
	}
	c.JSON(http.StatusOK, flags)
}

// ListFlags lists every flag of a challenge
// @Summary List a challenge's flags
// @Description All flags of a challenge, active or not
// @Tags Flags
// @Produce json
// @Param id path string true "Challenge ID"
// @Success 200 {array} models.Flag
// @Failure 404 {object} map[string]string
// @Router /admin/challenges/{id}/flags [get]
// @Security Bearer
func ListFlags(c *gin.Context) {
	flags, err := services.GetFlags(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondWithError(c, http.StatusNotFound, ErrChallengeNotFound)
			return
		}
		respondWithError(c, http.StatusInternalServerError, "Failed to fetch flags")
		return
	}
	c.JSON(http.StatusOK, flags)
}

// AddFlag adds a flag to a challenge
// @Summary Add a flag
// @Description Add a flag to a challenge; several flags may coexist for rotation
// @Tags Flags
// @Accept json
// @Produce json
// @Param id path string true "Challenge ID"
// @Param request body services.FlagRequest true "Flag fields"
// @Success 201 {object} models.Flag
// @Failure 404 {object} map[string]string
// @Router /admin/challenges/{id}/flags [post]
// @Security Bearer
func AddFlag(c *gin.Context) {
	var req services.FlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidFormat)
		return
	}

	flag, err := services.AddFlag(c.Param("id"), req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondWithError(c, http.StatusNotFound, ErrChallengeNotFound)
			return
		}
		respondWithError(c, http.StatusInternalServerError, "Failed to create flag")
		return
	}
	c.JSON(http.StatusCreated, flag)
}

// UpdateFlag replaces a flag's value and active state
// @Summary Update a flag
// @Description Replace a flag's value and active state
// @Tags Flags
// @Accept json
// @Produce json
// @Param flagID path string true "Flag ID"
// @Param request body services.FlagRequest true "Flag fields"
// @Success 200 {object} models.Flag
// @Failure 404 {object} map[string]string
// @Router /admin/flags/{flagID} [put]
// @Security Bearer
func UpdateFlag(c *gin.Context) {
	var req services.FlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidFormat)
		return
	}

	flag, err := services.UpdateFlag(c.Param("flagID"), req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondWithError(c, http.StatusNotFound, ErrFlagNotFound)
			return
		}
		respondWithError(c, http.StatusInternalServerError, "Failed to update flag")
		return
	}
	c.JSON(http.StatusOK, flag)
}

// DeleteFlag removes a flag
// @Summary Delete a flag
// @Description Remove a flag from its challenge
// @Tags Flags
// @Produce json
// @Param flagID path string true "Flag ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/flags/{flagID} [delete]
// @Security Bearer
func DeleteFlag(c *gin.Context) {
	if err := services.DeleteFlag(c.Param("flagID")); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondWithError(c, http.StatusNotFound, ErrFlagNotFound)
			return
		}
		respondWithError(c, http.StatusInternalServerError, "Failed to delete flag")
		return
	}
	response.Message(c, http.StatusOK, "Flag deleted successfully")
}
