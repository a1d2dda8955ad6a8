package submissions

import (
	"net/http"

	"oasis/services"
	"oasis/utils"

	"github.com/gin-gonic/gin"
)

// ExecuteCode runs code against the judge backend and returns the outcome
// @Summary Execute code
// @Description Run source code with optional stdin through the judge backend
// @Tags Execution
// @Accept json
// @Produce json
// @Param request body ExecuteRequest true "Code to run"
// @Success 200 {object} services.ExecutionResult
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /execute [post]
// @Security Bearer
func ExecuteCode(c *gin.Context) {
	var req ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidFormat)
		return
	}

	if !utils.IsSupportedLanguage(req.Language) {
		respondWithError(c, http.StatusBadRequest, "Unsupported language")
		return
	}

	result, err := services.NewJudge0Client().Execute(c.Request.Context(), req.Code, req.Language, req.Stdin)
	if err != nil {
		respondWithError(c, http.StatusBadGateway, "Code execution backend unavailable")
		return
	}
	c.JSON(http.StatusOK, result)
}
