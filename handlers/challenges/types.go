package challenges

import (
	"oasis/utils/response"

	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrChallengeNotFound = "Challenge not found"
	ErrProblemNotFound   = "Problem not found"
	ErrFlagNotFound      = "Flag not found"
	ErrInvalidFormat     = "Invalid request format"
)

func respondWithError(c *gin.Context, status int, message string) {
	response.Error(c, status, message)
}
