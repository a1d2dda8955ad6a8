package dashboard

import (
	"oasis/utils/response"

	"github.com/gin-gonic/gin"
)

const (
	defaultPublicLeaderboardLimit = 50
	maxLeaderboardLimit           = 200
)

func respondWithError(c *gin.Context, status int, message string) {
	response.Error(c, status, message)
}
