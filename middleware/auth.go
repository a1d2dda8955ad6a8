package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"oasis/database"
	"oasis/models"
	"oasis/utils"
	"oasis/utils/response"

	"github.com/gin-gonic/gin"
)

const (
	// RoleTeam is carried by team tokens; admin-panel tokens carry models.RoleAdmin or models.RoleUser
	RoleTeam = "Team"

	ContextSubjectID = "subject_id"
	ContextRole      = "role"
	ContextEmail     = "email"
	ContextName      = "name"
)

// AuthMiddleware validates the Bearer token and stores the resolved identity on the context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "No token provided")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Error(c, http.StatusUnauthorized, "Invalid authorization header")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextSubjectID, claims.SubjectID)
		c.Set(ContextRole, claims.Role)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextName, claims.Name)
		c.Next()
	}
}

// RequireRole aborts the request unless the caller holds one of the given roles
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		for _, required := range roles {
			if role == required {
				c.Next()
				return
			}
		}
		response.Error(c, http.StatusForbidden, "Insufficient permissions")
		c.Abort()
	}
}

// GetTeamFromRequest resolves the authenticated team, responding with an error itself on failure
func GetTeamFromRequest(c *gin.Context) (*models.Team, error) {
	if c.GetString(ContextRole) != RoleTeam {
		response.Error(c, http.StatusForbidden, "Team account required")
		return nil, fmt.Errorf("caller is not a team")
	}

	var team models.Team
	if err := database.DB.First(&team, "id = ?", c.GetString(ContextSubjectID)).Error; err != nil {
		response.Error(c, http.StatusUnauthorized, "Team not found")
		return nil, err
	}

	if !team.IsActive {
		response.Error(c, http.StatusForbidden, "Team account is deactivated")
		return nil, fmt.Errorf("team is deactivated")
	}

	return &team, nil
}

// GetUserFromRequest resolves the authenticated admin-panel user, responding with an error itself on failure
func GetUserFromRequest(c *gin.Context) (*models.User, error) {
	role := c.GetString(ContextRole)
	if role != models.RoleAdmin && role != models.RoleUser {
		response.Error(c, http.StatusForbidden, "User account required")
		return nil, fmt.Errorf("caller is not a user")
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", c.GetString(ContextSubjectID)).Error; err != nil {
		response.Error(c, http.StatusUnauthorized, "User not found")
		return nil, err
	}

	return &user, nil
}
