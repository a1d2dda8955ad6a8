package utils

import (
	"fmt"
	"strconv"
	"time"

	"oasis/config"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by every OASIS token. Role is either "Team" for team
// accounts or the admin-panel user role ("Admin"/"User").
type Claims struct {
	SubjectID string `json:"subject_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed HS256 token for the given identity
func GenerateToken(subjectID, name, email, role string) (string, error) {
	expireHours, err := strconv.Atoi(config.JWTExpireHours)
	if err != nil || expireHours <= 0 {
		expireHours = 24
	}

	claims := Claims{
		SubjectID: subjectID,
		Name:      name,
		Email:     email,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expireHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.JWTSecret))
}

// ParseToken validates a token string and returns its claims
func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}
