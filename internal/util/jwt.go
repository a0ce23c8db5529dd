package util

import (
	"clue_quest_backend/internal/model"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Claims binds a session token to a team. SessionID doubles as the Redis
// registry key, so logout can invalidate the token before it expires.
type Claims struct {
	TeamPK    uint   `json:"team_pk"`
	TeamID    string `json:"team_id"`
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

func GenerateSessionJWT(team *model.Team, sessionID, secret string, expiration time.Duration) (string, error) {
	expirationTime := time.Now().Add(expiration)

	claims := &Claims{
		TeamPK:    team.ID,
		TeamID:    team.TeamID,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseSessionJWT(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, err
}

// GetTeamFromContext returns the team resolved for the current request, or
// nil when no resolver middleware ran or resolution failed.
func GetTeamFromContext(c *gin.Context) *model.Team {
	v, exists := c.Get("team")
	if !exists {
		return nil
	}
	team, ok := v.(*model.Team)
	if !ok {
		return nil
	}
	return team
}
