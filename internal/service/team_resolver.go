package service

import (
	"bytes"
	"clue_quest_backend/internal/model"
	"clue_quest_backend/internal/repository"
	"clue_quest_backend/internal/util"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ResolveMethod names the strategy that produced a team.
type ResolveMethod string

const (
	ResolveBySession  ResolveMethod = "session"
	ResolveByFallback ResolveMethod = "fallback"
)

// ResolveStrategy inspects a request for one kind of identity. It returns
// (nil, nil) when its identity kind is simply absent, letting the next
// strategy run; any error short-circuits the chain.
type ResolveStrategy interface {
	Method() ResolveMethod
	Resolve(c *gin.Context) (*model.Team, error)
}

// TeamResolver determines which team a request acts on, trying strategies in
// order and stopping at the first match.
type TeamResolver struct {
	strategies []ResolveStrategy
}

func NewTeamResolver(teamRepo *repository.TeamRepository, sessions *SessionService) *TeamResolver {
	return &TeamResolver{
		strategies: []ResolveStrategy{
			&sessionStrategy{teamRepo: teamRepo, sessions: sessions},
			&fallbackIDStrategy{teamRepo: teamRepo},
		},
	}
}

// Resolve returns exactly one team or a well-defined failure:
// ErrNotAuthenticated when no identity was supplied at all, ErrTeamNotFound
// when a fallback identifier was supplied but matches no team.
func (r *TeamResolver) Resolve(c *gin.Context) (*model.Team, ResolveMethod, error) {
	for _, s := range r.strategies {
		team, err := s.Resolve(c)
		if err != nil {
			return nil, "", err
		}
		if team != nil {
			return team, s.Method(), nil
		}
	}
	return nil, "", util.ErrNotAuthenticated
}

const SessionCookieName = "quest_session"

// sessionStrategy resolves an authenticated session from the session cookie
// or a bearer token. The team row is always re-read by primary key so
// concurrent requests from the same browser see a fresh CurrentLevel.
type sessionStrategy struct {
	teamRepo *repository.TeamRepository
	sessions *SessionService
}

func (s *sessionStrategy) Method() ResolveMethod { return ResolveBySession }

func (s *sessionStrategy) Resolve(c *gin.Context) (*model.Team, error) {
	token := ""
	if cookie, err := c.Cookie(SessionCookieName); err == nil {
		token = cookie
	}
	if token == "" {
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}
	}
	if token == "" {
		return nil, nil
	}

	claims, err := s.sessions.Resolve(c.Request.Context(), token)
	if err != nil {
		// An invalid or revoked session falls through to the fallback
		// identifier rather than failing the request outright.
		return nil, nil
	}

	team, err := s.teamRepo.FindByID(claims.TeamPK)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return team, nil
}

// fallbackIDStrategy resolves an explicit, unsigned team identifier from the
// X-Team-ID header, the team_id query parameter, or the JSON body. It is a
// deliberate escape hatch for clients without a shared cookie jar, not a
// security boundary.
type fallbackIDStrategy struct {
	teamRepo *repository.TeamRepository
}

func (s *fallbackIDStrategy) Method() ResolveMethod { return ResolveByFallback }

func (s *fallbackIDStrategy) Resolve(c *gin.Context) (*model.Team, error) {
	teamID := strings.TrimSpace(c.GetHeader("X-Team-ID"))
	if teamID == "" {
		teamID = strings.TrimSpace(c.Query("team_id"))
	}
	if teamID == "" {
		teamID = strings.TrimSpace(peekBodyTeamID(c))
	}
	if teamID == "" {
		return nil, nil
	}

	team, err := s.teamRepo.FindByTeamID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrTeamNotFound
		}
		return nil, err
	}
	return team, nil
}

// peekBodyTeamID reads a team_id field out of a JSON body without consuming
// it; the body is restored so the controller can still bind it.
func peekBodyTeamID(c *gin.Context) string {
	if c.Request.Body == nil {
		return ""
	}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(raw))

	var body struct {
		TeamID string `json:"team_id"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return body.TeamID
}
