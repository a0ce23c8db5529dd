package service

import (
	"clue_quest_backend/internal/config"
	"clue_quest_backend/internal/model"
	"clue_quest_backend/internal/repository"
	"clue_quest_backend/internal/util"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type AuthService struct {
	TeamRepo *repository.TeamRepository
	Sessions *SessionService
	Hasher   PasswordHasher
	Cfg      *config.Config
}

func NewAuthService(teamRepo *repository.TeamRepository, sessions *SessionService, hasher PasswordHasher, cfg *config.Config) *AuthService {
	return &AuthService{
		TeamRepo: teamRepo,
		Sessions: sessions,
		Hasher:   hasher,
		Cfg:      cfg,
	}
}

// LoginResult carries the outcome of the combined login/registration flow.
type LoginResult struct {
	Team    *model.Team
	Token   string
	Created bool
}

// LoginOrRegister logs an existing team in or registers a new one, keyed on
// whether the team id already exists. A credential mismatch returns
// ErrInvalidCredentials without revealing which part failed.
func (s *AuthService) LoginOrRegister(ctx context.Context, teamID, password string) (*LoginResult, error) {
	if teamID == "" || password == "" {
		return nil, util.ErrValidation
	}

	team, err := s.TeamRepo.FindByTeamID(teamID)
	switch {
	case err == nil:
		if !s.Hasher.Verify(team.Password, password) {
			return nil, util.ErrInvalidCredentials
		}
		return s.openSession(ctx, team, false)

	case errors.Is(err, gorm.ErrRecordNotFound):
		hashed, err := s.Hasher.Hash(password)
		if err != nil {
			return nil, util.ErrRegistrationFailed
		}
		team = &model.Team{
			TeamID:       teamID,
			Password:     hashed,
			CurrentLevel: 1,
		}
		if err := s.TeamRepo.Create(team); err != nil {
			// Most likely the unique constraint under a concurrent
			// registration race.
			return nil, util.ErrRegistrationFailed
		}
		return s.openSession(ctx, team, true)

	default:
		return nil, err
	}
}

func (s *AuthService) openSession(ctx context.Context, team *model.Team, created bool) (*LoginResult, error) {
	token, sessionID, err := s.Sessions.Establish(ctx, team)
	if err != nil {
		return nil, err
	}

	team.IsActiveSession = true
	team.SessionToken = &sessionID
	if team.StartedAt == nil {
		now := time.Now()
		team.StartedAt = &now
	}
	if err := s.TeamRepo.Update(team); err != nil {
		return nil, err
	}

	return &LoginResult{Team: team, Token: token, Created: created}, nil
}

// Logout clears the active session flag and revokes the session id. Safe to
// call once per logged-in session; a second call is a no-op.
func (s *AuthService) Logout(ctx context.Context, team *model.Team) error {
	if team.SessionToken != nil {
		if err := s.Sessions.Revoke(ctx, *team.SessionToken); err != nil {
			return err
		}
	}

	team.IsActiveSession = false
	team.SessionToken = nil
	return s.TeamRepo.Update(team)
}
