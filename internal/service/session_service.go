package service

import (
	"clue_quest_backend/internal/config"
	"clue_quest_backend/internal/model"
	"clue_quest_backend/internal/util"
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// SessionStore tracks which session ids are live. Logout revokes the id, so
// a still-unexpired JWT stops resolving immediately.
type SessionStore interface {
	Register(ctx context.Context, sessionID string, teamPK uint, ttl time.Duration) error
	Valid(ctx context.Context, sessionID string) (bool, error)
	Revoke(ctx context.Context, sessionID string) error
}

const sessionKeyPrefix = "session:"

type RedisSessionStore struct {
	RDB *redis.Client
}

func NewRedisSessionStore(rdb *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{RDB: rdb}
}

func (s *RedisSessionStore) Register(ctx context.Context, sessionID string, teamPK uint, ttl time.Duration) error {
	return s.RDB.Set(ctx, sessionKeyPrefix+sessionID, teamPK, ttl).Err()
}

func (s *RedisSessionStore) Valid(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.RDB.Exists(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RedisSessionStore) Revoke(ctx context.Context, sessionID string) error {
	return s.RDB.Del(ctx, sessionKeyPrefix+sessionID).Err()
}

// MemorySessionStore backs tests and single-node deployments without Redis.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]time.Time
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]time.Time)}
}

func (s *MemorySessionStore) Register(ctx context.Context, sessionID string, teamPK uint, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = time.Now().Add(ttl)
	return nil
}

func (s *MemorySessionStore) Valid(ctx context.Context, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	expiry, ok := s.sessions[sessionID]
	if !ok {
		return false, nil
	}
	if time.Now().After(expiry) {
		delete(s.sessions, sessionID)
		return false, nil
	}
	return true, nil
}

func (s *MemorySessionStore) Revoke(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// SessionService issues and revokes the JWT-backed sessions that bind a
// browser to a team.
type SessionService struct {
	Store SessionStore
	Cfg   *config.Config
}

func NewSessionService(store SessionStore, cfg *config.Config) *SessionService {
	return &SessionService{Store: store, Cfg: cfg}
}

// Establish creates a new session for the team and returns the signed token
// plus its session id.
func (s *SessionService) Establish(ctx context.Context, team *model.Team) (token string, sessionID string, err error) {
	sessionID = uuid.New().String()

	token, err = util.GenerateSessionJWT(team, sessionID, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", "", err
	}

	if err = s.Store.Register(ctx, sessionID, team.ID, s.Cfg.JWT.ExpireTime); err != nil {
		return "", "", err
	}

	return token, sessionID, nil
}

// Resolve parses a presented token and checks it is still registered.
func (s *SessionService) Resolve(ctx context.Context, token string) (*util.Claims, error) {
	claims, err := util.ParseSessionJWT(token, s.Cfg.JWT.Secret)
	if err != nil {
		return nil, err
	}

	ok, err := s.Store.Valid(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, util.ErrNotAuthenticated
	}

	return claims, nil
}

func (s *SessionService) Revoke(ctx context.Context, sessionID string) error {
	return s.Store.Revoke(ctx, sessionID)
}
