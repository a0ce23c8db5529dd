package service

import (
	"clue_quest_backend/internal/model"
	"clue_quest_backend/internal/repository"
	"clue_quest_backend/internal/util"
	"errors"
	"sync"
	"time"

	"clue_quest_backend/pkg/monitoring"

	"gorm.io/gorm"
)

// GameService runs the progression state machine: level access, answer
// checking, level advancement and completion detection.
type GameService struct {
	TeamRepo     *repository.TeamRepository
	LevelRepo    *repository.LevelRepository
	ProgressRepo *repository.ProgressRepository
	Hasher       PasswordHasher

	// Two devices of the same team can submit simultaneously; the
	// increment-then-compare sequence is serialized per team id so
	// attempts and level advancement stay consistent.
	teamLocks sync.Map
}

func NewGameService(teamRepo *repository.TeamRepository, levelRepo *repository.LevelRepository, progressRepo *repository.ProgressRepository, hasher PasswordHasher) *GameService {
	return &GameService{
		TeamRepo:     teamRepo,
		LevelRepo:    levelRepo,
		ProgressRepo: progressRepo,
		Hasher:       hasher,
	}
}

func (s *GameService) lockTeam(teamID string) func() {
	v, _ := s.teamLocks.LoadOrStore(teamID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// LevelView is the level payload served to players. The canonical answer is
// never part of it.
type LevelView struct {
	LevelNumber      int    `json:"level_number"`
	TotalLevels      int    `json:"total_levels"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	PuzzleContent    string `json:"puzzle_content"`
	Hint             string `json:"hint"`
	AssetURL         string `json:"asset_url,omitempty"`
	Attempts         int    `json:"attempts"`
	TotalTimeSeconds int    `json:"total_time_seconds"`
}

// CompletedView is returned instead of a LevelView once a team has passed
// the last level. It is a normal result, not an error.
type CompletedView struct {
	TotalLevels      int        `json:"total_levels"`
	TotalTimeSeconds int        `json:"total_time_seconds"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}

// GetCurrentLevel serves the level a team is on, lazily creating the
// Progress row on first access. Repeated calls are idempotent: the (team,
// level) pair maps to a single row.
func (s *GameService) GetCurrentLevel(team *model.Team) (*LevelView, *CompletedView, error) {
	total, err := s.LevelRepo.Count()
	if err != nil {
		return nil, nil, err
	}

	if team.CurrentLevel > int(total) {
		return nil, &CompletedView{
			TotalLevels:      int(total),
			TotalTimeSeconds: team.TotalTimeSeconds,
			CompletedAt:      team.CompletedAt,
		}, nil
	}

	level, err := s.LevelRepo.FindByNumber(team.CurrentLevel)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// A gap in the numbering is a catalog integrity violation,
			// not a normal game state.
			return nil, nil, util.ErrLevelNotFound
		}
		return nil, nil, err
	}

	progress, err := s.ProgressRepo.GetOrCreate(team.ID, level.ID)
	if err != nil {
		return nil, nil, err
	}

	return &LevelView{
		LevelNumber:      level.LevelNumber,
		TotalLevels:      int(total),
		Title:            level.Title,
		Description:      level.Description,
		PuzzleContent:    level.PuzzleContent,
		Hint:             level.Hint,
		AssetURL:         level.AssetURL,
		Attempts:         progress.Attempts,
		TotalTimeSeconds: team.TotalTimeSeconds,
	}, nil, nil
}

// SubmitResult is the outcome of one answer submission.
type SubmitResult struct {
	Correct         bool `json:"correct"`
	Attempts        int  `json:"attempts"`
	NextLevel       int  `json:"next_level,omitempty"`
	IsGameCompleted bool `json:"is_game_completed"`
}

// SubmitAnswer applies one submission to the state machine:
// attempts are incremented and persisted before the comparison, advancement
// happens only on a match, and the completed level's time is folded into the
// team total exactly once.
func (s *GameService) SubmitAnswer(team *model.Team, rawAnswer string) (*SubmitResult, error) {
	if util.NormalizeAnswer(rawAnswer) == "" {
		return nil, util.ErrValidation
	}

	unlock := s.lockTeam(team.TeamID)
	defer unlock()

	// Re-read under the lock; a concurrent submission may have advanced
	// the team since the resolver loaded it.
	team, err := s.TeamRepo.FindByID(team.ID)
	if err != nil {
		return nil, err
	}

	total, err := s.LevelRepo.Count()
	if err != nil {
		return nil, err
	}

	level, err := s.LevelRepo.FindByNumber(team.CurrentLevel)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLevelNotFound
		}
		return nil, err
	}

	progress, err := s.ProgressRepo.GetOrCreate(team.ID, level.ID)
	if err != nil {
		return nil, err
	}

	// Attempts count every submission, correct or not, and must be durable
	// before the comparison result is returned.
	if err := s.ProgressRepo.IncrementAttempts(progress.ID); err != nil {
		return nil, err
	}
	progress.Attempts++

	if util.NormalizeAnswer(rawAnswer) != util.NormalizeAnswer(level.Answer) {
		monitoring.AnswerSubmissions.WithLabelValues("incorrect").Inc()
		return &SubmitResult{
			Correct:  false,
			Attempts: progress.Attempts,
		}, nil
	}

	now := time.Now()
	progress.CompletedAt = &now
	if !progress.StartedAt.IsZero() {
		taken := int(now.Sub(progress.StartedAt).Seconds())
		if taken < 0 {
			taken = 0
		}
		progress.TimeTakenSeconds = &taken
	}
	if err := s.ProgressRepo.Update(progress); err != nil {
		return nil, err
	}

	team.CurrentLevel++
	if progress.TimeTakenSeconds != nil {
		team.TotalTimeSeconds += *progress.TimeTakenSeconds
	}
	completed := team.CurrentLevel > int(total)
	if completed && team.CompletedAt == nil {
		team.CompletedAt = &now
	}
	if err := s.TeamRepo.Update(team); err != nil {
		return nil, err
	}

	monitoring.AnswerSubmissions.WithLabelValues("correct").Inc()
	if completed {
		monitoring.GameCompletions.Inc()
	}

	return &SubmitResult{
		Correct:         true,
		Attempts:        progress.Attempts,
		NextLevel:       team.CurrentLevel,
		IsGameCompleted: completed,
	}, nil
}

// StatusView is the session-authenticated status payload.
type StatusView struct {
	TeamID           string     `json:"team_id"`
	CurrentLevel     int        `json:"current_level"`
	TotalLevels      int        `json:"total_levels"`
	TotalTimeSeconds int        `json:"total_time_seconds"`
	StartedAt        *time.Time `json:"started_at"`
	CompletedAt      *time.Time `json:"completed_at"`
	IsCompleted      bool       `json:"is_completed"`
}

func (s *GameService) Status(team *model.Team) (*StatusView, error) {
	total, err := s.LevelRepo.Count()
	if err != nil {
		return nil, err
	}

	return &StatusView{
		TeamID:           team.TeamID,
		CurrentLevel:     team.CurrentLevel,
		TotalLevels:      int(total),
		TotalTimeSeconds: team.TotalTimeSeconds,
		StartedAt:        team.StartedAt,
		CompletedAt:      team.CompletedAt,
		IsCompleted:      team.CompletedAt != nil,
	}, nil
}

// sentinel credential for teams created through the out-of-band completion
// path; they never log in through it.
const completionSentinelPassword = "completed"

// RecordCompletion stores a client-computed elapsed time, bypassing the
// per-level state machine. The stored total can disagree with the
// server-summed one; that inconsistency is accepted, not reconciled.
func (s *GameService) RecordCompletion(teamID string, completionTimeSeconds int) (*model.Team, error) {
	if teamID == "" {
		return nil, util.ErrValidation
	}

	unlock := s.lockTeam(teamID)
	defer unlock()

	now := time.Now()

	team, err := s.TeamRepo.FindByTeamID(teamID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hashed, herr := s.Hasher.Hash(completionSentinelPassword)
		if herr != nil {
			return nil, util.ErrRegistrationFailed
		}
		team = &model.Team{
			TeamID:       teamID,
			Password:     hashed,
			CurrentLevel: 1,
		}
		if cerr := s.TeamRepo.Create(team); cerr != nil {
			return nil, util.ErrRegistrationFailed
		}
	} else if err != nil {
		return nil, err
	}

	team.CompletedAt = &now
	team.TotalTimeSeconds = completionTimeSeconds
	if err := s.TeamRepo.Update(team); err != nil {
		return nil, err
	}

	monitoring.GameCompletions.Inc()
	return team, nil
}
