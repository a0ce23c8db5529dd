package service

import (
	"clue_quest_backend/internal/config"
	"clue_quest_backend/internal/model"
	"clue_quest_backend/internal/repository"
	"clue_quest_backend/pkg/logger"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	logger.Log = zap.NewNop()
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	if err := db.AutoMigrate(&model.Team{}, &model.Level{}, &model.Progress{}); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:     "test-secret",
			ExpireTime: time.Hour,
		},
	}
}

func seedLevels(t *testing.T, repo *repository.LevelRepository, answers ...string) {
	t.Helper()

	for i, answer := range answers {
		level := &model.Level{
			LevelNumber:   i + 1,
			Title:         fmt.Sprintf("Layer %02d", i+1),
			Description:   fmt.Sprintf("Puzzle %d", i+1),
			PuzzleContent: fmt.Sprintf("Content %d", i+1),
			Answer:        answer,
			Hint:          fmt.Sprintf("Hint %d", i+1),
			IsFinalLevel:  i == len(answers)-1,
		}
		if err := repo.Create(level); err != nil {
			t.Fatalf("seeding level %d: %v", i+1, err)
		}
	}
}

func newGameFixture(t *testing.T, answers ...string) (*GameService, *repository.TeamRepository, *repository.ProgressRepository) {
	t.Helper()

	db := newTestDB(t)
	teamRepo := repository.NewTeamRepository(db)
	levelRepo := repository.NewLevelRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	seedLevels(t, levelRepo, answers...)

	return NewGameService(teamRepo, levelRepo, progressRepo, BcryptHasher{}), teamRepo, progressRepo
}

func createTeam(t *testing.T, repo *repository.TeamRepository, teamID string) *model.Team {
	t.Helper()

	now := time.Now()
	team := &model.Team{
		TeamID:       teamID,
		Password:     "irrelevant",
		CurrentLevel: 1,
		StartedAt:    &now,
	}
	if err := repo.Create(team); err != nil {
		t.Fatalf("creating team %s: %v", teamID, err)
	}
	return team
}
