package service

import (
	"clue_quest_backend/internal/model"
	"clue_quest_backend/internal/repository"
	"encoding/json"
	"fmt"
	"os"

	"clue_quest_backend/pkg/logger"

	"go.uber.org/zap"
)

// SeedService loads the level catalog. Levels are seed data: written once
// here, read-only for the rest of the process lifetime.
type SeedService struct {
	LevelRepo *repository.LevelRepository
}

func NewSeedService(levelRepo *repository.LevelRepository) *SeedService {
	return &SeedService{LevelRepo: levelRepo}
}

type catalogEntry struct {
	LevelNumber   int    `json:"level_number"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	PuzzleContent string `json:"puzzle_content"`
	Answer        string `json:"answer"`
	Hint          string `json:"hint"`
	AssetURL      string `json:"asset_url"`
	IsFinalLevel  bool   `json:"is_final_level"`
}

// EnsureCatalog seeds the catalog if the table is empty, or force-reseeds it
// when asked. Existing levels are matched by level number and updated in
// place, so reseeding never breaks Progress references.
func (s *SeedService) EnsureCatalog(catalogPath string, force bool) error {
	count, err := s.LevelRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 && !force {
		return nil
	}

	entries, err := s.loadCatalog(catalogPath)
	if err != nil {
		return err
	}

	created, updated := 0, 0
	for _, e := range entries {
		if e.LevelNumber < 1 || e.Answer == "" {
			return fmt.Errorf("invalid catalog entry: level_number=%d", e.LevelNumber)
		}

		level, err := s.LevelRepo.FindByNumber(e.LevelNumber)
		if err != nil {
			level = &model.Level{LevelNumber: e.LevelNumber}
		}
		level.Title = e.Title
		level.Description = e.Description
		level.PuzzleContent = e.PuzzleContent
		level.Answer = e.Answer
		level.Hint = e.Hint
		level.AssetURL = e.AssetURL
		level.IsFinalLevel = e.IsFinalLevel

		if level.ID == 0 {
			if err := s.LevelRepo.Create(level); err != nil {
				return err
			}
			created++
		} else {
			if err := s.LevelRepo.Update(level); err != nil {
				return err
			}
			updated++
		}
	}

	logger.Log.Info("Level catalog seeded",
		zap.Int("created", created),
		zap.Int("updated", updated),
	)
	return nil
}

func (s *SeedService) loadCatalog(catalogPath string) ([]catalogEntry, error) {
	if catalogPath != "" {
		raw, err := os.ReadFile(catalogPath)
		if err == nil {
			var entries []catalogEntry
			if err := json.Unmarshal(raw, &entries); err != nil {
				return nil, fmt.Errorf("parsing catalog %s: %w", catalogPath, err)
			}
			return entries, nil
		}
		logger.Log.Warn("Catalog file not readable, using built-in defaults",
			zap.String("path", catalogPath),
			zap.Error(err),
		)
	}
	return defaultCatalog, nil
}
