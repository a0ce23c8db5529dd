package service

import (
	"clue_quest_backend/internal/repository"
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureCatalogSeedsDefaults(t *testing.T) {
	db := newTestDB(t)
	levelRepo := repository.NewLevelRepository(db)
	seed := NewSeedService(levelRepo)

	if err := seed.EnsureCatalog("", false); err != nil {
		t.Fatalf("seeding: %v", err)
	}

	count, err := levelRepo.Count()
	if err != nil {
		t.Fatalf("counting levels: %v", err)
	}
	if count != int64(len(defaultCatalog)) {
		t.Errorf("level count = %d, want %d", count, len(defaultCatalog))
	}

	first, err := levelRepo.FindByNumber(1)
	if err != nil {
		t.Fatalf("loading level 1: %v", err)
	}
	if first.Answer == "" {
		t.Error("seeded level has no answer")
	}
}

func TestEnsureCatalogSkipsWhenPopulated(t *testing.T) {
	db := newTestDB(t)
	levelRepo := repository.NewLevelRepository(db)
	seedLevels(t, levelRepo, "victory")
	seed := NewSeedService(levelRepo)

	if err := seed.EnsureCatalog("", false); err != nil {
		t.Fatalf("seeding: %v", err)
	}

	count, err := levelRepo.Count()
	if err != nil {
		t.Fatalf("counting levels: %v", err)
	}
	if count != 1 {
		t.Errorf("level count = %d, want 1 (existing catalog untouched)", count)
	}
}

func TestEnsureCatalogForceUpdatesInPlace(t *testing.T) {
	db := newTestDB(t)
	levelRepo := repository.NewLevelRepository(db)
	seedLevels(t, levelRepo, "victory")
	seed := NewSeedService(levelRepo)

	existing, err := levelRepo.FindByNumber(1)
	if err != nil {
		t.Fatalf("loading level 1: %v", err)
	}
	existingID := existing.ID

	catalog := filepath.Join(t.TempDir(), "levels.json")
	payload := `[{"level_number":1,"title":"Rewritten","description":"d","puzzle_content":"p","answer":"new answer","hint":"h"}]`
	if err := os.WriteFile(catalog, []byte(payload), 0o644); err != nil {
		t.Fatalf("writing catalog file: %v", err)
	}

	if err := seed.EnsureCatalog(catalog, true); err != nil {
		t.Fatalf("force reseeding: %v", err)
	}

	updated, err := levelRepo.FindByNumber(1)
	if err != nil {
		t.Fatalf("reloading level 1: %v", err)
	}
	if updated.ID != existingID {
		t.Error("reseed replaced the row instead of updating in place")
	}
	if updated.Title != "Rewritten" || updated.Answer != "new answer" {
		t.Errorf("level not updated: title=%q answer=%q", updated.Title, updated.Answer)
	}
}

func TestEnsureCatalogRejectsInvalidEntry(t *testing.T) {
	db := newTestDB(t)
	levelRepo := repository.NewLevelRepository(db)
	seed := NewSeedService(levelRepo)

	catalog := filepath.Join(t.TempDir(), "levels.json")
	payload := `[{"level_number":0,"title":"Bad","answer":""}]`
	if err := os.WriteFile(catalog, []byte(payload), 0o644); err != nil {
		t.Fatalf("writing catalog file: %v", err)
	}

	if err := seed.EnsureCatalog(catalog, false); err == nil {
		t.Error("invalid catalog entry accepted")
	}
}
