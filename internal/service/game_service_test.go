package service

import (
	"clue_quest_backend/internal/model"
	"clue_quest_backend/internal/util"
	"errors"
	"sync"
	"testing"
)

func TestSubmitAnswerWrongThenRight(t *testing.T) {
	game, teamRepo, _ := newGameFixture(t, "CLOCK_SOLVED", "CRACK")
	team := createTeam(t, teamRepo, "alpha")

	result, err := game.SubmitAnswer(team, "x")
	if err != nil {
		t.Fatalf("submitting wrong answer: %v", err)
	}
	if result.Correct {
		t.Error("wrong answer reported as correct")
	}
	if result.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", result.Attempts)
	}

	result, err = game.SubmitAnswer(team, "clock_solved")
	if err != nil {
		t.Fatalf("submitting correct answer: %v", err)
	}
	if !result.Correct {
		t.Error("correct answer reported as incorrect")
	}
	if result.NextLevel != 2 {
		t.Errorf("next level = %d, want 2", result.NextLevel)
	}
	if result.IsGameCompleted {
		t.Error("game reported completed with a level remaining")
	}
	if result.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", result.Attempts)
	}

	stored, err := teamRepo.FindByID(team.ID)
	if err != nil {
		t.Fatalf("reloading team: %v", err)
	}
	if stored.CurrentLevel != 2 {
		t.Errorf("stored current level = %d, want 2", stored.CurrentLevel)
	}
	if stored.CompletedAt != nil {
		t.Error("completed_at set before the catalog is finished")
	}
}

func TestSubmitAnswerNormalization(t *testing.T) {
	tests := []struct {
		name      string
		submitted string
		correct   bool
	}{
		{"padded", "  Victory  ", true},
		{"upper", "VICTORY", true},
		{"lower", "victory", true},
		{"wrong", "defeat", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game, teamRepo, _ := newGameFixture(t, "VICTORY")
			team := createTeam(t, teamRepo, "norm-"+tt.name)

			result, err := game.SubmitAnswer(team, tt.submitted)
			if err != nil {
				t.Fatalf("submitting %q: %v", tt.submitted, err)
			}
			if result.Correct != tt.correct {
				t.Errorf("Correct = %v, want %v", result.Correct, tt.correct)
			}
		})
	}
}

func TestSubmitAnswerEmptyAnswer(t *testing.T) {
	game, teamRepo, _ := newGameFixture(t, "VICTORY")
	team := createTeam(t, teamRepo, "empty")

	if _, err := game.SubmitAnswer(team, "   "); !errors.Is(err, util.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}
}

func TestSubmitAnswerCountsAllAttempts(t *testing.T) {
	game, teamRepo, _ := newGameFixture(t, "VICTORY")
	team := createTeam(t, teamRepo, "counter")

	for i := 1; i <= 5; i++ {
		result, err := game.SubmitAnswer(team, "nope")
		if err != nil {
			t.Fatalf("submission %d: %v", i, err)
		}
		if result.Attempts != i {
			t.Errorf("after %d submissions attempts = %d", i, result.Attempts)
		}
	}
}

func TestSubmitAnswerNeverSkipsLevels(t *testing.T) {
	game, teamRepo, _ := newGameFixture(t, "A", "B", "C")
	team := createTeam(t, teamRepo, "walker")

	answers := []string{"a", "b", "c"}
	for i, answer := range answers {
		fresh, err := teamRepo.FindByID(team.ID)
		if err != nil {
			t.Fatalf("reloading team: %v", err)
		}
		if fresh.CurrentLevel != i+1 {
			t.Fatalf("current level = %d before solving level %d", fresh.CurrentLevel, i+1)
		}

		result, err := game.SubmitAnswer(fresh, answer)
		if err != nil {
			t.Fatalf("solving level %d: %v", i+1, err)
		}
		if result.NextLevel != i+2 {
			t.Errorf("next level = %d, want %d", result.NextLevel, i+2)
		}
	}
}

func TestSubmitAnswerFinalLevelCompletesGame(t *testing.T) {
	game, teamRepo, _ := newGameFixture(t, "A", "VICTORY")
	team := createTeam(t, teamRepo, "finisher")
	team.CurrentLevel = 2
	if err := teamRepo.Update(team); err != nil {
		t.Fatalf("advancing team: %v", err)
	}

	result, err := game.SubmitAnswer(team, "victory")
	if err != nil {
		t.Fatalf("submitting final answer: %v", err)
	}
	if !result.Correct || !result.IsGameCompleted {
		t.Errorf("result = %+v, want correct and completed", result)
	}
	if result.NextLevel != 3 {
		t.Errorf("next level = %d, want 3", result.NextLevel)
	}

	stored, err := teamRepo.FindByID(team.ID)
	if err != nil {
		t.Fatalf("reloading team: %v", err)
	}
	if stored.CompletedAt == nil {
		t.Error("completed_at not set after finishing the catalog")
	}
	if stored.CurrentLevel != 3 {
		t.Errorf("stored current level = %d, want 3", stored.CurrentLevel)
	}
}

func TestSubmitAnswerCatalogGap(t *testing.T) {
	game, teamRepo, _ := newGameFixture(t, "A", "B", "C")
	team := createTeam(t, teamRepo, "gapped")
	team.CurrentLevel = 2
	if err := teamRepo.Update(team); err != nil {
		t.Fatalf("advancing team: %v", err)
	}

	// Remove level 2 to punch a hole in the numbering.
	if err := game.LevelRepo.DB.Where("level_number = ?", 2).Delete(&model.Level{}).Error; err != nil {
		t.Fatalf("deleting level: %v", err)
	}

	if _, err := game.SubmitAnswer(team, "b"); !errors.Is(err, util.ErrLevelNotFound) {
		t.Errorf("error = %v, want ErrLevelNotFound", err)
	}
}

func TestSubmitAnswerConcurrentWrongSubmissions(t *testing.T) {
	game, teamRepo, progressRepo := newGameFixture(t, "VICTORY")
	team := createTeam(t, teamRepo, "swarm")

	// Two devices on the same team can hammer submit simultaneously;
	// every submission must land in the attempt counter.
	const n = 8
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := game.SubmitAnswer(team, "wrong"); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent submission: %v", err)
	}

	level, err := game.LevelRepo.FindByNumber(1)
	if err != nil {
		t.Fatalf("loading level: %v", err)
	}
	progress, err := progressRepo.GetOrCreate(team.ID, level.ID)
	if err != nil {
		t.Fatalf("loading progress: %v", err)
	}
	if progress.Attempts != n {
		t.Errorf("attempts = %d, want %d", progress.Attempts, n)
	}

	stored, err := teamRepo.FindByID(team.ID)
	if err != nil {
		t.Fatalf("reloading team: %v", err)
	}
	if stored.CurrentLevel != 1 {
		t.Errorf("current level = %d after only wrong answers, want 1", stored.CurrentLevel)
	}
}

func TestSubmitAnswerConcurrentCorrectSubmissions(t *testing.T) {
	game, teamRepo, _ := newGameFixture(t, "A", "B")
	team := createTeam(t, teamRepo, "racers")

	// Both goroutines hold a stale copy of the team on level 1. Only one
	// may advance it; the loser is re-read under the lock, lands on level
	// 2 and its "a" is simply wrong there.
	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := game.SubmitAnswer(team, "a"); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent submission: %v", err)
	}

	stored, err := teamRepo.FindByID(team.ID)
	if err != nil {
		t.Fatalf("reloading team: %v", err)
	}
	if stored.CurrentLevel != 2 {
		t.Errorf("current level = %d, want 2 (advance exactly once)", stored.CurrentLevel)
	}
	if stored.CompletedAt != nil {
		t.Error("completed_at set with a level remaining")
	}
}

func TestGetCurrentLevelIdempotentProgress(t *testing.T) {
	game, teamRepo, progressRepo := newGameFixture(t, "A", "B")
	team := createTeam(t, teamRepo, "idem")

	for i := 0; i < 3; i++ {
		levelView, completedView, err := game.GetCurrentLevel(team)
		if err != nil {
			t.Fatalf("access %d: %v", i, err)
		}
		if completedView != nil {
			t.Fatalf("access %d returned completed view", i)
		}
		if levelView.LevelNumber != 1 {
			t.Errorf("level number = %d, want 1", levelView.LevelNumber)
		}
	}

	var count int64
	if err := progressRepo.DB.Model(&model.Progress{}).Where("team_id = ?", team.ID).Count(&count).Error; err != nil {
		t.Fatalf("counting progress rows: %v", err)
	}
	if count != 1 {
		t.Errorf("progress rows = %d, want 1", count)
	}
}

func TestGetCurrentLevelHidesAnswer(t *testing.T) {
	game, teamRepo, _ := newGameFixture(t, "SECRET")
	team := createTeam(t, teamRepo, "peeker")

	levelView, _, err := game.GetCurrentLevel(team)
	if err != nil {
		t.Fatalf("getting level: %v", err)
	}

	// The view has no answer field at all; make sure none of the textual
	// fields leak the canonical answer either.
	for name, v := range map[string]string{
		"title":          levelView.Title,
		"description":    levelView.Description,
		"puzzle_content": levelView.PuzzleContent,
		"hint":           levelView.Hint,
	} {
		if v == "SECRET" {
			t.Errorf("%s leaks the canonical answer", name)
		}
	}
}

func TestGetCurrentLevelAfterCompletion(t *testing.T) {
	game, teamRepo, _ := newGameFixture(t, "A", "B")
	team := createTeam(t, teamRepo, "done")
	team.CurrentLevel = 3
	team.TotalTimeSeconds = 420
	if err := teamRepo.Update(team); err != nil {
		t.Fatalf("updating team: %v", err)
	}

	levelView, completedView, err := game.GetCurrentLevel(team)
	if err != nil {
		t.Fatalf("access past the catalog must not error: %v", err)
	}
	if levelView != nil {
		t.Error("level view returned for a finished team")
	}
	if completedView == nil {
		t.Fatal("no completed view returned")
	}
	if completedView.TotalTimeSeconds != 420 {
		t.Errorf("total time = %d, want 420", completedView.TotalTimeSeconds)
	}
}

func TestCurrentLevelMonotonic(t *testing.T) {
	game, teamRepo, _ := newGameFixture(t, "A", "B")
	team := createTeam(t, teamRepo, "mono")

	submissions := []string{"wrong", "a", "wrong", "still wrong", "b", "b"}
	last := 1
	for _, answer := range submissions {
		fresh, err := teamRepo.FindByID(team.ID)
		if err != nil {
			t.Fatalf("reloading team: %v", err)
		}

		// Past the catalog end the submit path reports a catalog gap;
		// the level simply no longer exists.
		if _, err := game.SubmitAnswer(fresh, answer); err != nil && !errors.Is(err, util.ErrLevelNotFound) {
			t.Fatalf("submitting %q: %v", answer, err)
		}

		after, err := teamRepo.FindByID(team.ID)
		if err != nil {
			t.Fatalf("reloading team: %v", err)
		}
		if after.CurrentLevel < last {
			t.Fatalf("current level decreased from %d to %d", last, after.CurrentLevel)
		}
		last = after.CurrentLevel
	}
}

func TestRecordCompletionExistingTeam(t *testing.T) {
	game, teamRepo, _ := newGameFixture(t, "A")
	team := createTeam(t, teamRepo, "owntimer")

	updated, err := game.RecordCompletion("owntimer", 1234)
	if err != nil {
		t.Fatalf("recording completion: %v", err)
	}
	if updated.TotalTimeSeconds != 1234 {
		t.Errorf("total time = %d, want 1234", updated.TotalTimeSeconds)
	}
	if updated.CompletedAt == nil {
		t.Error("completed_at not set")
	}
	if updated.ID != team.ID {
		t.Errorf("completion created a new team: id %d != %d", updated.ID, team.ID)
	}
}

func TestRecordCompletionUnknownTeamCreated(t *testing.T) {
	game, teamRepo, _ := newGameFixture(t, "A")

	updated, err := game.RecordCompletion("ghost", 99)
	if err != nil {
		t.Fatalf("recording completion for unknown team: %v", err)
	}
	if updated.TotalTimeSeconds != 99 {
		t.Errorf("total time = %d, want 99", updated.TotalTimeSeconds)
	}

	stored, err := teamRepo.FindByTeamID("ghost")
	if err != nil {
		t.Fatalf("team not persisted: %v", err)
	}
	if stored.CompletedAt == nil {
		t.Error("completed_at not set on created team")
	}
}

func TestRecordCompletionMissingTeamID(t *testing.T) {
	game, _, _ := newGameFixture(t, "A")

	if _, err := game.RecordCompletion("", 10); !errors.Is(err, util.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}
}
