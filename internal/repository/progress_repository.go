package repository

import (
	"clue_quest_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// GetOrCreate returns the Progress row for a (team, level) pair, creating it
// on first access. The upsert is keyed on the pair's unique index, so a
// concurrent create from a second device resolves to the same row instead of
// failing.
func (r *ProgressRepository) GetOrCreate(teamID, levelID uint) (*model.Progress, error) {
	progress := model.Progress{
		TeamID:    teamID,
		LevelID:   levelID,
		StartedAt: time.Now(),
	}

	err := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "team_id"}, {Name: "level_id"}},
		DoNothing: true,
	}).Create(&progress).Error
	if err != nil {
		return nil, err
	}

	// Re-read: on conflict the insert returns the zero row.
	var existing model.Progress
	err = r.DB.Where("team_id = ? AND level_id = ?", teamID, levelID).First(&existing).Error
	return &existing, err
}

// IncrementAttempts bumps the attempt counter with a single atomic UPDATE.
// It is persisted before the answer comparison result is computed, so a
// crash between the two never under-counts.
func (r *ProgressRepository) IncrementAttempts(id uint) error {
	return r.DB.Model(&model.Progress{}).
		Where("id = ?", id).
		Update("attempts", gorm.Expr("attempts + ?", 1)).
		Error
}

func (r *ProgressRepository) FindByID(id uint) (*model.Progress, error) {
	var progress model.Progress
	err := r.DB.First(&progress, id).Error
	return &progress, err
}

func (r *ProgressRepository) Update(progress *model.Progress) error {
	return r.DB.Save(progress).Error
}
