package repository

import (
	"clue_quest_backend/internal/model"

	"gorm.io/gorm"
)

type LevelRepository struct {
	DB *gorm.DB
}

func NewLevelRepository(db *gorm.DB) *LevelRepository {
	return &LevelRepository{DB: db}
}

func (r *LevelRepository) Create(level *model.Level) error {
	return r.DB.Create(level).Error
}

func (r *LevelRepository) Update(level *model.Level) error {
	return r.DB.Save(level).Error
}

func (r *LevelRepository) FindByNumber(levelNumber int) (*model.Level, error) {
	var level model.Level
	err := r.DB.Where("level_number = ?", levelNumber).First(&level).Error
	return &level, err
}

func (r *LevelRepository) ListOrdered() ([]model.Level, error) {
	var levels []model.Level
	err := r.DB.Order("level_number ASC").Find(&levels).Error
	return levels, err
}

// Count is the catalog size; completion comparisons run against it.
func (r *LevelRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Level{}).Count(&count).Error
	return count, err
}
