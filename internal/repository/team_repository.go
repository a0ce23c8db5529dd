package repository

import (
	"clue_quest_backend/internal/model"

	"gorm.io/gorm"
)

type TeamRepository struct {
	DB *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{DB: db}
}

func (r *TeamRepository) Create(team *model.Team) error {
	return r.DB.Create(team).Error
}

// FindByID loads the current persisted row by primary key. Session-resolved
// requests always go through here so CurrentLevel is never served from a
// stale claims copy.
func (r *TeamRepository) FindByID(id uint) (*model.Team, error) {
	var team model.Team
	err := r.DB.First(&team, id).Error
	return &team, err
}

// FindByTeamID looks a team up by its login name. The column collation keeps
// the match case-sensitive.
func (r *TeamRepository) FindByTeamID(teamID string) (*model.Team, error) {
	var team model.Team
	err := r.DB.Where("team_id = ?", teamID).First(&team).Error
	return &team, err
}

func (r *TeamRepository) Update(team *model.Team) error {
	return r.DB.Save(team).Error
}

// ListByRanking orders teams the way the scoreboard does: furthest level
// first, fastest total time breaking ties.
func (r *TeamRepository) ListByRanking() ([]model.Team, error) {
	var teams []model.Team
	err := r.DB.Order("current_level DESC, total_time_seconds ASC").Find(&teams).Error
	return teams, err
}
