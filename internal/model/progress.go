package model

import "time"

// Progress is the per (team, level) attempt and timing record. The pair is
// unique; rows are created lazily on first level access or first submission
// and never deleted.
// swagger:model Progress
type Progress struct {
	BaseModel
	TeamID           uint       `gorm:"uniqueIndex:idx_team_level;type:bigint unsigned;not null" json:"team_id"`
	LevelID          uint       `gorm:"uniqueIndex:idx_team_level;type:bigint unsigned;not null" json:"level_id"`
	StartedAt        time.Time  `json:"started_at"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	Attempts         int        `gorm:"default:0" json:"attempts"`
	TimeTakenSeconds *int       `json:"time_taken_seconds,omitempty"`
}

func (Progress) TableName() string {
	return "progresses"
}
