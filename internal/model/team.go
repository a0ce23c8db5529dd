package model

import "time"

// Team is both the login principal and the game progress record.
// swagger:model Team
type Team struct {
	BaseModel
	TeamID           string     `gorm:"size:20;uniqueIndex;not null" json:"team_id"`
	Password         string     `gorm:"size:100;not null" json:"-"`
	CurrentLevel     int        `gorm:"default:1" json:"current_level"`
	TotalTimeSeconds int        `gorm:"default:0" json:"total_time_seconds"`
	IsActiveSession  bool       `gorm:"default:false" json:"is_active_session"`
	SessionToken     *string    `gorm:"size:255" json:"-"`
	IsStaff          bool       `gorm:"default:false" json:"-"`
	StartedAt        *time.Time `json:"started_at"`
	CompletedAt      *time.Time `json:"completed_at"`

	Progresses []Progress `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Team) TableName() string {
	return "teams"
}
