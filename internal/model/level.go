package model

// Level is an immutable puzzle definition. Rows are seeded once and treated
// as read-only during gameplay.
// swagger:model Level
type Level struct {
	BaseModel
	LevelNumber   int    `gorm:"uniqueIndex;not null" json:"level_number"`
	Title         string `gorm:"size:255;not null" json:"title"`
	Description   string `gorm:"type:text" json:"description"`
	PuzzleContent string `gorm:"type:text" json:"puzzle_content"`
	Answer        string `gorm:"size:255;not null" json:"-"`
	Hint          string `gorm:"type:text" json:"hint"`
	AssetURL      string `gorm:"size:255" json:"asset_url,omitempty"`
	// IsFinalLevel is informational only. Completion is driven by the
	// catalog count, not this flag.
	IsFinalLevel bool `gorm:"default:false" json:"is_final_level"`
}

func (Level) TableName() string {
	return "levels"
}
