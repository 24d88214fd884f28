package models

// Form is the aggregate root: it exclusively owns its questions and,
// transitively, every answer submitted against it. Key is the short friendly
// identifier used in URLs instead of the numeric primary key.
type Form struct {
	BaseModel
	UserID      uint   `gorm:"index;not null" json:"user_id"`
	Key         string `gorm:"type:varchar(11);uniqueIndex;not null" json:"key"`
	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	// No column default: a default tag would make GORM drop the zero value
	// on insert, silently re-enabling forms created disabled. The service
	// defaults new forms to enabled explicitly.
	IsEnabled bool `gorm:"index" json:"is_enabled"`

	User      User       `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Questions []Question `gorm:"foreignKey:FormID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"questions"`
	Answers   []Answer   `gorm:"foreignKey:FormID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
