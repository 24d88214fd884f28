package models

import "time"

// BaseModel is embedded by every entity. Deletes in this system are hard
// deletes (a removed form must leave no orphan rows behind), so there is no
// soft-delete column.
type BaseModel struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
