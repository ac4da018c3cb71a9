package core

import (
	"time"
)

// Character is the sole record type of the roster.
// Names are stored lowercase and are unique across all records.
type Character struct {
	ID        string    `json:"-" gorm:"primaryKey;type:char(20)"`
	Name      string    `json:"name" gorm:"uniqueIndex;type:varchar(50)"`
	Faceclaim string    `json:"faceclaim" gorm:"type:varchar(100)"`
	Image     string    `json:"image" gorm:"type:text"`
	Bio       string    `json:"bio" gorm:"type:text"`
	Password  string    `json:"-" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt" gorm:"->;<-:create;autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}
