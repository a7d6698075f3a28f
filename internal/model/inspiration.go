package model

import "time"

// Inspiration represents a saved style reference
type Inspiration struct {
	ID          uint       `json:"id" gorm:"primarykey"`
	Title       string     `json:"title" gorm:"type:text;not null"`
	Image       string     `json:"image" gorm:"type:text;not null"`
	Description string     `json:"description" gorm:"type:text"`
	Tags        StringList `json:"tags" gorm:"type:text"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
