package model

import "time"

// OutfitRecord represents a logged outfit for a specific date. The Items
// field is free text describing what was worn, not a reference to
// WardrobeItem rows.
type OutfitRecord struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Date      string    `json:"date" gorm:"type:text;not null;index"`
	Image     *string   `json:"image" gorm:"type:text"`
	Season    string    `json:"season" gorm:"type:text;not null;index"`
	Style     string    `json:"style" gorm:"type:text;not null;index"`
	Scene     string    `json:"scene" gorm:"type:text;not null;index"`
	Items     string    `json:"items" gorm:"type:text"`
	Notes     string    `json:"notes" gorm:"type:text"`
	Rating    int       `json:"rating" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
