package model

import "time"

// Default values applied when a create or import request omits the field.
const (
	DefaultBrand    = "未知品牌"
	DefaultPlatform = "未记录"
	DefaultSeason   = "all-season"
)

// WardrobeItem represents one clothing item in the wardrobe
type WardrobeItem struct {
	ID           uint       `json:"id" gorm:"primarykey"`
	Name         string     `json:"name" gorm:"type:text;not null"`
	Category     string     `json:"category" gorm:"type:text;not null;index"`
	Color        string     `json:"color" gorm:"type:text;not null;index"`
	Brand        string     `json:"brand" gorm:"type:text"`
	Price        float64    `json:"price" gorm:"default:0"`
	Seasons      StringList `json:"seasons" gorm:"type:text;not null"`
	PurchaseDate *string    `json:"purchase_date" gorm:"type:text"`
	Image        *string    `json:"image" gorm:"type:text"`
	Notes        string     `json:"notes" gorm:"type:text"`
	Platform     string     `json:"platform" gorm:"type:text"`
	CreatedAt    time.Time  `json:"created_at" gorm:"index"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
