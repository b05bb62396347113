package models

import "gorm.io/gorm"

// Game represents a recommended title. There is exactly one row per
// Steam app id; recommending the same title again bumps the counter on
// the existing row instead of inserting a new one.
type Game struct {
	gorm.Model
	SteamAppID       uint   `gorm:"uniqueIndex;not null"`
	Name             string `gorm:"size:255;not null"`
	HeaderImage      string `gorm:"size:512;not null"`
	ShortDescription string
	Recommendations  int `gorm:"not null;default:1"`

	Reviews []Review `gorm:"constraint:OnDelete:CASCADE;"`
}
