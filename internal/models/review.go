package models

import "gorm.io/gorm"

// Review is a short free-text comment attached to one game. Reviews are
// append-only and disappear only when their game is deleted.
type Review struct {
	gorm.Model
	GameID uint   `gorm:"not null;index"`
	Text   string `gorm:"not null"`
}
