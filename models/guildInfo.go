package models

import "gorm.io/gorm"

type Guild struct {
	gorm.Model
	ID              uint   `gorm:"primaryKey"`
	GuildID         string `gorm:"uniqueIndex; size:64"`
	GuildName       string `gorm:"size:255"`
	WordleChannelID string `gorm:"size:64"`
}
