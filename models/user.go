package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	ID         uint   `gorm:"primaryKey"`
	DiscordID  string `gorm:"uniqueIndex; size:64"`
	Username   string `gorm:"size:255"`
	GlobalName string `gorm:"size:255"`
	GuildName  string `gorm:"size:255"`
}
