package models

import (
	"gorm.io/gorm"
	"time"
)

// WordleScore is one scraped recap result. Score 0 means the puzzle was
// failed (an X line), 1-6 is the number of guesses it took.
type WordleScore struct {
	gorm.Model
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"index"`
	Score  int
	Date   time.Time `gorm:"index"`
}
