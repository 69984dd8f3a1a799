package wordleService

import (
	"database/sql"

	"gorm.io/gorm"

	"wordleBot/models"
)

// UserStats are a single user's lifetime recap aggregates. Best is the
// lowest guess count and Worst the highest, since fewer guesses is better.
type UserStats struct {
	GamesPlayed  int
	AverageScore float64
	BestScore    int
	WorstScore   int
}

func GetUserStats(db *gorm.DB, userID uint) (*UserStats, error) {
	var row struct {
		Games int
		Avg   sql.NullFloat64
		Best  sql.NullInt64
		Worst sql.NullInt64
	}

	err := db.Model(&models.WordleScore{}).
		Select("COUNT(score) AS games, AVG(score) AS avg, MIN(score) AS best, MAX(score) AS worst").
		Where("user_id = ?", userID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	return &UserStats{
		GamesPlayed:  row.Games,
		AverageScore: row.Avg.Float64,
		BestScore:    int(row.Best.Int64),
		WorstScore:   int(row.Worst.Int64),
	}, nil
}
