package wordleService

import (
	"sort"
	"time"

	"gorm.io/gorm"

	"wordleBot/models"
)

type Window string

const (
	WindowWeekly  Window = "weekly"
	WindowMonthly Window = "monthly"
	WindowAllTime Window = "alltime"
)

// LeaderboardEntry is one ranked user. MaxGames is the window's capacity:
// 7 for weekly, 30 for monthly, and the user's own games played for the
// all-time window.
type LeaderboardEntry struct {
	User        models.User
	Rating      float64
	GamesPlayed int
	MaxGames    int
}

// windowCutoff returns the earliest date counted for a window and its game
// capacity. Capacity 0 means per-user (all-time).
func windowCutoff(window Window, now time.Time) (time.Time, int) {
	switch window {
	case WindowWeekly:
		return now.Add(-7 * 24 * time.Hour), 7
	case WindowMonthly:
		return now.Add(-30 * 24 * time.Hour), 30
	default:
		return time.Unix(0, 0), 0
	}
}

// WordleRating combines solve efficiency and participation into a single
// 0-100 ranking value.
//
// Skill is worth up to 100 points: solve rate contributes half, and average
// guesses on solved games contribute the other half (an average of 1 is
// worth 50, an average of 6 is worth 0). A participation multiplier of
// 0.7 + 0.3*(gamesPlayed/maxGames) then rewards consistent play; it is not
// clamped above 1.0, so playing more games than the window capacity (which
// the all-time window and overlapping re-scrapes allow) keeps paying out.
//
// Degenerate input rates 0: no games, no capacity, nothing solved, or an
// average guess count outside 1-6 (a user with zero solved games can't have
// a meaningful average).
func WordleRating(gamesPlayed, maxGames int, solveRate, avgGuesses float64) float64 {
	if maxGames == 0 || gamesPlayed == 0 {
		return 0
	}
	if solveRate == 0 {
		return 0
	}
	if avgGuesses < 1 || avgGuesses > 6 {
		return 0
	}

	solveBonus := solveRate * 50
	guessEfficiency := ((6 - avgGuesses) / 5) * 50
	skillScore := solveBonus + guessEfficiency

	participationMultiplier := 0.7 + 0.3*(float64(gamesPlayed)/float64(maxGames))

	return skillScore * participationMultiplier
}

// BuildLeaderboard rates every known user over the given window and returns
// the entries sorted by rating, best first. Users rating zero are left out.
// The sort is stable, so equal ratings keep the input user order.
func BuildLeaderboard(db *gorm.DB, window Window, users []models.User, now time.Time) ([]LeaderboardEntry, error) {
	cutoff, capacity := windowCutoff(window, now)

	var entries []LeaderboardEntry

	for _, user := range users {
		var scores []models.WordleScore
		if err := db.Where("user_id = ? AND date >= ?", user.ID, cutoff).Find(&scores).Error; err != nil {
			return nil, err
		}

		gamesPlayed := len(scores)
		solvedGames := 0
		guessTotal := 0
		for _, s := range scores {
			if s.Score > 0 {
				solvedGames++
				guessTotal += s.Score
			}
		}

		solveRate := 0.0
		if gamesPlayed > 0 {
			solveRate = float64(solvedGames) / float64(gamesPlayed)
		}
		avgGuesses := 0.0
		if solvedGames > 0 {
			avgGuesses = float64(guessTotal) / float64(solvedGames)
		}

		maxGames := capacity
		if window == WindowAllTime {
			maxGames = gamesPlayed
		}

		rating := WordleRating(gamesPlayed, maxGames, solveRate, avgGuesses)
		if rating <= 0 {
			continue
		}

		entries = append(entries, LeaderboardEntry{
			User:        user,
			Rating:      rating,
			GamesPlayed: gamesPlayed,
			MaxGames:    maxGames,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Rating > entries[j].Rating
	})

	return entries, nil
}
