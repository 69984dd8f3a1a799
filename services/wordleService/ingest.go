package wordleService

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"gorm.io/gorm"

	"wordleBot/models"
)

// ScrapeScores scans channel history back to until, parses every recap
// message it finds and writes one WordleScore row per resolved mention. All
// writes fan out concurrently and are joined before returning; the count
// reflects only rows that were actually saved. A mention that doesn't
// resolve to a known user is dropped silently, and a failed write is logged
// without aborting its siblings. Only a failed history fetch aborts the run,
// and rows already written stay written.
func ScrapeScores(ctx context.Context, src MessageSource, db *gorm.DB, channelID string, until time.Time) (int, error) {
	messages, err := FetchMessagesUntil(ctx, src, channelID, until)
	if err != nil {
		return 0, err
	}

	log.Printf("Fetched %d messages, processing...", len(messages))

	var wg sync.WaitGroup
	var saved int64

	for _, message := range messages {
		if !IsRecapMessage(message) {
			continue
		}

		messageDate := message.Timestamp

		for _, line := range ParseRecap(message.Content) {
			for _, mention := range line.Mentions {
				wg.Add(1)
				go func(score int, mention Mention, date time.Time) {
					defer wg.Done()

					user, err := FindUserByMentionOrName(db, mention.DiscordID, mention.Name)
					if err != nil {
						log.Printf("Error resolving mention (id=%q, name=%q): %v", mention.DiscordID, mention.Name, err)
						return
					}
					if user == nil {
						return
					}

					record := models.WordleScore{UserID: user.ID, Score: score, Date: date}
					if err := db.Create(&record).Error; err != nil {
						log.Printf("Error saving score for user %d: %v", user.ID, err)
						return
					}

					atomic.AddInt64(&saved, 1)
				}(line.Score, mention, messageDate)
			}
		}
	}

	wg.Wait()

	return int(saved), nil
}
