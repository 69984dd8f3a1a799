package scheduler_jobs

import (
	"context"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"wordleBot/models"
	"wordleBot/services/wordleService"
)

// CheckDailyRecap scrapes the last day of recap messages for every guild
// with a configured Wordle channel. Runs each morning after the recap bot
// has posted.
func CheckDailyRecap(s *discordgo.Session, db *gorm.DB) error {
	var guilds []models.Guild
	if err := db.Where("wordle_channel_id <> ''").Find(&guilds).Error; err != nil {
		return err
	}

	until := time.Now().Add(-24 * time.Hour)

	for _, guild := range guilds {
		count, err := wordleService.ScrapeScores(context.Background(), s, db, guild.WordleChannelID, until)
		if err != nil {
			log.Printf("Error scraping daily recap for guild %s: %v", guild.GuildID, err)
			continue
		}
		log.Printf("Daily recap scrape for guild %s saved %d scores", guild.GuildID, count)
	}

	return nil
}
