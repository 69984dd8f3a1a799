package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"wordleBot/models"
	"wordleBot/services/common"
	"wordleBot/services/memberService"
	"wordleBot/services/wordleService"
)

// wordleEpoch is how far back a full channel scrape reaches - the day the
// recap bot started posting results.
var wordleEpoch = time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)

func ShowLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	window := wordleService.Window(i.ApplicationCommandData().Options[0].StringValue())

	var users []models.User
	if err := db.Find(&users).Error; err != nil {
		common.SendError(s, i, err, db)
		return
	}

	entries, err := wordleService.BuildLeaderboard(db, window, users, time.Now())
	if err != nil {
		common.SendError(s, i, err, db)
		return
	}

	if len(entries) == 0 {
		common.RespondEphemeral(s, i, "No users found on the leaderboard.")
		return
	}

	description := ""
	for idx, entry := range entries {
		line := fmt.Sprintf("%d. <@%s>: %.2f", idx+1, entry.User.DiscordID, entry.Rating)
		if window == wordleService.WindowAllTime {
			line += fmt.Sprintf(" — Played %d games", entry.GamesPlayed)
		} else {
			line += fmt.Sprintf(" — Played %d/%d games", entry.GamesPlayed, entry.MaxGames)
		}
		description += line + "\n"
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🏆 Wordle Leaderboard (%s)", window),
		Description: description,
		Color:       0x57f287,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Requested by %s", common.GetUsernameFromUser(i.Member.User)),
		},
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
	if err != nil {
		log.Printf("Error sending leaderboard: %v", err)
	}
}

// ScrapeScores handles /scrape-scores: a deferred backward scan of the
// current channel down to the selected cutoff.
func ScrapeScores(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	scanRange := i.ApplicationCommandData().Options[0].StringValue()

	until := wordleEpoch
	switch scanRange {
	case "week":
		until = time.Now().Add(-7 * 24 * time.Hour)
	case "month":
		until = time.Now().Add(-30 * 24 * time.Hour)
	}

	if err := common.DeferResponse(s, i); err != nil {
		log.Printf("Error deferring response: %v", err)
		return
	}

	count, err := wordleService.ScrapeScores(context.Background(), s, db, i.ChannelID, until)
	if err != nil {
		log.Printf("Error scraping scores: %v", err)
		common.EditDeferred(s, i, "Sorry, something went wrong while scraping scores.")
		return
	}

	common.EditDeferred(s, i, fmt.Sprintf("Scraping complete. Found and saved %d scores.", count))
}

// ScanUsers handles /scan-users: sync the guild's member directory so recap
// mentions have someone to resolve against.
func ScanUsers(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	if err := common.DeferResponse(s, i); err != nil {
		log.Printf("Error deferring response: %v", err)
		return
	}

	count, err := memberService.ScanMembers(s, db, i.GuildID)
	if err != nil {
		log.Printf("Error scanning users: %v", err)
		common.EditDeferred(s, i, "Sorry, something went wrong while scanning users.")
		return
	}

	common.EditDeferred(s, i, fmt.Sprintf("Successfully scanned and saved %d users.", count))
}

func ShowStats(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	user, err := wordleService.FindUserByMentionOrName(db, i.Member.User.ID, "")
	if err != nil {
		common.SendError(s, i, err, db)
		return
	}
	if user == nil {
		common.RespondEphemeral(s, i, "You aren't in the Wordle database yet. Run /scan-users first.")
		return
	}

	stats, err := wordleService.GetUserStats(db, user.ID)
	if err != nil {
		common.SendError(s, i, err, db)
		return
	}

	content := fmt.Sprintf(
		"Your Wordle stats:\n- Games Played: %d\n- Average Score: %.2f\n- Best Score: %d\n- Worst Score: %d",
		stats.GamesPlayed, stats.AverageScore, stats.BestScore, stats.WorstScore,
	)
	common.RespondEphemeral(s, i, content)
}
