package services

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"wordleBot/services/gameService"
	"wordleBot/services/guildService"
)

func HandleSlashCommand(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB, games *gameService.Store) {
	switch i.ApplicationCommandData().Name {
	case "wordle-leaderboard":
		ShowLeaderboard(s, i, db)
	case "scrape-scores":
		ScrapeScores(s, i, db)
	case "scan-users":
		ScanUsers(s, i, db)
	case "my-stats":
		ShowStats(s, i, db)
	case "set-wordle-channel":
		guildService.SetWordleChannel(s, i, db)
	case "challenge":
		gameService.Challenge(s, i, games)
	}
}

func HandleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB, games *gameService.Store) {
	componentID := i.MessageComponentData().CustomID

	switch {
	case strings.HasPrefix(componentID, "accept_button_"):
		gameService.AcceptChallenge(s, i, games)
	case strings.HasPrefix(componentID, "select_choice_"):
		gameService.ResolveChoice(s, i, games)
	}
}

func RegisterCommands(s *discordgo.Session) error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "wordle-leaderboard",
			Description: "Display the selected Wordle leaderboard",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "range",
					Description: "Select the leaderboard range",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Weekly", Value: "weekly"},
						{Name: "Monthly", Value: "monthly"},
						{Name: "All Time", Value: "alltime"},
					},
				},
			},
		},
		{
			Name:        "scrape-scores",
			Description: "Scrape the channel for Wordle scores",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "range",
					Description: "How far back to scrape. Defaults to the beginning of Wordle.",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "All Messages", Value: "default"},
						{Name: "Last 7 Days", Value: "week"},
						{Name: "Last Month", Value: "month"},
					},
				},
			},
		},
		{
			Name:        "scan-users",
			Description: "Scan and save all users in the guild",
		},
		{
			Name:        "my-stats",
			Description: "Display your Wordle statistics",
		},
		{
			Name:        "set-wordle-channel",
			Description: "🛡 Sets the current channel as the Wordle recap channel - ADMIN ONLY",
		},
		{
			Name:        "challenge",
			Description: "Challenge to a match of rock paper scissors",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "object",
					Description: "Pick your object",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Rock", Value: "rock"},
						{Name: "Paper", Value: "paper"},
						{Name: "Scissors", Value: "scissors"},
					},
				},
			},
		},
	}

	registeredCommands := make([]*discordgo.ApplicationCommand, len(commands))

	for i, cmd := range commands {
		rcmd, err := s.ApplicationCommandCreate(s.State.User.ID, "", cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%v' command: %v", cmd.Name, err)
		}
		registeredCommands[i] = rcmd
	}

	return nil
}
