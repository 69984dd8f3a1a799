package guildService

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"wordleBot/models"
	"wordleBot/services/common"
)

func GetGuildInfo(s *discordgo.Session, db *gorm.DB, guildID string) (*models.Guild, error) {
	var guild models.Guild
	guildResult := db.Where("guild_id = ?", guildID).First(&guild)

	if guildResult.RowsAffected == 0 {
		guildInfo, err := s.Guild(guildID)
		if err != nil {
			return nil, err
		}
		newGuild := &models.Guild{GuildID: guildID, GuildName: guildInfo.Name}
		newGuildResult := db.Create(newGuild)
		if newGuildResult.Error != nil {
			return nil, newGuildResult.Error
		}
		guild = *newGuild
	}

	return &guild, nil
}

// SetWordleChannel marks the current channel as the recap channel the daily
// scheduled scrape reads from.
func SetWordleChannel(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	if !common.IsAdmin(s, i) {
		common.RespondEphemeral(s, i, "You are not authorized to use this command.")
		return
	}

	guild, err := GetGuildInfo(s, db, i.GuildID)
	if err != nil {
		common.SendError(s, i, err, db)
		return
	}

	guild.WordleChannelID = i.ChannelID
	if err := db.Save(guild).Error; err != nil {
		common.SendError(s, i, err, db)
		return
	}

	common.RespondEphemeral(s, i, fmt.Sprintf("Wordle recaps will now be scraped from <#%s> every morning.", i.ChannelID))
}
