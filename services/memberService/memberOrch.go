package memberService

import (
	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"wordleBot/models"
)

const memberPageSize = 1000

// MemberSource is the slice of *discordgo.Session the member sync needs.
type MemberSource interface {
	GuildMembers(guildID string, after string, limit int, options ...discordgo.RequestOption) ([]*discordgo.Member, error)
}

// ScanMembers pages through the guild's member list and upserts every
// non-bot member into the users table, keyed on Discord ID. Recap mentions
// resolve against the username, global name, and guild nickname stored here.
// Returns the number of members saved.
func ScanMembers(src MemberSource, db *gorm.DB, guildID string) (int, error) {
	saved := 0
	after := ""

	for {
		members, err := src.GuildMembers(guildID, after, memberPageSize)
		if err != nil {
			return saved, err
		}
		if len(members) == 0 {
			return saved, nil
		}

		for _, member := range members {
			if member.User == nil || member.User.Bot {
				continue
			}

			guildName := member.Nick
			if guildName == "" {
				guildName = member.User.Username
			}
			globalName := member.User.GlobalName
			if globalName == "" {
				globalName = member.User.Username
			}

			var user models.User
			result := db.Where(models.User{DiscordID: member.User.ID}).FirstOrCreate(&user)
			if result.Error != nil {
				return saved, result.Error
			}

			user.Username = member.User.Username
			user.GlobalName = globalName
			user.GuildName = guildName
			if err := db.Save(&user).Error; err != nil {
				return saved, err
			}

			saved++
		}

		if len(members) < memberPageSize {
			return saved, nil
		}
		after = members[len(members)-1].User.ID
	}
}
