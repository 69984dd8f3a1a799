package wordleService

import (
	"errors"

	"gorm.io/gorm"

	"wordleBot/models"
)

// FindUserByMentionOrName resolves a recap mention to a stored user. An
// explicit ID mention wins when present; otherwise the free-text name is
// matched against global name, username, and guild nickname in that order.
// A user that isn't found is not an error, the result is just nil.
func FindUserByMentionOrName(db *gorm.DB, discordID string, name string) (*models.User, error) {
	var user models.User

	if discordID != "" {
		err := db.Where("discord_id = ?", discordID).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return &user, nil
	}

	err := db.Where("global_name = ? OR username = ? OR guild_name = ?", name, name, name).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
