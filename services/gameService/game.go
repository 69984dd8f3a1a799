package gameService

import (
	"fmt"
	"math/rand"

	"github.com/bwmarrin/discordgo"
)

var rpsChoices = []string{"rock", "paper", "scissors"}

// beats maps each object to the object it defeats.
var beats = map[string]string{
	"rock":     "scissors",
	"paper":    "rock",
	"scissors": "paper",
}

func IsValidChoice(object string) bool {
	_, ok := beats[object]
	return ok
}

// GetResult renders the outcome of a finished challenge.
func GetResult(session Session, responderID, responderObject string) string {
	if session.Object == responderObject {
		return fmt.Sprintf("<@%s> and <@%s> both picked %s. It's a draw!", session.ChallengerID, responderID, session.Object)
	}
	if beats[session.Object] == responderObject {
		return fmt.Sprintf("<@%s>'s %s beats <@%s>'s %s!", session.ChallengerID, session.Object, responderID, responderObject)
	}
	return fmt.Sprintf("<@%s>'s %s beats <@%s>'s %s!", responderID, responderObject, session.ChallengerID, session.Object)
}

// GetShuffledOptions builds the responder's select menu in random order so
// the layout doesn't hint at the challenger's pick.
func GetShuffledOptions() []discordgo.SelectMenuOption {
	shuffled := make([]string, len(rpsChoices))
	copy(shuffled, rpsChoices)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	options := make([]discordgo.SelectMenuOption, 0, len(shuffled))
	for _, choice := range shuffled {
		options = append(options, discordgo.SelectMenuOption{
			Label: choice,
			Value: choice,
		})
	}
	return options
}
