package gameService

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"wordleBot/services/common"
)

// Challenge starts a rock-paper-scissors game from the /challenge command.
// The challenger's object stays hidden in the session store until someone
// accepts and picks their own.
func Challenge(s *discordgo.Session, i *discordgo.InteractionCreate, games *Store) {
	object := strings.ToLower(i.ApplicationCommandData().Options[0].StringValue())
	if !IsValidChoice(object) {
		common.RespondEphemeral(s, i, "Pick rock, paper, or scissors.")
		return
	}

	challengerID := i.Member.User.ID
	session := games.Put(challengerID, object)

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("Rock paper scissors challenge from <@%s>", challengerID),
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.Button{
							Label:    "Accept",
							Style:    discordgo.PrimaryButton,
							CustomID: fmt.Sprintf("accept_button_%s", session.ID),
						},
					},
				},
			},
		},
	})
	if err != nil {
		log.Printf("Error sending challenge: %v", err)
	}
}

// AcceptChallenge handles the Accept button: the responder gets an ephemeral
// select menu to pick their object.
func AcceptChallenge(s *discordgo.Session, i *discordgo.InteractionCreate, games *Store) {
	gameID := strings.TrimPrefix(i.MessageComponentData().CustomID, "accept_button_")

	if _, ok := games.Get(gameID); !ok {
		common.RespondEphemeral(s, i, "That challenge has expired.")
		return
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "What is your object of choice?",
			Flags:   discordgo.MessageFlagsEphemeral,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.SelectMenu{
							MenuType: discordgo.StringSelectMenu,
							CustomID: fmt.Sprintf("select_choice_%s", gameID),
							Options:  GetShuffledOptions(),
						},
					},
				},
			},
		},
	})
	if err != nil {
		log.Printf("Error sending choice menu: %v", err)
	}
}

// ResolveChoice finishes the game once the responder picks, posting the
// result and removing the session.
func ResolveChoice(s *discordgo.Session, i *discordgo.InteractionCreate, games *Store) {
	gameID := strings.TrimPrefix(i.MessageComponentData().CustomID, "select_choice_")

	session, ok := games.Get(gameID)
	if !ok {
		common.RespondEphemeral(s, i, "That challenge has expired.")
		return
	}

	responderID := i.Member.User.ID
	responderObject := i.MessageComponentData().Values[0]

	games.Delete(gameID)

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: GetResult(session, responderID, responderObject),
		},
	})
	if err != nil {
		log.Printf("Error sending result: %v", err)
	}
}
