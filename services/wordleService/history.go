package wordleService

import (
	"context"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/time/rate"
)

const (
	pageSize  = 100
	pageDelay = 500 * time.Millisecond
)

// MessageSource is the slice of *discordgo.Session the history scan needs,
// so tests can script page sequences.
type MessageSource interface {
	ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string, options ...discordgo.RequestOption) ([]*discordgo.Message, error)
}

// FetchMessagesUntil walks a channel's history newest-first in pages of 100,
// collecting every message timestamped at or after until. The traversal stops
// at the first message older than until (history is time-ordered descending,
// so nothing newer can follow) or when the channel start is reached. Page
// requests are spaced at least 500ms apart to stay under Discord's rate
// limit. On a failed page request the messages collected so far are returned
// alongside the error.
func FetchMessagesUntil(ctx context.Context, src MessageSource, channelID string, until time.Time) ([]*discordgo.Message, error) {
	var allMessages []*discordgo.Message
	beforeID := ""
	limiter := rate.NewLimiter(rate.Every(pageDelay), 1)

	for {
		if err := limiter.Wait(ctx); err != nil {
			return allMessages, err
		}

		messages, err := src.ChannelMessages(channelID, pageSize, beforeID, "", "")
		if err != nil {
			return allMessages, err
		}

		if len(messages) == 0 {
			return allMessages, nil
		}

		for _, message := range messages {
			if message.Timestamp.Before(until) {
				return allMessages, nil
			}
			allMessages = append(allMessages, message)
		}

		beforeID = messages[len(messages)-1].ID
		log.Printf("Next batch, total messages so far: %d", len(allMessages))
	}
}
