package wordleService

import (
	"regexp"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// recapMarker is the phrase the recap bot puts in its daily results message.
// It has to match the historical messages exactly.
const recapMarker = "Here are yesterday's results"

var (
	scoreRegex = regexp.MustCompile(`(?:👑)?\s*([1-6X])/6:\s*(.*)`)
	userRegex  = regexp.MustCompile(`(?:<@(\d+)>|@([a-zA-Z0-9_]+))`)
)

// Mention is a single user reference pulled out of a recap line. Exactly one
// of DiscordID (an explicit <@123> mention) or Name (a bare @name) is set.
type Mention struct {
	DiscordID string
	Name      string
}

// ScoreLine is one parsed recap line: the score and every mention on it, in
// order. Duplicate mentions are kept; each one gets its own attribution.
type ScoreLine struct {
	Score    int
	Mentions []Mention
}

// IsRecapMessage reports whether a message is a bot-authored daily recap.
func IsRecapMessage(m *discordgo.Message) bool {
	return m.Author != nil && m.Author.Bot && strings.Contains(m.Content, recapMarker)
}

// ParseScoreLine matches a single line against the recap score grammar:
// optional crown glyph, a score character 1-6 or X, "/6:", then the mentioned
// users. X maps to score 0 (failed puzzle). Lines that don't match are not an
// error, the second return is just false.
func ParseScoreLine(line string) (ScoreLine, bool) {
	scoreMatch := scoreRegex.FindStringSubmatch(line)
	if scoreMatch == nil {
		return ScoreLine{}, false
	}

	score := 0
	if scoreMatch[1] != "X" {
		score = int(scoreMatch[1][0] - '0')
	}

	parsed := ScoreLine{Score: score}
	for _, userMatch := range userRegex.FindAllStringSubmatch(scoreMatch[2], -1) {
		parsed.Mentions = append(parsed.Mentions, Mention{
			DiscordID: userMatch[1],
			Name:      userMatch[2],
		})
	}

	return parsed, true
}

// ParseRecap splits a recap message body into lines and parses each one,
// skipping everything that isn't a score line.
func ParseRecap(content string) []ScoreLine {
	var lines []ScoreLine
	for _, line := range strings.Split(content, "\n") {
		if parsed, ok := ParseScoreLine(line); ok {
			lines = append(lines, parsed)
		}
	}
	return lines
}
