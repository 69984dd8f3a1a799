package wordleService

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestParseScoreLine_AllScoreCharacters(t *testing.T) {
	tests := []struct {
		char          string
		expectedScore int
	}{
		{"1", 1},
		{"2", 2},
		{"3", 3},
		{"4", 4},
		{"5", 5},
		{"6", 6},
		{"X", 0},
	}

	for _, tt := range tests {
		t.Run(tt.char, func(t *testing.T) {
			line, ok := ParseScoreLine(tt.char + "/6: @a @b")
			if !ok {
				t.Fatalf("expected line to parse")
			}
			if line.Score != tt.expectedScore {
				t.Errorf("expected score %d, got %d", tt.expectedScore, line.Score)
			}
			if len(line.Mentions) != 2 {
				t.Errorf("expected 2 mentions, got %d", len(line.Mentions))
			}
		})
	}
}

func TestParseScoreLine_NonScoreLines(t *testing.T) {
	lines := []string{
		"",
		"Here are yesterday's results",
		"3/5: @a",
		"7/6: @a",
		"random chatter about wordle",
	}

	for _, line := range lines {
		if _, ok := ParseScoreLine(line); ok {
			t.Errorf("expected %q not to parse", line)
		}
	}
}

func TestParseScoreLine_MentionForms(t *testing.T) {
	line, ok := ParseScoreLine("👑 2/6: <@12345> @some_user <@678>")
	if !ok {
		t.Fatalf("expected line to parse")
	}
	if len(line.Mentions) != 3 {
		t.Fatalf("expected 3 mentions, got %d", len(line.Mentions))
	}

	if line.Mentions[0].DiscordID != "12345" || line.Mentions[0].Name != "" {
		t.Errorf("unexpected first mention: %+v", line.Mentions[0])
	}
	if line.Mentions[1].Name != "some_user" || line.Mentions[1].DiscordID != "" {
		t.Errorf("unexpected second mention: %+v", line.Mentions[1])
	}
	if line.Mentions[2].DiscordID != "678" {
		t.Errorf("unexpected third mention: %+v", line.Mentions[2])
	}
}

func TestParseScoreLine_DuplicateMentionsKept(t *testing.T) {
	line, ok := ParseScoreLine("4/6: <@111> <@111>")
	if !ok {
		t.Fatalf("expected line to parse")
	}
	if len(line.Mentions) != 2 {
		t.Errorf("expected duplicate mentions to be kept, got %d", len(line.Mentions))
	}
}

func TestParseScoreLine_NoMentions(t *testing.T) {
	line, ok := ParseScoreLine("5/6: nobody played today")
	if !ok {
		t.Fatalf("expected line to parse")
	}
	if len(line.Mentions) != 0 {
		t.Errorf("expected no mentions, got %d", len(line.Mentions))
	}
}

func TestParseRecap(t *testing.T) {
	content := "Here are yesterday's results\n1/6: <@111>\nsome chatter\nX/6: <@222> @nobody"

	lines := ParseRecap(content)
	if len(lines) != 2 {
		t.Fatalf("expected 2 score lines, got %d", len(lines))
	}
	if lines[0].Score != 1 || len(lines[0].Mentions) != 1 {
		t.Errorf("unexpected first line: %+v", lines[0])
	}
	if lines[1].Score != 0 || len(lines[1].Mentions) != 2 {
		t.Errorf("unexpected second line: %+v", lines[1])
	}
}

func TestIsRecapMessage(t *testing.T) {
	tests := []struct {
		name     string
		message  *discordgo.Message
		expected bool
	}{
		{
			name: "bot recap",
			message: &discordgo.Message{
				Author:  &discordgo.User{Bot: true},
				Content: "Here are yesterday's results\n1/6: <@111>",
			},
			expected: true,
		},
		{
			name: "human posting the marker",
			message: &discordgo.Message{
				Author:  &discordgo.User{Bot: false},
				Content: "Here are yesterday's results",
			},
			expected: false,
		},
		{
			name: "bot without marker",
			message: &discordgo.Message{
				Author:  &discordgo.User{Bot: true},
				Content: "1/6: <@111>",
			},
			expected: false,
		},
		{
			name:     "no author",
			message:  &discordgo.Message{Content: "Here are yesterday's results"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRecapMessage(tt.message); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
