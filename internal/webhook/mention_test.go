package webhook

import (
	"testing"

	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"
)

func self(index, length int32) webhook.UserMentionee {
	return webhook.UserMentionee{Index: index, Length: length, IsSelf: true}
}

func other(index, length int32) webhook.UserMentionee {
	return webhook.UserMentionee{Index: index, Length: length, UserId: "U1234567890"}
}

func mentionOf(ms ...webhook.MentioneeInterface) *webhook.Mention {
	return &webhook.Mention{Mentionees: ms}
}

func TestIsBotMentioned(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mention *webhook.Mention
		want    bool
	}{
		{"bot mentioned", mentionOf(self(0, 4)), true},
		{"other user mentioned", mentionOf(other(0, 5)), false},
		{"bot among others", mentionOf(other(0, 5), self(6, 4)), true},
		{"all mention", mentionOf(webhook.AllMentionee{Index: 0, Length: 4}), false},
		{"no mention", nil, false},
		{"empty mentionees", mentionOf(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			msg := webhook.TextMessageContent{Text: "@Bot hello", Mention: tt.mention}
			if got := isBotMentioned(msg); got != tt.want {
				t.Errorf("isBotMentioned() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRemoveBotMentions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		mention *webhook.Mention
		want    string
	}{
		{"at start", "@Bot who teaches CS101", mentionOf(self(0, 4)), "who teaches CS101"},
		{"in middle", "hey @Bot list professors", mentionOf(self(4, 4)), "hey list professors"},
		{"at end", "list subjects @Bot", mentionOf(self(14, 4)), "list subjects"},
		{"twice", "@Bot help @Bot", mentionOf(self(0, 4), self(10, 4)), "help"},
		{"keeps other users", "@Anna @Bot hello", mentionOf(other(0, 5), self(6, 4)), "@Anna hello"},
		{"no mention object", "hello", nil, "hello"},
		{"no self mention", "@Anna hi", mentionOf(other(0, 5)), "@Anna hi"},
		{"multi-byte text", "@機器人 schedule of Reyes", mentionOf(self(0, 4)), "schedule of Reyes"},
		{"only mention", "@Bot", mentionOf(self(0, 4)), ""},
		{"length past end", "@Bot", mentionOf(self(0, 10)), ""},
		{"negative index", "@Bot hi", mentionOf(self(-2, 6)), "hi"},
		{"zero length", "@Bot hi", mentionOf(self(0, 0)), "@Bot hi"},
		{"index past end", "hi", mentionOf(self(5, 2)), "hi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := removeBotMentions(tt.text, tt.mention); got != tt.want {
				t.Errorf("removeBotMentions(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
