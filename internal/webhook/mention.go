package webhook

import (
	"slices"

	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"

	"github.com/findmyprof/findmyprof-chatbot-go/internal/stringutil"
)

// isBotMentioned reports whether any mentionee of the message is the bot.
func isBotMentioned(textMsg webhook.TextMessageContent) bool {
	return len(selfMentions(textMsg.Mention)) > 0
}

type span struct {
	index, length int
}

func selfMentions(mention *webhook.Mention) []span {
	if mention == nil {
		return nil
	}
	var spans []span
	for _, m := range mention.Mentionees {
		if u, ok := m.(webhook.UserMentionee); ok && u.IsSelf {
			spans = append(spans, span{int(u.Index), int(u.Length)})
		}
	}
	return spans
}

// removeBotMentions cuts every bot mention out of text and collapses the
// remaining whitespace. LINE mention offsets count runes.
func removeBotMentions(text string, mention *webhook.Mention) string {
	spans := selfMentions(mention)
	if len(spans) == 0 {
		return text
	}

	// Back to front so earlier offsets stay valid.
	slices.SortFunc(spans, func(a, b span) int { return b.index - a.index })

	runes := []rune(text)
	for _, s := range spans {
		start := max(s.index, 0)
		end := min(s.index+s.length, len(runes))
		if start >= end {
			continue
		}
		runes = append(runes[:start], runes[end:]...)
	}
	return stringutil.CollapseWhitespace(string(runes))
}
