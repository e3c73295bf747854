// Package lineutil builds LINE messages from chat replies while staying
// within the Messaging API limits.
package lineutil

import (
	"strings"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"

	"github.com/findmyprof/findmyprof-chatbot-go/internal/stringutil"
)

// NewTextMessage creates a text message, truncating text to
// MaxTextMessageLength runes.
func NewTextMessage(text string) *messaging_api.TextMessage {
	return &messaging_api.TextMessage{
		Text: stringutil.TruncateRunes(text, MaxTextMessageLength, "..."),
	}
}

// NewImageMessage creates an image message. LINE only accepts HTTPS URLs,
// so ok is false for anything else.
func NewImageMessage(url string) (msg *messaging_api.ImageMessage, ok bool) {
	if !strings.HasPrefix(url, "https://") || len(url) > MaxImageURLLength {
		return nil, false
	}
	return &messaging_api.ImageMessage{
		OriginalContentUrl: url,
		PreviewImageUrl:    url,
	}, true
}

// NewMessageAction creates an action that sends text when tapped.
// The label is truncated to MaxQuickReplyLabelLen runes.
func NewMessageAction(label, text string) *messaging_api.MessageAction {
	return &messaging_api.MessageAction{
		Label: stringutil.TruncateRunes(label, MaxQuickReplyLabelLen, "…"),
		Text:  stringutil.TruncateRunes(text, MaxMessageActionText, ""),
	}
}

// NewQuickReply turns chat suggestions into quick reply buttons, each
// sending the suggestion text back. Blank and repeated suggestions are
// skipped and at most MaxQuickReplyItems are kept. It returns nil when
// nothing is left.
func NewQuickReply(suggestions []string) *messaging_api.QuickReply {
	items := make([]messaging_api.QuickReplyItem, 0, min(len(suggestions), MaxQuickReplyItems))
	seen := make(map[string]struct{}, len(suggestions))
	for _, s := range suggestions {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		items = append(items, messaging_api.QuickReplyItem{Action: NewMessageAction(s, s)})
		if len(items) == MaxQuickReplyItems {
			break
		}
	}
	if len(items) == 0 {
		return nil
	}
	return &messaging_api.QuickReply{Items: items}
}

// PlainText strips the **bold** markers used by chat replies; LINE text
// messages render them literally.
func PlainText(s string) string {
	return strings.ReplaceAll(s, "**", "")
}
