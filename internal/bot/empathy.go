package bot

import (
	"fmt"

	"github.com/findmyprof/findmyprof-chatbot-go/internal/intent"
)

var empathyOpenings = map[string]string{
	intent.EmotionSad:      "I can sense you're feeling down %s. I'm here to help make things easier!\n\n",
	intent.EmotionAngry:    "I understand you're frustrated %s. Let's work through this together!\n\n",
	intent.EmotionTired:    "You sound exhausted %s. Let me help you quickly so you can rest!\n\n",
	intent.EmotionStressed: "Take a deep breath %s. I'll help you sort this out!\n\n",
	intent.EmotionConfused: "No worries, let me clarify things for you %s!\n\n",
	intent.EmotionBored:    "Let's make this interesting %s!\n\n",
	intent.EmotionGrateful: "You're very welcome! %s Glad I could help!\n\n",
	intent.EmotionNeedy:    "Don't worry, I'm here to help! %s\n\n",
	intent.EmotionExcited:  "Love your energy! %s\n\n",
	intent.EmotionHappy:    "Love your energy! %s\n\n",
	intent.EmotionLoving:   "Love your energy! %s\n\n",
	intent.EmotionContent:  "Great! %s\n\n",
}

// Decorate prefixes text with an opening that acknowledges emotion.
// Emotions without an opening, neutral included, leave text unchanged.
func Decorate(text string, emotion intent.Emotion) string {
	opening, ok := empathyOpenings[emotion.Label]
	if !ok {
		return text
	}
	return fmt.Sprintf(opening, emotion.Emoji) + text
}
