package intent

import "strings"

// Emotion labels in detection priority order.
const (
	EmotionLoving   = "loving"
	EmotionGrateful = "grateful"
	EmotionSad      = "sad"
	EmotionAngry    = "angry"
	EmotionTired    = "tired"
	EmotionStressed = "stressed"
	EmotionBored    = "bored"
	EmotionExcited  = "excited"
	EmotionHappy    = "happy"
	EmotionConfused = "confused"
	EmotionNeedy    = "needy"
	EmotionContent  = "content"
	EmotionNeutral  = "neutral"
)

// DefaultSubjectivity is reported for every detected emotion.
const DefaultSubjectivity = 0.5

// Emotion is the detected mood of a message.
type Emotion struct {
	Label        string  `json:"emotion"`
	Emoji        string  `json:"emoji"`
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

// IsNeutral reports whether the emotion calls for no empathetic framing.
func (e Emotion) IsNeutral() bool {
	return e.Label == EmotionNeutral || e.Label == EmotionContent
}

type emotionRule struct {
	emotion  Emotion
	keywords []string
}

func newEmotion(label, emoji string, polarity float64) Emotion {
	return Emotion{Label: label, Emoji: emoji, Polarity: polarity, Subjectivity: DefaultSubjectivity}
}

// Neutral is returned when no keyword matches.
var Neutral = newEmotion(EmotionNeutral, "😐", 0)

// Specific moods come first. "i love you" resolves to loving, "thanks, great" to grateful.
var emotionRules = []emotionRule{
	{newEmotion(EmotionLoving, "💕", 0.9), []string{"love", "loving", "adore", "i love you", "love you"}},
	{newEmotion(EmotionGrateful, "🙏", 0.7), []string{"thanks", "thank you", "appreciate", "grateful", "tysm", "thx", "ty"}},
	{newEmotion(EmotionSad, "😢", -0.6), []string{"sad", "depressed", "upset", "crying", "unhappy", "miserable", "down"}},
	{newEmotion(EmotionAngry, "😠", -0.5), []string{"angry", "mad", "furious", "annoyed", "irritated", "pissed", "frustrated"}},
	{newEmotion(EmotionTired, "😴", -0.3), []string{"tired", "exhausted", "sleepy", "fatigue", "burned out", "drained", "weary"}},
	{newEmotion(EmotionStressed, "😰", -0.4), []string{"stressed", "stressed out", "anxious", "worried", "nervous", "overwhelmed", "panic"}},
	{newEmotion(EmotionBored, "😑", -0.2), []string{"bored", "boring", "dull", "meh", "uninteresting"}},
	{newEmotion(EmotionExcited, "🤩", 0.8), []string{"excited", "awesome", "amazing", "fantastic", "wonderful", "yay", "woohoo", "cool"}},
	{newEmotion(EmotionHappy, "😊", 0.6), []string{"happy", "glad", "joyful", "cheerful", "delighted", "pleased", "great"}},
	{newEmotion(EmotionConfused, "😕", -0.3), []string{"confused", "lost", "don't understand", "dont understand", "unclear", "puzzled", "what"}},
	{newEmotion(EmotionNeedy, "🆘", -0.2), []string{"help", "please", "need", "urgent", "asap", "emergency"}},
	{newEmotion(EmotionContent, "🙂", 0.3), []string{"fine", "okay", "alright", "ok", "good"}},
}

// ClassifyEmotion returns the first emotion with a keyword contained in text,
// or Neutral.
func ClassifyEmotion(text string) Emotion {
	lower := strings.ToLower(text)
	for _, r := range emotionRules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.emotion
			}
		}
	}
	return Neutral
}
