package bot

import (
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/findmyprof/findmyprof-chatbot-go/internal/intent"
)

type conversationPool struct {
	texts       []string
	suggestions []string
}

var conversationPools = map[string]conversationPool{
	intent.HowAreYou: {
		texts: []string{
			"I'm doing great, thanks for asking! 😊 I'm here and ready to help you find professors and schedules. How are YOU doing?",
			"I'm functioning perfectly! 🤖💚 More importantly, how can I help you today?",
			"I'm excellent! 😄 Always happy to assist students like you. What do you need help with?",
			"Doing wonderful! ✨ Thanks for asking! Now, what can I help you discover today?",
		},
		suggestions: []string{"I'm doing great!", sugFindAProfessor, "I need help"},
	},
	intent.FeelingGood: {
		texts: []string{
			"That's wonderful to hear! 😊 Your positive energy is contagious! Now, how can I help make your day even better?",
			"So happy for you! 🎉 Love to see you in such great spirits! What can I assist you with?",
			"Awesome! 🌟 Keep that amazing energy! Need help finding a professor or schedule?",
			"That's fantastic! 💫 Your happiness makes me happy too! What brings you here today?",
		},
		suggestions: []string{"Find my professor", "View schedules", "Tell me a joke"},
	},
	intent.FeelingBad: {
		texts: []string{
			"I'm sorry you're feeling down 😢. Remember, tough times don't last, but tough people do! 💪 How can I help lighten your load?",
			"Aw, I wish I could give you a hug! 🤗 Let me help you with what you need - sometimes getting things done helps us feel better.",
			"I hear you 💙. It's okay to have difficult days. Let me assist you so at least one thing goes smoothly today. What do you need?",
			"Sending virtual support your way! 🌈 You've got this! Now, how can I help make things easier for you?",
		},
		suggestions: []string{"Find my professor", "Need motivation", "Tell me something nice"},
	},
	intent.FeelingTired: {
		texts: []string{
			"I can tell you're exhausted 😴. Remember to take breaks and rest! Meanwhile, let me help you find what you need quickly so you can relax.",
			"Hang in there! ☕ Maybe grab some coffee and let me do the searching for you. What are you looking for?",
			"Rest is important! 💤 Let me handle the heavy lifting. Tell me what you need and I'll find it fast!",
			"You deserve a break! 🛋️ Let's get your questions answered quickly so you can rest. What do you need help with?",
		},
		suggestions: []string{sugFindAProfessor, "Quick search", "Study tips"},
	},
	intent.FeelingConfused: {
		texts: []string{
			"Don't worry, confusion is just a step before clarity! 🤔➡️💡 Let me help clear things up. What's puzzling you?",
			"I'm here to help you figure it out! 🧩 No question is too simple. What do you need explained?",
			"Let's untangle this together! 🎯 Take it one step at a time. What are you confused about?",
			"Confusion is totally normal! 😊 I'll break things down for you. What can I clarify?",
		},
		suggestions: []string{"Help me understand", "What can you do?", "Show me examples"},
	},
	intent.FeelingBored: {
		texts: []string{
			"Bored, huh? 😏 Let's fix that! How about exploring some interesting subjects or professors? What catches your interest?",
			"Perfect timing! Let's discover something new together! 🔍✨ What topic intrigues you?",
			"Boredom is just creativity waiting to happen! 🎨 Let me help you find something fascinating. Any interests?",
			"Let's turn that boredom into curiosity! 🚀 Browse professors, subjects, or ask me anything!",
		},
		suggestions: []string{"Browse professors", "Tell me a joke", "Surprise me"},
	},
	intent.ComplimentBot: {
		texts: []string{
			"Aww, thank you so much! 🥰 You're pretty awesome yourself! Now, how can this amazing bot help you? 😄",
			"You're making me blush! 😊💕 I really appreciate that! What can I do for you today?",
			"That's so kind of you! 🌟 You just made my day! Now let's make YOUR day better - what do you need?",
			"Thank you! 😄 Compliments like yours are why I love my job! How can I assist you?",
		},
		suggestions: []string{sugFindAProfessor, "You're welcome!", "Search subjects"},
	},
	intent.LoveDeclaration: {
		texts: []string{
			"Aww! 💕 While I'm flattered, I'm just an AI, but I love helping you too! 🤖💖 What can I do for you today?",
			"You're sweet! 🥰 I care about helping you succeed! Now, what do you need assistance with?",
			"Love you too, in my own AI way! 😊💙 Let's channel that positive energy - what are you looking for?",
			"That's adorable! 💖 I'm here for you anytime! Now, how can I help you today?",
		},
		suggestions: []string{"Help me find something", "Tell me a joke", "You're awesome"},
	},
	intent.Joke: {
		texts: []string{
			"Why did the professor bring a ladder to class? 🪜\nTo reach the high-level concepts! 😄",
			"Why don't scientists trust atoms? ⚛️\nBecause they make up everything! 😂",
			"What did the student say to the professor? 📚\n\"I'm in a parallel class!\" 😅",
			"Why did the student eat their homework? 🍰\nThe teacher said it was a piece of cake! 😂",
			"What's a professor's favorite type of music? 🎵\nClass-ical! 😄",
			"Why did the math book look sad? 📖\nBecause it had too many problems! 😆",
			"What do you call a professor who never farts in public? 💨\nA private tutor! 🤣",
		},
		suggestions: []string{"Another joke!", sugFindAProfessor, "That was funny!"},
	},
	intent.Age: {
		texts: []string{
			"I'm timeless! ⏳✨ Created to help students like you, and I get better every day! Age is just a number anyway! 😄",
			"I'm as old as the database I'm connected to! 📊 But in AI years, I'm pretty young and energetic! 🤖",
			"Let's just say I'm young enough to understand memes and old enough to know my stuff! 😎 How can I help you?",
		},
		suggestions: []string{"What can you do?", sugFindAProfessor, "Tell me more"},
	},
	intent.Name: {
		texts: []string{
			"I'm FindMyProf AI! 🤖 Your friendly assistant for all things professors, schedules, and subjects! What's your name?",
			"You can call me FindMyProf! 😊 I'm here to make your academic life easier! How can I help you today?",
			"I'm your AI assistant for this platform! 🌟 I help students find professors, schedules, and more! What shall I call you?",
		},
		suggestions: []string{"What can you do?", sugFindAProfessor, "Help me"},
	},
	intent.Capability: {
		texts: []string{
			"I'm quite capable! 💪 Here's what I can do:\n\n" +
				"👨‍🏫 Find professors by name\n" +
				"📚 Search by subject\n" +
				"📅 Show schedules\n" +
				"📍 Locate classrooms\n" +
				"📧 Provide contact info\n" +
				"📎 Find course materials\n" +
				"💬 Chat naturally with you!\n\n" +
				"Plus, I understand emotions and try to respond with empathy! 💖",
		},
		suggestions: []string{sugFindAProfessor, "Search subjects", "That's cool!"},
	},
	intent.Motivation: {
		texts: []string{
			"You've got this! 💪 Every expert was once a beginner. Keep pushing forward! 🌟 Now, what can I help you accomplish today?",
			"Believe in yourself! 🚀 You're capable of amazing things! Let's tackle your questions one at a time. What do you need?",
			"Remember: The only way to do great work is to love what you do! ❤️ You're on the right path! How can I help you today?",
			"Success is not final, failure is not fatal! 💫 Keep going, you're doing great! What are you working on?",
			"You're stronger than you think! 🦾 Every day is a chance to grow. Let me help you with what you need! 🌱",
			"The future belongs to those who believe in the beauty of their dreams! ✨ Now, what can I do for you?",
		},
		suggestions: []string{"Thank you!", "Find my professor", "I needed that"},
	},
	intent.StudyTips: {
		texts: []string{
			"Here are some study tips! 📚✨\n\n" +
				"1. 📅 Use the Pomodoro Technique (25 min study, 5 min break)\n" +
				"2. ✍️ Take handwritten notes\n" +
				"3. 🔄 Review within 24 hours\n" +
				"4. 👥 Study in groups\n" +
				"5. 🎯 Set specific goals\n\n" +
				"Now, need help finding professor info or schedules?",
			"Study smarter, not harder! 🧠💡\n\n" +
				"✅ Space out your studying\n" +
				"✅ Test yourself regularly\n" +
				"✅ Teach someone else\n" +
				"✅ Get enough sleep\n" +
				"✅ Stay organized\n\n" +
				"What else can I help with?",
			"Pro study tips! 📖🌟\n\n" +
				"• Find a quiet study spot 🤫\n" +
				"• Eliminate distractions 📵\n" +
				"• Stay hydrated 💧\n" +
				"• Take regular breaks 🌿\n" +
				"• Ask questions! (like right now!) 😊\n\n" +
				"How can I assist you today?",
		},
		suggestions: []string{"Thanks for the tips!", "Find my professor", "More tips"},
	},
}

// Conversation answers small-talk intents with a randomly chosen canned text.
// It is safe for concurrent use.
type Conversation struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewConversation creates a Conversation drawing from rng.
// A nil rng uses a randomly seeded source.
func NewConversation(rng *rand.Rand) *Conversation {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Conversation{rng: rng}
}

// Generate picks a reply for a conversational intent label.
// It returns false for labels without a pool.
func (c *Conversation) Generate(label string) (Reply, bool) {
	pool, ok := conversationPools[label]
	if !ok {
		return Reply{}, false
	}

	c.mu.Lock()
	i := c.rng.IntN(len(pool.texts))
	c.mu.Unlock()

	return Reply{
		Text:        pool.texts[i],
		Suggestions: slices.Clone(pool.suggestions),
	}, true
}

// Candidates returns every text Generate may produce for label.
func (c *Conversation) Candidates(label string) []string {
	return slices.Clone(conversationPools[label].texts)
}
