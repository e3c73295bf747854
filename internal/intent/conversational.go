package intent

// Conversational intents. These take priority over every directory intent.
const (
	HowAreYou       = "how_are_you"
	FeelingGood     = "feeling_good"
	FeelingBad      = "feeling_bad"
	FeelingTired    = "feeling_tired"
	FeelingConfused = "feeling_confused"
	FeelingBored    = "feeling_bored"
	ComplimentBot   = "compliment_bot"
	LoveDeclaration = "love_declaration"
	Joke            = "joke"
	Age             = "age"
	Name            = "name"
	Capability      = "capability"
	Motivation      = "motivation"
	StudyTips       = "study_tips"
)

var conversational = NewMatcher([]Rule{
	{HowAreYou, []string{"how are you", "how r u", "how are u", "whats up", "what's up", "hows it going", "how do you do"}},
	{FeelingGood, []string{"i'm happy", "im happy", "i'm excited", "im excited", "i'm great", "im great", "feeling wonderful", "feeling fantastic", "feeling amazing", "feeling great", "i feel awesome", "i feel great", "i feel happy"}},
	{FeelingBad, []string{"i'm sad", "im sad", "i'm depressed", "im depressed", "i'm stressed", "im stressed", "feeling sad", "feeling worried", "feeling anxious", "feeling down", "feeling bad", "i'm frustrated", "im frustrated", "i'm upset", "im upset", "i feel sad", "i feel bad", "i feel down"}},
	{FeelingTired, []string{"i'm tired", "im tired", "i'm exhausted", "im exhausted", "i'm sleepy", "im sleepy", "feeling tired", "feeling burned out", "feeling exhausted", "so tired", "very tired", "i feel tired"}},
	{FeelingConfused, []string{"i'm confused", "im confused", "i'm lost", "im lost", "i'm stuck", "im stuck", "i don't understand", "i dont understand", "feeling confused", "feeling unclear", "feeling puzzled", "feeling lost", "i feel confused"}},
	{FeelingBored, []string{"i'm bored", "im bored", "this is boring", "feeling bored", "nothing to do", "so bored", "i feel bored"}},
	{ComplimentBot, []string{"you are amazing", "youre amazing", "you are awesome", "youre awesome", "you are great", "youre great", "good job", "well done", "you're nice", "youre nice", "you're smart", "youre smart", "you're helpful", "youre helpful", "you're the best", "youre the best"}},
	{LoveDeclaration, []string{"i love you", "love you", "i like you", "you are the best", "you're the best", "youre the best"}},
	{Joke, []string{"tell me a joke", "tell a joke", "make me laugh", "say something funny", "be funny", "another joke"}},
	{Age, []string{"how old are you", "your age", "when were you born", "what's your age", "whats your age"}},
	{Name, []string{"what is your name", "your name", "who are you", "what are you called", "whats your name"}},
	{Capability, []string{"what can you do", "your abilities", "your features", "what do you know", "tell me what you can do"}},
	{Motivation, []string{"motivate me", "inspire me", "encourage me", "i need motivation", "give me inspiration", "i need encouragement"}},
	{StudyTips, []string{"study tips", "how to study", "study advice", "exam tips", "study help", "how do i study", "help me study"}},
})

// ClassifyConversational returns the conversational intent of text, if any.
// A false result means the message should go to ClassifyDomain.
func ClassifyConversational(text string) (string, bool) {
	return conversational.Match(text)
}

// ConversationalLabels lists conversational intents in priority order.
func ConversationalLabels() []string {
	return conversational.Labels()
}
