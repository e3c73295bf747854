package bot

// Fixed reply texts. Texts that embed data are built in the respond_*.go files.
const (
	greetingText = "Hello! 👋 I'm here to help you find professors, schedules, and courses. What would you like to know?"
	farewellText = "Goodbye! Feel free to come back if you need more help. Have a great day! 👋"
	thanksText   = "You're welcome! 😊 Is there anything else I can help you with?"

	helpText = "I can help you with:\n\n" +
		"👨‍🏫 Find professors\n" +
		"📅 View schedules\n" +
		"📚 List subjects\n" +
		"📍 Room locations\n" +
		"📧 Contact information\n" +
		"📎 Course materials\n\n" +
		"Just ask me anything!"

	unknownText = "I'm not sure what you're asking. Try:\n" +
		"- \"Find professor [name]\"\n" +
		"- \"Show schedules\"\n" +
		"- \"List subjects\"\n" +
		"- \"Help\""

	professorNotFoundText = "I couldn't find that professor. Try searching by name or subject."

	professorScheduleNotFoundText = "I couldn't find that professor's schedule. Try:\n" +
		"• Full professor name\n" +
		"• \"List all professors\""

	subjectScheduleNotFoundText = "I couldn't find that subject's schedule. Try:\n" +
		"• Subject code (e.g., CS101)\n" +
		"• Subject name\n" +
		"• \"List all subjects\""

	dayNotSpecifiedText = "Please specify a day:\n" +
		"• Monday\n• Tuesday\n• Wednesday\n• Thursday\n• Friday\n• Saturday\n• Sunday"

	locationNotFoundText = "I couldn't find that location. Try:\n" +
		"• Professor name to find office\n" +
		"• Room number to see schedule\n" +
		"• \"List all professors\""

	contactNotFoundText = "I couldn't find that professor's contact info. Try:\n" +
		"• Full name\n" +
		"• \"List all professors\""

	attachmentNotFoundText = "I couldn't find attachments. Try specifying:\n" +
		"• Professor name\n" +
		"• Subject name"

	// errorText is returned when generating a reply fails unexpectedly.
	errorText = "Sorry, something went wrong while looking that up. 🙇 Please try again or rephrase your question."
)

// Suggestion labels reused across branches.
const (
	sugHelp                 = "Help"
	sugFindAProfessor       = "Find a professor"
	sugFindProfessor        = "Find professor"
	sugFindSpecificProf     = "Find specific professor"
	sugFindAnotherProfessor = "Find another professor"
	sugListAllProfessors    = "List all professors"
	sugListAllSubjects      = "List all subjects"
	sugListAllSchedules     = "List all schedules"
	sugListSubjects         = "List subjects"
	sugShowSchedules        = "Show schedules"
	sugShowAllSchedules     = "Show all schedules"
	sugMondaySchedule       = "Monday schedule"
	sugSearchBySubject      = "Search by subject"
)

var (
	greetingSuggestions = []string{sugFindAProfessor, sugShowSchedules, sugListSubjects, "Help me"}
	thanksSuggestions   = []string{"Find another professor", "Show more schedules", sugListSubjects}
	unknownSuggestions  = []string{sugFindAProfessor, sugShowSchedules, sugHelp}
	errorSuggestions    = []string{sugFindAProfessor, sugShowSchedules, sugHelp}
)
