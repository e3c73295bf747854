package intent

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/findmyprof/findmyprof-chatbot-go/internal/stringutil"
)

// minQueryLength is the shortest cleaned query worth searching for.
const minQueryLength = 2

// Strip patterns run in order on the lower-cased message. Several may fire.
var (
	professorSchedulePatterns = mustCompileAll(
		`^(schedule|sched|timetable|classes)\s+(of|for)\s+`,
		`^(show|get|view)\s+(schedule|sched|timetable|classes)\s+(of|for)\s+`,
		`\s+(schedule|sched|timetable|classes)$`,
		`^(what|when)\s+(time\s+)?(does|is)\s+(professor|prof|teacher)?\s*`,
		`\s+(teach|have|hold|conduct)$`,
	)
	subjectSchedulePatterns = mustCompileAll(
		`^(schedule|sched|timetable|classes)\s+(of|for)\s+`,
		`^(when|what\s+time)\s+(is|does)\s+(the\s+)?`,
		`\s+(class|course|subject)$`,
	)
	roomSchedulePatterns = mustCompileAll(
		`^(schedule|classes|what\s+classes|who\s+uses)\s+(in|for|of)\s+`,
		`(room|classroom)\s*`,
		`^(schedule|sched)\s+(for|in|of)?\s*`,
	)
	sectionSchedulePatterns = mustCompileAll(
		`^(schedule|classes)\s+(for|of)\s+`,
		`section\s*`,
	)
	whoTeachesPatterns = mustCompileAll(
		`^(who|what)\s+(teaches|is\s+teaching|handles)\s+`,
	)
	genericPatterns = mustCompileAll(
		`^(find|search|show|get|view|display|see)\s+(me\s+)?(the\s+)?`,
		`^(who\s+is|what\s+is|where\s+is|when\s+is|when\s+does)\s+`,
		`^(tell\s+me\s+about|info\s+about|information\s+about)\s+`,
		`^(list\s+(all\s+)?|show\s+all\s+)`,
		`\s+(professor|prof|teacher|instructor|faculty)$`,
		`^(professor|prof|teacher|instructor)\s+`,
	)

	fallbackPrefix = regexp.MustCompile(`^(find|show|get|who|what|where|when|tell me)\s+`)
	punctuation    = regexp.MustCompile(`[?!.,;:]`)
)

var patternsByIntent = map[string][]*regexp.Regexp{
	ProfessorSchedule: professorSchedulePatterns,
	SubjectSchedule:   subjectSchedulePatterns,
	RoomSchedule:      roomSchedulePatterns,
	SectionSchedule:   sectionSchedulePatterns,
	WhoTeaches:        whoTeachesPatterns,
}

func mustCompileAll(exprs ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		res[i] = regexp.MustCompile(e)
	}
	return res
}

// ExtractQuery strips intent-specific filler from message and returns the
// lower-cased search term.
//
// Example:
//
//	ExtractQuery("Schedule of Santos", ProfessorSchedule) returns "santos"
//	ExtractQuery("who teaches database?", WhoTeaches) returns "database"
//	ExtractQuery("classes in room 101", RoomSchedule) returns "101"
//
// If cleaning leaves fewer than two characters, the original message is
// re-cleaned with a short list of question prefixes instead.
func ExtractQuery(message, label string) string {
	query := strings.TrimSpace(strings.ToLower(message))

	patterns, ok := patternsByIntent[label]
	if !ok {
		patterns = genericPatterns
	}
	for _, re := range patterns {
		query = re.ReplaceAllString(query, "")
	}

	query = stringutil.CollapseWhitespace(punctuation.ReplaceAllString(query, ""))
	if utf8.RuneCountInString(query) >= minQueryLength {
		return query
	}

	fallback := fallbackPrefix.ReplaceAllString(strings.ToLower(message), "")
	return strings.TrimSpace(punctuation.ReplaceAllString(fallback, ""))
}
