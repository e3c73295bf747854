package bot

import (
	"github.com/findmyprof/findmyprof-chatbot-go/internal/directory"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/intent"
)

// Responder answers directory intents from a snapshot.
// It only reads the snapshot and keeps no state between calls.
type Responder struct{}

// NewResponder creates a Responder.
func NewResponder() *Responder {
	return &Responder{}
}

// Generate builds the reply for a directory intent. label is normally the
// output of intent.ClassifyDomain; unknown labels behave like intent.General.
// Lookups that find nothing produce a "not found" text with suggestions.
func (r *Responder) Generate(label, message string, snap *directory.Snapshot) Reply {
	query := intent.ExtractQuery(message, label)

	switch label {
	case intent.Greeting:
		return Reply{Text: greetingText, Suggestions: greetingSuggestions}
	case intent.Farewell:
		return Reply{Text: farewellText}
	case intent.Thanks:
		return Reply{Text: thanksText, Suggestions: thanksSuggestions}
	case intent.Help:
		return r.help(snap)

	case intent.ProfessorSearch:
		return r.professorSearch(query, snap)
	case intent.WhoTeaches:
		return r.whoTeaches(query, snap)
	case intent.Department:
		return r.department(query, snap)
	case intent.Classroom:
		return r.classroom(query, snap)
	case intent.Contact:
		return r.contact(query, snap)
	case intent.Attachment:
		return r.attachment(query, snap)

	case intent.ProfessorSchedule:
		return r.professorSchedule(query, snap)
	case intent.SubjectSchedule:
		return r.subjectSchedule(query, snap)
	case intent.DaySchedule:
		return r.daySchedule(message, snap)
	case intent.RoomSchedule:
		return r.roomSchedule(query, snap)
	case intent.SectionSchedule:
		return r.sectionSchedule(query, snap)
	case intent.Schedule:
		return r.schedule(snap)

	case intent.Subject:
		return r.subjectOverview(snap)
	case intent.ListProfessors:
		return r.listProfessors(snap)
	case intent.ListSubjects:
		return r.listSubjects(snap)
	case intent.ListSchedules:
		return r.listSchedules(snap)

	default:
		return r.general(message, snap)
	}
}
