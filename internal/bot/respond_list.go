package bot

import (
	"fmt"
	"strings"

	"github.com/findmyprof/findmyprof-chatbot-go/internal/directory"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/sliceutil"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/stringutil"
)

// help lists capabilities and suggests queries that will hit real data.
func (r *Responder) help(snap *directory.Snapshot) Reply {
	findSug := sugListAllProfessors
	if profs := snap.Professors(); len(profs) > 0 {
		findSug = "Find " + profs[0].Name
	}
	whenSug := sugShowSchedules
	if subs := snap.Subjects(); len(subs) > 0 {
		whenSug = "When is " + subs[0].Code
	}
	return Reply{
		Text:        helpText,
		Suggestions: []string{findSug, whenSug, sugMondaySchedule},
	}
}

func (r *Responder) subjectOverview(snap *directory.Snapshot) Reply {
	subjects := snap.Subjects()

	var b strings.Builder
	b.WriteString("Available subjects:\n\n")
	lines := make([]string, 0, maxSubjectOverview)
	for _, s := range sliceutil.Take(subjects, maxSubjectOverview) {
		lines = append(lines, fmt.Sprintf("📚 %s - %s (%d credits)", s.Code, s.Name, s.CreditsOrDefault()))
	}
	b.WriteString(strings.Join(lines, "\n"))
	if len(subjects) > maxSubjectOverview {
		fmt.Fprintf(&b, "\n\n...and %d more subjects", len(subjects)-maxSubjectOverview)
	}
	return Reply{
		Text:        b.String(),
		Suggestions: []string{"Find professor for subject", sugShowSchedules, sugHelp},
	}
}

func (r *Responder) listProfessors(snap *directory.Snapshot) Reply {
	profs := snap.Professors()

	var b strings.Builder
	fmt.Fprintf(&b, "📋 **All Professors** (%d total):\n\n", len(profs))
	for i, p := range sliceutil.Take(profs, maxListedProfessors) {
		fmt.Fprintf(&b, "%d. **%s** - %s\n", i+1, p.Name, p.Department)
		if p.Specialization != "" {
			fmt.Fprintf(&b, "   🎯 %s\n", p.Specialization)
		}
	}
	if len(profs) > maxListedProfessors {
		fmt.Fprintf(&b, "\n...and %d more professors", len(profs)-maxListedProfessors)
	}
	b.WriteString("\n\n💡 Type a professor's name to see their full profile!")

	reply := Reply{Text: b.String()}
	if len(profs) >= 3 {
		reply.Suggestions = []string{
			scheduleOf(profs[0].Name),
			"Find " + stringutil.FirstWord(profs[1].Name),
			"Contact " + stringutil.LastWord(profs[2].Name),
		}
	} else {
		reply.Suggestions = []string{sugFindSpecificProf, sugSearchBySubject, sugShowSchedules}
	}
	return reply
}

func (r *Responder) listSubjects(snap *directory.Snapshot) Reply {
	subjects := snap.Subjects()

	var b strings.Builder
	fmt.Fprintf(&b, "📚 **All Subjects** (%d total):\n\n", len(subjects))
	for i, s := range sliceutil.Take(subjects, maxListedSubjects) {
		fmt.Fprintf(&b, "%d. **%s** - %s\n", i+1, s.Code, s.Name)
		if s.Description != "" {
			fmt.Fprintf(&b, "   %s...\n", stringutil.TruncateRunes(s.Description, descriptionPreview, ""))
		}
	}
	if len(subjects) > maxListedSubjects {
		fmt.Fprintf(&b, "\n...and %d more subjects", len(subjects)-maxListedSubjects)
	}
	b.WriteString("\n\n💡 Ask \"Who teaches [subject]?\" to find the professor!")

	reply := Reply{Text: b.String()}
	if len(subjects) >= 3 {
		reply.Suggestions = []string{
			"Who teaches " + subjects[0].Code,
			"When is " + subjects[1].Name,
			sugListAllProfessors,
		}
	} else {
		reply.Suggestions = []string{"Who teaches a subject?", sugFindProfessor, sugShowSchedules}
	}
	return reply
}
