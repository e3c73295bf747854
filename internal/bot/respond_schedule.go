package bot

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/findmyprof/findmyprof-chatbot-go/internal/directory"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/sliceutil"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/stringutil"
)

var (
	roomWord      = regexp.MustCompile(`(?i)room\s*`)
	classroomWord = regexp.MustCompile(`(?i)classroom\s*`)
	sectionWord   = regexp.MustCompile(`(?i)section\s*`)
)

func (r *Responder) professorSchedule(query string, snap *directory.Snapshot) Reply {
	p, ok := snap.FindProfessor(query)
	if !ok {
		suggestion := sugFindAProfessor
		if profs := snap.Professors(); len(profs) > 0 {
			suggestion = scheduleOf(profs[0].Name)
		}
		return Reply{
			Text:        professorScheduleNotFoundText,
			Suggestions: []string{sugListAllProfessors, suggestion, sugHelp},
		}
	}

	reply := Reply{
		Schedules:   snap.ProfessorSchedules(p.ID),
		Attachments: snap.ProfessorAttachments(p.ID),
	}
	reply.setProfessor(p)

	var b strings.Builder
	if len(reply.Schedules) == 0 {
		fmt.Fprintf(&b, "📅 %s\n\nNo schedules available yet.", p.Name)
	} else {
		fmt.Fprintf(&b, "📅 **%s's Schedule**\n\n", p.Name)
		fmt.Fprintf(&b, "Found %d class(es):\n\n", len(reply.Schedules))
		for i, sc := range reply.Schedules {
			fmt.Fprintf(&b, "%d. ", i+1)
			if sub, ok := snap.Subject(sc.SubjectID); ok {
				fmt.Fprintf(&b, "**%s** - %s\n", sub.Code, sub.Name)
			}
			writeMeeting(&b, sc)
			b.WriteString("\n")
		}
		if len(reply.Attachments) > 0 {
			fmt.Fprintf(&b, "\n📎 %d attachment(s) available for this professor's classes", len(reply.Attachments))
		}
	}
	reply.Text = b.String()

	contact := "View profile"
	if p.Email != "" {
		contact = "Contact " + stringutil.FirstWord(p.Name)
	}
	other := sugListAllProfessors
	for _, o := range snap.Professors() {
		if o.ID != p.ID {
			other = scheduleOf(stringutil.LastWord(o.Name))
			break
		}
	}
	reply.Suggestions = []string{contact, other, sugShowAllSchedules}
	return reply
}

func (r *Responder) subjectSchedule(query string, snap *directory.Snapshot) Reply {
	sub, ok := snap.FindSubject(query)
	if !ok {
		suggestion := "List schedules"
		if subs := snap.Subjects(); len(subs) > 0 {
			suggestion = "When is " + subs[0].Code
		}
		return Reply{
			Text:        subjectScheduleNotFoundText,
			Suggestions: []string{sugListAllSubjects, suggestion, sugHelp},
		}
	}

	reply := Reply{Schedules: snap.SubjectSchedules(sub.ID)}
	reply.Attachments = snap.AttachmentsForSchedules(reply.Schedules)

	var b strings.Builder
	if len(reply.Schedules) == 0 {
		fmt.Fprintf(&b, "📚 %s\n\nNo schedules available yet for this subject.", sub.Name)
	} else {
		fmt.Fprintf(&b, "📚 **%s - %s**\n\n", sub.Code, sub.Name)
		fmt.Fprintf(&b, "%d class(es) available:\n\n", len(reply.Schedules))
		for i, sc := range reply.Schedules {
			fmt.Fprintf(&b, "%d. ", i+1)
			if prof, ok := snap.Professor(sc.ProfessorID); ok {
				fmt.Fprintf(&b, "👨‍🏫 %s\n", prof.Name)
			}
			writeMeeting(&b, sc)
			b.WriteString("\n")
		}
		if len(reply.Attachments) > 0 {
			fmt.Fprintf(&b, "\n📎 %d attachment(s) available for this subject", len(reply.Attachments))
		}
	}
	reply.Text = b.String()
	reply.Suggestions = []string{
		withSchedulesOf(professorsOf(snap, reply.Schedules), sugListAllProfessors),
		sugListAllSubjects,
		sugShowAllSchedules,
	}
	return reply
}

// daySchedule reads the weekday from the raw message; the extracted query
// would already have lost it for phrasings like "classes on monday".
func (r *Responder) daySchedule(message string, snap *directory.Snapshot) Reply {
	lower := strings.ToLower(message)
	var day string
	for _, d := range weekdays {
		if strings.Contains(lower, strings.ToLower(d)) {
			day = strings.ToLower(d)
			break
		}
	}
	if day == "" {
		return Reply{
			Text:        dayNotSpecifiedText,
			Suggestions: []string{sugMondaySchedule, sugListAllSchedules, sugHelp},
		}
	}
	dayName := stringutil.Title(day)

	matches := sliceutil.Filter(snap.Schedules(), func(sc directory.Schedule) bool {
		return sc.Day != "" && strings.Contains(strings.ToLower(sc.Day), day)
	})
	reply := Reply{
		Schedules:   matches,
		Attachments: snap.AttachmentsForSchedules(matches),
	}

	var b strings.Builder
	if len(matches) == 0 {
		fmt.Fprintf(&b, "📆 %s\n\nNo classes scheduled for this day.", dayName)
	} else {
		// Only pairs that both have a start time are ordered.
		slices.SortStableFunc(matches, func(a, b directory.Schedule) int {
			if a.TimeStart != "" && b.TimeStart != "" {
				return strings.Compare(a.TimeStart, b.TimeStart)
			}
			return 0
		})

		fmt.Fprintf(&b, "📆 **%s Schedule**\n\n", dayName)
		fmt.Fprintf(&b, "Found %d class(es):\n\n", len(matches))
		for i, sc := range sliceutil.Take(matches, maxDaySchedules) {
			fmt.Fprintf(&b, "%d. ", i+1)
			if sc.HasTimes() {
				fmt.Fprintf(&b, "⏰ %s\n", timeRange(sc))
			}
			if sub, ok := snap.Subject(sc.SubjectID); ok {
				fmt.Fprintf(&b, "   📚 %s - %s\n", sub.Code, sub.Name)
			}
			if prof, ok := snap.Professor(sc.ProfessorID); ok {
				fmt.Fprintf(&b, "   👨‍🏫 %s", prof.Name)
			}
			if sc.Classroom != "" {
				fmt.Fprintf(&b, " | 🏫 %s", sc.Classroom)
			}
			if sc.Section != "" {
				fmt.Fprintf(&b, " | 👥 %s", sc.Section)
			}
			b.WriteString("\n")
		}
		if len(matches) > maxDaySchedules {
			fmt.Fprintf(&b, "\n...and %d more classes", len(matches)-maxDaySchedules)
		}
		if len(reply.Attachments) > 0 {
			fmt.Fprintf(&b, "\n\n📎 %d attachment(s) available for %s classes", len(reply.Attachments), dayName)
		}
	}
	reply.Text = b.String()
	reply.Suggestions = []string{
		withSchedulesOf(professorsOf(snap, matches), sugListAllProfessors),
		sugShowAllSchedules,
		sugFindAProfessor,
	}
	return reply
}

func (r *Responder) roomSchedule(query string, snap *directory.Snapshot) Reply {
	room := strings.TrimSpace(classroomWord.ReplaceAllString(roomWord.ReplaceAllString(query, ""), ""))
	matches := sliceutil.Filter(snap.Schedules(), func(sc directory.Schedule) bool {
		return sc.Classroom != "" && stringutil.FuzzyMatch(sc.Classroom, room)
	})
	if len(matches) == 0 {
		return Reply{
			Text: fmt.Sprintf("🏫 Room %s\n\nNo classes found in this room. Try:\n"+
				"• Different room number\n"+
				"• \"List all schedules\"", room),
			Suggestions: []string{sugListAllSchedules, sugFindProfessor, sugHelp},
		}
	}

	reply := Reply{
		Schedules:   matches,
		Attachments: snap.AttachmentsForSchedules(matches),
	}
	roomName := matches[0].Classroom

	slices.SortStableFunc(matches, func(a, b directory.Schedule) int {
		if da, db := weekdayIndex(a.Day), weekdayIndex(b.Day); da != db {
			return da - db
		}
		return strings.Compare(a.TimeStart, b.TimeStart)
	})

	var b strings.Builder
	fmt.Fprintf(&b, "🏫 **Room %s**\n\n", roomName)
	fmt.Fprintf(&b, "%d class(es) scheduled:\n\n", len(matches))
	for i, sc := range matches {
		fmt.Fprintf(&b, "%d. ", i+1)
		if sc.Day != "" {
			fmt.Fprintf(&b, "📆 %s", sc.Day)
		}
		if sc.HasTimes() {
			fmt.Fprintf(&b, " ⏰ %s\n", timeRange(sc))
		} else {
			b.WriteString("\n")
		}
		if sub, ok := snap.Subject(sc.SubjectID); ok {
			fmt.Fprintf(&b, "   📚 %s - %s\n", sub.Code, sub.Name)
		}
		if prof, ok := snap.Professor(sc.ProfessorID); ok {
			fmt.Fprintf(&b, "   👨‍🏫 %s", prof.Name)
		}
		if sc.Section != "" {
			fmt.Fprintf(&b, " | 👥 %s", sc.Section)
		}
		b.WriteString("\n")
	}
	if len(reply.Attachments) > 0 {
		fmt.Fprintf(&b, "\n📎 %d attachment(s) available for classes in this room", len(reply.Attachments))
	}
	reply.Text = b.String()
	reply.Suggestions = []string{
		withSchedulesOf(professorsOf(snap, matches), sugListAllProfessors),
		sugShowAllSchedules,
		"List all rooms",
	}
	return reply
}

func (r *Responder) sectionSchedule(query string, snap *directory.Snapshot) Reply {
	section := strings.TrimSpace(sectionWord.ReplaceAllString(query, ""))
	matches := sliceutil.Filter(snap.Schedules(), func(sc directory.Schedule) bool {
		return sc.Section != "" && stringutil.FuzzyMatch(sc.Section, section)
	})
	if len(matches) == 0 {
		return Reply{
			Text:        fmt.Sprintf("👥 Section %s\n\nNo classes found for this section.", section),
			Suggestions: []string{sugListAllSchedules, sugFindProfessor, sugHelp},
		}
	}

	reply := Reply{
		Schedules:   matches,
		Attachments: snap.AttachmentsForSchedules(matches),
	}

	var b strings.Builder
	fmt.Fprintf(&b, "👥 **Section %s**\n\n", matches[0].Section)
	fmt.Fprintf(&b, "%d class(es) for this section:\n\n", len(matches))
	for i, sc := range matches {
		fmt.Fprintf(&b, "%d. ", i+1)
		if sub, ok := snap.Subject(sc.SubjectID); ok {
			fmt.Fprintf(&b, "📚 %s - %s\n", sub.Code, sub.Name)
		}
		if prof, ok := snap.Professor(sc.ProfessorID); ok {
			fmt.Fprintf(&b, "   👨‍🏫 %s\n", prof.Name)
		}
		if sc.Day != "" {
			fmt.Fprintf(&b, "   📆 %s", sc.Day)
		}
		if sc.HasTimes() {
			fmt.Fprintf(&b, " ⏰ %s", timeRange(sc))
		}
		if sc.Classroom != "" {
			fmt.Fprintf(&b, " | 🏫 %s", sc.Classroom)
		}
		b.WriteString("\n")
	}
	if len(reply.Attachments) > 0 {
		fmt.Fprintf(&b, "\n📎 %d attachment(s) available for this section", len(reply.Attachments))
	}
	reply.Text = b.String()
	reply.Suggestions = []string{
		withSchedulesOf(professorsOf(snap, matches), sugListAllProfessors),
		sugShowAllSchedules,
		sugFindAProfessor,
	}
	return reply
}

func (r *Responder) schedule(snap *directory.Snapshot) Reply {
	schedules := sliceutil.Take(snap.Schedules(), maxGeneralSchedules)
	reply := Reply{
		Schedules:   schedules,
		Attachments: snap.AttachmentsForSchedules(schedules),
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here are %d schedules (see table below):", len(schedules))
	if len(reply.Attachments) > 0 {
		fmt.Fprintf(&b, "\n\n📎 %d attachment(s) available", len(reply.Attachments))
	}
	reply.Text = b.String()

	if profs := professorsOf(snap, schedules); len(profs) > 0 {
		reply.Suggestions = []string{scheduleOf(profs[0].Name), sugMondaySchedule, sugListAllProfessors}
	} else {
		reply.Suggestions = []string{sugFindSpecificProf, "Show more schedules", sugListSubjects}
	}
	return reply
}

func (r *Responder) listSchedules(snap *directory.Snapshot) Reply {
	schedules := sliceutil.Take(snap.Schedules(), maxListedSchedules)
	reply := Reply{
		Schedules:   schedules,
		Attachments: snap.AttachmentsForSchedules(schedules),
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📅 **All Schedules** (%d total):\n\nSee details below 👇", len(snap.Schedules()))
	if len(reply.Attachments) > 0 {
		fmt.Fprintf(&b, "\n\n📎 %d attachment(s) available", len(reply.Attachments))
	}
	reply.Text = b.String()

	if profs := professorsOf(snap, schedules); len(profs) >= 2 {
		reply.Suggestions = []string{scheduleOf(profs[0].Name), sugMondaySchedule, sugListAllProfessors}
	} else {
		reply.Suggestions = []string{sugFindSpecificProf, "Show specific subject", sugHelp}
	}
	return reply
}
