package bot

import (
	"fmt"
	"strings"

	"github.com/findmyprof/findmyprof-chatbot-go/internal/directory"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/sliceutil"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/stringutil"
)

// professorSearch tries the subject index first, then names and departments.
func (r *Responder) professorSearch(query string, snap *directory.Snapshot) Reply {
	if profs := snap.SearchBySubject(query); len(profs) > 0 {
		p := &profs[0]
		reply := Reply{
			Schedules:   snap.ProfessorSchedules(p.ID),
			Attachments: snap.ProfessorAttachments(p.ID),
			Suggestions: []string{"Show more details", "Other professors", "View schedules"},
		}
		reply.setProfessor(p)

		var b strings.Builder
		fmt.Fprintf(&b, "I found %s from %s!\n\n", p.Name, p.Department)
		if p.Bio != "" {
			fmt.Fprintf(&b, "%s\n\n", p.Bio)
		}
		if p.Specialization != "" {
			fmt.Fprintf(&b, "🎯 Specialization: %s\n", p.Specialization)
		}
		if p.Email != "" {
			fmt.Fprintf(&b, "📧 Contact: %s\n", p.Email)
		}
		if p.OfficeLocation != "" {
			fmt.Fprintf(&b, "📍 Office: %s\n", p.OfficeLocation)
		}
		writeCounts(&b, len(reply.Schedules), len(reply.Attachments))
		reply.Text = b.String()
		return reply
	}

	if p, ok := snap.FindProfessor(query); ok {
		return r.profile(fmt.Sprintf("Found %s!\n\n", p.Name), p, snap)
	}

	return Reply{
		Text:        professorNotFoundText,
		Suggestions: []string{sugListAllProfessors, sugSearchBySubject, sugHelp},
	}
}

// profile renders a name-matched professor with the given heading.
func (r *Responder) profile(heading string, p *directory.Professor, snap *directory.Snapshot) Reply {
	reply := Reply{
		Schedules:   snap.ProfessorSchedules(p.ID),
		Attachments: snap.ProfessorAttachments(p.ID),
		Suggestions: []string{
			scheduleOf(p.Name),
			"Contact " + stringutil.LastWord(p.Name),
			sugListAllProfessors,
		},
	}
	reply.setProfessor(p)

	var b strings.Builder
	b.WriteString(heading)
	writeProfileDetails(&b, p)
	writeCounts(&b, len(reply.Schedules), len(reply.Attachments))
	reply.Text = b.String()
	return reply
}

func (r *Responder) whoTeaches(query string, snap *directory.Snapshot) Reply {
	profs := snap.SearchBySubject(query)
	if len(profs) == 0 {
		suggestion := sugListAllProfessors
		if subs := snap.Subjects(); len(subs) > 0 {
			suggestion = "Who teaches " + subs[0].Code
		}
		return Reply{
			Text: fmt.Sprintf("I couldn't find a professor teaching \"%s\". Try:\n"+
				"• A different subject name\n"+
				"• Subject code\n"+
				"• Browse all subjects", query),
			Suggestions: []string{sugListAllSubjects, suggestion, sugHelp},
		}
	}

	p := &profs[0]
	reply := Reply{
		Schedules:   snap.ProfessorSchedules(p.ID),
		Attachments: snap.ProfessorAttachments(p.ID),
	}
	reply.setProfessor(p)

	var b strings.Builder
	if sub, ok := snap.FindSubject(query); ok {
		fmt.Fprintf(&b, "📚 **%s - %s**\n\n", sub.Code, sub.Name)
		fmt.Fprintf(&b, "👨‍🏫 Taught by: **%s**\n", p.Name)
		fmt.Fprintf(&b, "🏛️ Department: %s\n", p.Department)
		if p.Email != "" {
			fmt.Fprintf(&b, "📧 %s\n", p.Email)
		}
		if p.OfficeLocation != "" {
			fmt.Fprintf(&b, "📍 Office: %s\n", p.OfficeLocation)
		}
		if len(reply.Attachments) > 0 {
			fmt.Fprintf(&b, "\n📎 %d attachment(s) available", len(reply.Attachments))
		}
	} else {
		fmt.Fprintf(&b, "**%s** teaches this subject!\n\n", p.Name)
		fmt.Fprintf(&b, "Department: %s\n", p.Department)
		if p.Email != "" {
			fmt.Fprintf(&b, "Email: %s\n", p.Email)
		}
	}
	if len(reply.Schedules) > 0 {
		fmt.Fprintf(&b, "\n📅 %d schedule(s) available (see details below)", len(reply.Schedules))
	}
	reply.Text = b.String()

	peers := sliceutil.Filter(snap.Professors(), func(o directory.Professor) bool {
		return o.Department == p.Department && o.ID != p.ID
	})
	peer := sugListAllProfessors
	if len(peers) > 0 {
		peer = "Find " + peers[0].Name
	}
	reply.Suggestions = []string{scheduleOf(p.Name), peer, sugListAllSubjects}
	return reply
}

func (r *Responder) department(query string, snap *directory.Snapshot) Reply {
	profs := sliceutil.Filter(snap.Professors(), func(p directory.Professor) bool {
		return stringutil.FuzzyMatch(p.Department, query)
	})

	var b strings.Builder
	if len(profs) == 0 {
		b.WriteString("I couldn't find that department. Available departments:\n\n")
		depts := sliceutil.Deduplicate(snap.Professors(), func(p directory.Professor) string { return p.Department })
		for i, p := range depts {
			fmt.Fprintf(&b, "%d. %s\n", i+1, p.Department)
		}
		return Reply{
			Text:        b.String(),
			Suggestions: []string{sugFindAProfessor, sugListAllProfessors, sugHelp},
		}
	}

	fmt.Fprintf(&b, "🏛️ **%s Department**\n\n", profs[0].Department)
	fmt.Fprintf(&b, "👨‍🏫 %d professor(s):\n\n", len(profs))
	for i, p := range profs {
		fmt.Fprintf(&b, "%d. %s", i+1, p.Name)
		if p.Specialization != "" {
			fmt.Fprintf(&b, " - %s", p.Specialization)
		}
		b.WriteString("\n")
	}
	return Reply{
		Text:        b.String(),
		Suggestions: []string{sugFindSpecificProf, sugShowSchedules, "Other departments"},
	}
}

// classroom answers "where is" questions: a professor's office first,
// then a room's classes.
func (r *Responder) classroom(query string, snap *directory.Snapshot) Reply {
	if p, ok := snap.FindProfessor(query); ok && p.OfficeLocation != "" {
		reply := Reply{
			Schedules:   snap.ProfessorSchedules(p.ID),
			Suggestions: []string{p.Name + "'s schedule", sugFindAnotherProfessor, sugHelp},
		}
		reply.setProfessor(p)

		var b strings.Builder
		fmt.Fprintf(&b, "📍 **%s**\n\nOffice Location: %s\n", p.Name, p.OfficeLocation)
		withRoom := sliceutil.Filter(reply.Schedules, func(sc directory.Schedule) bool { return sc.Classroom != "" })
		rooms := sliceutil.Deduplicate(withRoom, func(sc directory.Schedule) string { return sc.Classroom })
		if len(rooms) > 0 {
			b.WriteString("\n🏫 Classrooms:\n")
			for _, sc := range rooms {
				fmt.Fprintf(&b, "• %s\n", sc.Classroom)
			}
		}
		reply.Text = b.String()
		return reply
	}

	inRoom := sliceutil.Filter(snap.Schedules(), func(sc directory.Schedule) bool {
		return sc.Classroom != "" && stringutil.FuzzyMatch(sc.Classroom, query)
	})
	if len(inRoom) == 0 {
		return Reply{
			Text:        locationNotFoundText,
			Suggestions: []string{sugListAllProfessors, sugShowSchedules, sugHelp},
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🏫 **Room %s**\n\n", inRoom[0].Classroom)
	fmt.Fprintf(&b, "%d class(es) in this room:\n\n", len(inRoom))
	for i, sc := range inRoom {
		prof, hasProf := snap.Professor(sc.ProfessorID)
		sub, hasSub := snap.Subject(sc.SubjectID)
		if !hasProf || !hasSub {
			continue
		}
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, sub.Code, prof.Name)
		if sc.Day != "" && sc.TimeStart != "" {
			fmt.Fprintf(&b, "   %s %s\n", sc.Day, timeRange(sc))
		}
	}
	return Reply{
		Text:        b.String(),
		Schedules:   inRoom,
		Suggestions: []string{sugFindProfessor, "Show other rooms", sugHelp},
	}
}

func (r *Responder) contact(query string, snap *directory.Snapshot) Reply {
	p, ok := snap.FindProfessor(query)
	if !ok {
		return Reply{
			Text:        contactNotFoundText,
			Suggestions: []string{sugListAllProfessors, sugFindAProfessor, sugHelp},
		}
	}

	reply := Reply{Suggestions: []string{p.Name + "'s schedule", sugFindAnotherProfessor, sugHelp}}
	reply.setProfessor(p)

	var b strings.Builder
	fmt.Fprintf(&b, "📞 **Contact Information**\n\n**%s**\n", p.Name)
	fmt.Fprintf(&b, "%s\n\n", p.Department)
	if p.Email != "" {
		fmt.Fprintf(&b, "📧 Email: %s\n", p.Email)
	}
	if p.Contact != "" {
		fmt.Fprintf(&b, "📱 Phone: %s\n", p.Contact)
	}
	if p.OfficeLocation != "" {
		fmt.Fprintf(&b, "📍 Office: %s\n", p.OfficeLocation)
	}
	if p.Email == "" && p.Contact == "" {
		b.WriteString("\n⚠️ Contact information not available yet.")
	}
	reply.Text = b.String()
	return reply
}

func (r *Responder) attachment(query string, snap *directory.Snapshot) Reply {
	p, ok := snap.FindProfessor(query)
	if !ok {
		return Reply{
			Text:        attachmentNotFoundText,
			Suggestions: []string{sugFindAProfessor, sugListSubjects, sugHelp},
		}
	}

	reply := Reply{
		Attachments: snap.ProfessorAttachments(p.ID),
		Suggestions: []string{p.Name + "'s schedule", sugFindAnotherProfessor, sugHelp},
	}
	reply.setProfessor(p)

	var b strings.Builder
	fmt.Fprintf(&b, "📎 **Course Materials - %s**\n\n", p.Name)
	if len(reply.Attachments) == 0 {
		fmt.Fprintf(&b, "No materials available yet for %s.", p.Name)
		reply.Text = b.String()
		return reply
	}

	fmt.Fprintf(&b, "Found %d file(s):\n\n", len(reply.Attachments))
	for i, a := range reply.Attachments {
		fmt.Fprintf(&b, "%d. %s", i+1, a.FileName)
		if sub, ok := snap.ScheduleSubject(a.ScheduleID); ok {
			fmt.Fprintf(&b, " (%s)", sub.Code)
		}
		if a.Description != "" {
			fmt.Fprintf(&b, "\n   %s", a.Description)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n📥 See details below to download")
	reply.Text = b.String()
	return reply
}

// general looks the raw message up as a professor name before giving up.
func (r *Responder) general(message string, snap *directory.Snapshot) Reply {
	if p, ok := snap.FindProfessor(message); ok {
		return r.profile(fmt.Sprintf("I found information about %s!\n\n", p.Name), p, snap)
	}
	return Reply{Text: unknownText, Suggestions: unknownSuggestions}
}
