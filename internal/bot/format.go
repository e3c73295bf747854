package bot

import (
	"fmt"
	"slices"
	"strings"

	"github.com/findmyprof/findmyprof-chatbot-go/internal/directory"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/sliceutil"
)

// Rendering caps for list-style replies.
const (
	maxListedProfessors = 10
	maxListedSubjects   = 10
	maxSubjectOverview  = 5
	maxGeneralSchedules = 10
	maxListedSchedules  = 15
	maxDaySchedules     = 15
	descriptionPreview  = 50
)

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// weekdayIndex returns the position of day in weekdays, or -1.
// The comparison is exact, so "monday" sorts with unknown days.
func weekdayIndex(day string) int {
	return slices.Index(weekdays, day)
}

func timeRange(sc directory.Schedule) string {
	return sc.TimeStart + "-" + sc.TimeEnd
}

// professorsOf returns, in snapshot order, the professors teaching any of schedules.
func professorsOf(snap *directory.Snapshot, schedules []directory.Schedule) []directory.Professor {
	if len(schedules) == 0 {
		return nil
	}
	ids := make(map[int64]struct{}, len(schedules))
	for _, sc := range schedules {
		ids[sc.ProfessorID] = struct{}{}
	}
	return sliceutil.Filter(snap.Professors(), func(p directory.Professor) bool {
		_, ok := ids[p.ID]
		return ok
	})
}

// writeProfileDetails appends the labelled optional fields used by
// name-based lookups.
func writeProfileDetails(b *strings.Builder, p *directory.Professor) {
	fmt.Fprintf(b, "Department: %s\n", p.Department)
	if p.Specialization != "" {
		fmt.Fprintf(b, "Specialization: %s\n", p.Specialization)
	}
	if p.Email != "" {
		fmt.Fprintf(b, "Email: %s\n", p.Email)
	}
	if p.OfficeLocation != "" {
		fmt.Fprintf(b, "Office: %s\n", p.OfficeLocation)
	}
}

// writeCounts appends the schedule and attachment counters shown under a
// professor profile. Zero counts are omitted.
func writeCounts(b *strings.Builder, schedules, attachments int) {
	if schedules > 0 {
		fmt.Fprintf(b, "\n📅 %d schedule(s) available (see details below)", schedules)
	}
	if attachments > 0 {
		fmt.Fprintf(b, "\n📎 %d attachment(s) available", attachments)
	}
}

// writeMeeting appends " 📆 day start-end | 🏫 room | 👥 section" style
// segments, skipping absent fields.
func writeMeeting(b *strings.Builder, sc directory.Schedule) {
	if sc.Day != "" {
		fmt.Fprintf(b, "   📆 %s", sc.Day)
	}
	if sc.HasTimes() {
		fmt.Fprintf(b, " %s", timeRange(sc))
	}
	if sc.Classroom != "" {
		fmt.Fprintf(b, " | 🏫 %s", sc.Classroom)
	}
	if sc.Section != "" {
		fmt.Fprintf(b, " | 👥 %s", sc.Section)
	}
}

func scheduleOf(name string) string {
	return "Schedule of " + name
}

func withSchedulesOf(profs []directory.Professor, fallback string) string {
	if len(profs) == 0 {
		return fallback
	}
	return scheduleOf(profs[0].Name)
}
