package bot

import (
	"strings"
	"testing"

	"github.com/findmyprof/findmyprof-chatbot-go/internal/directory"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/intent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot() *directory.Snapshot {
	return directory.NewSnapshotFromDataset(directory.Sample())
}

func scheduleIDs(schedules []directory.Schedule) []int64 {
	ids := make([]int64, len(schedules))
	for i, sc := range schedules {
		ids[i] = sc.ID
	}
	return ids
}

func attachmentIDs(attachments []directory.Attachment) []int64 {
	ids := make([]int64, len(attachments))
	for i, a := range attachments {
		ids[i] = a.ID
	}
	return ids
}

func TestResponder_Generate(t *testing.T) {
	t.Parallel()

	snap := sampleSnapshot()
	r := NewResponder()

	tests := []struct {
		name            string
		message         string
		wantIntent      string
		wantPrefix      string
		wantContains    []string
		wantProfessor   int64
		wantSchedules   []int64
		wantAttachments []int64
		wantSuggestions []string
	}{
		{
			name:          "list professors",
			message:       "List all professors",
			wantIntent:    intent.ListProfessors,
			wantPrefix:    "📋 **All Professors** (5 total):",
			wantContains:  []string{"1. **Dr. Maria Santos** - Computer Science", "🎯 Artificial Intelligence", "💡 Type a professor's name"},
			wantSchedules: []int64{},
			wantSuggestions: []string{
				"Schedule of Dr. Maria Santos",
				"Find Prof.",
				"Contact Reyes",
			},
		},
		{
			name:            "professor schedule",
			message:         "Schedule of Santos",
			wantIntent:      intent.ProfessorSchedule,
			wantPrefix:      "📅 **Dr. Maria Santos's Schedule**",
			wantContains:    []string{"Found 5 class(es):", "**CS101** - Introduction to Programming", "📎 2 attachment(s)"},
			wantProfessor:   1,
			wantSchedules:   []int64{1, 2, 3, 4, 10},
			wantAttachments: []int64{1, 2},
			wantSuggestions: []string{"Contact Dr.", "Schedule of Cruz", sugShowAllSchedules},
		},
		{
			name:            "professor schedule without email",
			message:         "Schedule of Tan",
			wantIntent:      intent.ProfessorSchedule,
			wantPrefix:      "📅 **Dr. Linda Tan's Schedule**",
			wantProfessor:   5,
			wantSchedules:   []int64{13},
			wantAttachments: []int64{},
			wantSuggestions: []string{"View profile", "Schedule of Santos", sugShowAllSchedules},
		},
		{
			name:          "unknown professor schedule",
			message:       "Schedule of Nobody Atall",
			wantIntent:    intent.ProfessorSchedule,
			wantPrefix:    professorScheduleNotFoundText,
			wantSchedules: []int64{},
			wantSuggestions: []string{
				sugListAllProfessors,
				"Schedule of Dr. Maria Santos",
				sugHelp,
			},
		},
		{
			name:            "who teaches a subject",
			message:         "Who teaches database",
			wantIntent:      intent.WhoTeaches,
			wantPrefix:      "📚 **CS301 - Database Systems**",
			wantContains:    []string{"👨‍🏫 Taught by: **Dr. Anna Reyes**", "📎 1 attachment(s) available", "📅 3 schedule(s)"},
			wantProfessor:   3,
			wantSchedules:   []int64{7, 8, 11},
			wantAttachments: []int64{3},
			wantSuggestions: []string{"Schedule of Dr. Anna Reyes", "Find Dr. Maria Santos", sugListAllSubjects},
		},
		{
			name:          "who teaches an unknown subject",
			message:       "Who teaches quantum physics",
			wantIntent:    intent.WhoTeaches,
			wantPrefix:    `I couldn't find a professor teaching "quantum physics".`,
			wantSchedules: []int64{},
			wantSuggestions: []string{
				sugListAllSubjects,
				"Who teaches CS101",
				sugHelp,
			},
		},
		{
			name:            "professor search by name",
			message:         "Find professor Reyes",
			wantIntent:      intent.ProfessorSearch,
			wantPrefix:      "Found Dr. Anna Reyes!\n\nDepartment: Computer Science\n",
			wantProfessor:   3,
			wantSchedules:   []int64{7, 8, 11},
			wantAttachments: []int64{3},
			wantSuggestions: []string{"Schedule of Dr. Anna Reyes", "Contact Reyes", sugListAllProfessors},
		},
		{
			name:            "day schedule is sorted by start time",
			message:         "classes on monday",
			wantIntent:      intent.DaySchedule,
			wantPrefix:      "📆 **Monday Schedule**",
			wantContains:    []string{"Found 3 class(es):", "1. ⏰ 08:00-10:00", "📎 1 attachment(s) available for Monday classes"},
			wantSchedules:   []int64{1, 5, 10},
			wantAttachments: []int64{1},
		},
		{
			name:            "room schedule",
			message:         "schedule in room 101",
			wantIntent:      intent.RoomSchedule,
			wantPrefix:      "🏫 **Room Room 101**",
			wantContains:    []string{"2 class(es) scheduled:", "📆 Monday ⏰ 08:00-10:00"},
			wantSchedules:   []int64{1, 2},
			wantAttachments: []int64{1},
		},
		{
			name:            "section schedule",
			message:         "section schedule BSCS-3A",
			wantIntent:      intent.SectionSchedule,
			wantPrefix:      "👥 **Section BSCS-3A**",
			wantContains:    []string{"2 class(es) for this section:", "📚 CS301 - Database Systems"},
			wantSchedules:   []int64{7, 8},
			wantAttachments: []int64{3},
		},
		{
			name:          "department",
			message:       "department of Mathematics",
			wantIntent:    intent.Department,
			wantPrefix:    "🏛️ **Mathematics Department**",
			wantContains:  []string{"👨‍🏫 1 professor(s):", "1. Prof. Juan Dela Cruz"},
			wantSchedules: []int64{},
		},
		{
			name:          "office location",
			message:       "where is Garcia",
			wantIntent:    intent.Classroom,
			wantPrefix:    "📍 **Prof. Pedro Garcia**\n\nOffice Location: Room 401, IT Building",
			wantContains:  []string{"🏫 Classrooms:\n• Lab 401"},
			wantProfessor: 4,
			wantSchedules: []int64{9},
		},
		{
			name:          "general falls back to a name lookup",
			message:       "Santos",
			wantIntent:    intent.General,
			wantPrefix:    "I found information about Dr. Maria Santos!",
			wantProfessor: 1,
			wantSchedules: []int64{1, 2, 3, 4, 10},
		},
		{
			name:            "general without a match",
			message:         "asdkjhasd",
			wantIntent:      intent.General,
			wantPrefix:      unknownText,
			wantSchedules:   []int64{},
			wantSuggestions: unknownSuggestions,
		},
		{
			name:            "help",
			message:         "Help me",
			wantIntent:      intent.Help,
			wantPrefix:      helpText,
			wantSchedules:   []int64{},
			wantSuggestions: []string{"Find Dr. Maria Santos", "When is CS101", sugMondaySchedule},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			label := intent.ClassifyDomain(tt.message)
			require.Equal(t, tt.wantIntent, label)

			reply := r.Generate(label, tt.message, snap)
			assert.True(t, strings.HasPrefix(reply.Text, tt.wantPrefix), "reply = %q", reply.Text)
			for _, want := range tt.wantContains {
				assert.Contains(t, reply.Text, want)
			}

			if tt.wantProfessor != 0 {
				require.NotNil(t, reply.Professor)
				assert.Equal(t, tt.wantProfessor, reply.Professor.ID)
			} else {
				assert.Nil(t, reply.Professor)
			}
			if tt.wantSchedules != nil {
				assert.Equal(t, tt.wantSchedules, scheduleIDs(reply.Schedules))
			}
			if tt.wantAttachments != nil {
				assert.Equal(t, tt.wantAttachments, attachmentIDs(reply.Attachments))
			}
			if tt.wantSuggestions != nil {
				assert.Equal(t, tt.wantSuggestions, reply.Suggestions)
			}
		})
	}
}

func TestResponder_EmptySnapshot(t *testing.T) {
	t.Parallel()

	snap := directory.NewSnapshot(nil, nil, nil, nil)
	r := NewResponder()

	for _, label := range append(intent.DomainLabels(), intent.General, "made_up") {
		t.Run(label, func(t *testing.T) {
			t.Parallel()
			reply := r.Generate(label, "show me something on monday", snap)
			assert.NotEmpty(t, reply.Text)
			assert.Nil(t, reply.Professor)
			assert.Empty(t, reply.Schedules)
		})
	}
}

func TestResponder_NilSubjectSchedule(t *testing.T) {
	t.Parallel()

	d := directory.Sample()
	d.Schedules = append(d.Schedules, directory.Schedule{
		ID: 99, ProfessorID: 1, Classroom: "Room 101", Day: "Monday", TimeStart: "18:00", TimeEnd: "19:00", Section: "BSCS-1A",
	})
	snap := directory.NewSnapshotFromDataset(d)
	r := NewResponder()

	for _, msg := range []string{
		"Schedule of Santos",
		"classes on monday",
		"schedule in room 101",
		"section schedule BSCS-1A",
		"where is room 101",
		"show all schedules",
	} {
		t.Run(msg, func(t *testing.T) {
			t.Parallel()
			var reply Reply
			require.NotPanics(t, func() {
				reply = r.Generate(intent.ClassifyDomain(msg), msg, snap)
			})
			assert.NotEmpty(t, reply.Text)
		})
	}

	reply := r.Generate(intent.ProfessorSchedule, "Schedule of Santos", snap)
	assert.Contains(t, scheduleIDs(reply.Schedules), int64(99))
	assert.Contains(t, reply.Text, "Found 6 class(es):")
}

func TestResponder_ListSubjectsTruncatesDescriptions(t *testing.T) {
	t.Parallel()

	reply := NewResponder().Generate(intent.ListSubjects, "list all subjects", sampleSnapshot())
	assert.Contains(t, reply.Text, "📚 **All Subjects** (9 total):")
	assert.Contains(t, reply.Text, "   Basic programming concepts using Python...\n")
	assert.Contains(t, reply.Text, "   Techniques for extracting knowledge from large dat...\n")
	assert.Equal(t, []string{"Who teaches CS101", "When is Data Structures and Algorithms", sugListAllProfessors}, reply.Suggestions)
}

func TestResponder_ScheduleCaps(t *testing.T) {
	t.Parallel()

	snap := sampleSnapshot()
	r := NewResponder()

	general := r.Generate(intent.Schedule, "schedule", snap)
	assert.Len(t, general.Schedules, maxGeneralSchedules)
	assert.Equal(t, "Here are 10 schedules (see table below):\n\n📎 3 attachment(s) available", general.Text)

	all := r.Generate(intent.ListSchedules, "list all schedules", snap)
	assert.Len(t, all.Schedules, 13)
	assert.Contains(t, all.Text, "(13 total)")
}
