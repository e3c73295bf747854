package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot(t *testing.T) *Snapshot {
	t.Helper()
	return NewSnapshotFromDataset(Sample())
}

func TestSnapshotCounts(t *testing.T) {
	t.Parallel()
	snap := sampleSnapshot(t)
	assert.Equal(t, Counts{Professors: 5, Subjects: 9, Schedules: 13, Attachments: 3}, snap.Counts())

	empty := NewSnapshotFromDataset(nil)
	assert.Equal(t, Counts{}, empty.Counts())
}

func TestSnapshotFindProfessor(t *testing.T) {
	t.Parallel()
	snap := sampleSnapshot(t)

	tests := []struct {
		name   string
		query  string
		wantID int64
		found  bool
	}{
		{"By surname", "santos", 1, true},
		{"By full name", "Dr. Anna Reyes", 3, true},
		{"Typo", "Pedro Garsia", 4, true},
		{"By department returns first in order", "Mathematics", 2, true},
		{"Empty", "", 0, false},
		{"Unknown", "zzzzqqq", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, ok := snap.FindProfessor(tt.query)
			require.Equal(t, tt.found, ok)
			if ok {
				assert.Equal(t, tt.wantID, p.ID)
			}
		})
	}
}

func TestSnapshotSearchBySubject(t *testing.T) {
	t.Parallel()
	snap := sampleSnapshot(t)

	profs := snap.SearchBySubject("Database Systems")
	require.Len(t, profs, 1)
	assert.Equal(t, "Dr. Anna Reyes", profs[0].Name)

	profs = snap.SearchBySubject("MATH101")
	require.Len(t, profs, 1)
	assert.Equal(t, int64(2), profs[0].ID)

	assert.Empty(t, snap.SearchBySubject(""))
	assert.Empty(t, snap.SearchBySubject("Underwater Basket Weaving"))
}

func TestSnapshotFindSubject(t *testing.T) {
	t.Parallel()
	snap := sampleSnapshot(t)

	sub, ok := snap.FindSubject("Database Systems")
	require.True(t, ok)
	assert.Equal(t, "CS301", sub.Code)

	// Codes one edit apart resolve to the first subject in snapshot order.
	sub, ok = snap.FindSubject("cs301")
	require.True(t, ok)
	assert.Equal(t, "CS101", sub.Code)

	_, ok = snap.FindSubject("")
	assert.False(t, ok)
}

func TestSnapshotRelations(t *testing.T) {
	t.Parallel()
	snap := sampleSnapshot(t)

	assert.Len(t, snap.ProfessorSchedules(1), 5)
	assert.Len(t, snap.SubjectSchedules(4), 2)

	atts := snap.ProfessorAttachments(1)
	require.Len(t, atts, 2)
	assert.Equal(t, "cs101-syllabus.pdf", atts[0].FileName)

	assert.Empty(t, snap.ProfessorAttachments(2))
	assert.Len(t, snap.AttachmentsForSchedules(snap.SubjectSchedules(4)), 1)
	assert.Empty(t, snap.AttachmentsForSchedules(nil))

	sub, ok := snap.ScheduleSubject(3)
	require.True(t, ok)
	assert.Equal(t, "CS201", sub.Code)
}

func TestSnapshotDanglingReferences(t *testing.T) {
	t.Parallel()
	missing := int64(99)
	snap := NewSnapshot(
		[]Professor{{ID: 1, Name: "Dr. Solo", Department: "Physics"}},
		nil,
		[]Schedule{{ID: 1, ProfessorID: 42, SubjectID: &missing}},
		[]Attachment{{ID: 1, ScheduleID: 77, FileName: "orphan.pdf"}},
	)

	_, ok := snap.Subject(&missing)
	assert.False(t, ok)
	_, ok = snap.Professor(42)
	assert.False(t, ok)
	assert.Empty(t, snap.ProfessorAttachments(1))
	assert.Empty(t, snap.SearchBySubject("anything"))
}

func TestSubjectCreditsOrDefault(t *testing.T) {
	t.Parallel()
	four := 4
	assert.Equal(t, 4, Subject{Credits: &four}.CreditsOrDefault())
	assert.Equal(t, DefaultCredits, Subject{}.CreditsOrDefault())
}
