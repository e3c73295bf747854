package directory

import (
	"time"

	"github.com/findmyprof/findmyprof-chatbot-go/internal/stringutil"
)

// Snapshot is an immutable, indexed view of the directory.
// Every accessor returns data shared with other readers; callers must not
// modify returned slices.
type Snapshot struct {
	professors  []Professor
	subjects    []Subject
	schedules   []Schedule
	attachments []Attachment

	professorByID map[int64]int
	subjectByID   map[int64]int
	scheduleByID  map[int64]int

	version  uint64
	loadedAt time.Time
}

// NewSnapshot indexes the given records. The slices are retained as-is.
func NewSnapshot(professors []Professor, subjects []Subject, schedules []Schedule, attachments []Attachment) *Snapshot {
	s := &Snapshot{
		professors:    professors,
		subjects:      subjects,
		schedules:     schedules,
		attachments:   attachments,
		professorByID: make(map[int64]int, len(professors)),
		subjectByID:   make(map[int64]int, len(subjects)),
		scheduleByID:  make(map[int64]int, len(schedules)),
		loadedAt:      time.Now(),
	}
	for i, p := range professors {
		if _, dup := s.professorByID[p.ID]; !dup {
			s.professorByID[p.ID] = i
		}
	}
	for i, sub := range subjects {
		if _, dup := s.subjectByID[sub.ID]; !dup {
			s.subjectByID[sub.ID] = i
		}
	}
	for i, sc := range schedules {
		if _, dup := s.scheduleByID[sc.ID]; !dup {
			s.scheduleByID[sc.ID] = i
		}
	}
	return s
}

// NewSnapshotFromDataset is NewSnapshot for a loaded Dataset.
func NewSnapshotFromDataset(d *Dataset) *Snapshot {
	if d == nil {
		return NewSnapshot(nil, nil, nil, nil)
	}
	return NewSnapshot(d.Professors, d.Subjects, d.Schedules, d.Attachments)
}

func (s *Snapshot) Professors() []Professor   { return s.professors }
func (s *Snapshot) Subjects() []Subject       { return s.subjects }
func (s *Snapshot) Schedules() []Schedule     { return s.schedules }
func (s *Snapshot) Attachments() []Attachment { return s.attachments }

// Version is the store generation that installed this snapshot (0 before any refresh).
func (s *Snapshot) Version() uint64 { return s.version }

// LoadedAt is when the snapshot was built.
func (s *Snapshot) LoadedAt() time.Time { return s.loadedAt }

// Counts returns the entity totals.
func (s *Snapshot) Counts() Counts {
	return Counts{
		Professors:  len(s.professors),
		Subjects:    len(s.subjects),
		Schedules:   len(s.schedules),
		Attachments: len(s.attachments),
	}
}

// Professor looks up a professor by id.
func (s *Snapshot) Professor(id int64) (*Professor, bool) {
	i, ok := s.professorByID[id]
	if !ok {
		return nil, false
	}
	return &s.professors[i], true
}

// Subject looks up a subject by id. A nil id is never found.
func (s *Snapshot) Subject(id *int64) (*Subject, bool) {
	if id == nil {
		return nil, false
	}
	i, ok := s.subjectByID[*id]
	if !ok {
		return nil, false
	}
	return &s.subjects[i], true
}

// ScheduleProfessorID resolves the professor that owns a schedule.
func (s *Snapshot) ScheduleProfessorID(scheduleID int64) (int64, bool) {
	i, ok := s.scheduleByID[scheduleID]
	if !ok {
		return 0, false
	}
	return s.schedules[i].ProfessorID, true
}

// ScheduleSubject resolves the subject of the schedule with the given id.
func (s *Snapshot) ScheduleSubject(scheduleID int64) (*Subject, bool) {
	i, ok := s.scheduleByID[scheduleID]
	if !ok {
		return nil, false
	}
	return s.Subject(s.schedules[i].SubjectID)
}

// FindProfessor returns the first professor, in snapshot order, whose name
// or department fuzzy-matches query. An empty query never matches.
func (s *Snapshot) FindProfessor(query string) (*Professor, bool) {
	if query == "" {
		return nil, false
	}
	for i := range s.professors {
		p := &s.professors[i]
		if stringutil.FuzzyMatch(p.Name, query) || stringutil.FuzzyMatch(p.Department, query) {
			return p, true
		}
	}
	return nil, false
}

// FindSubject returns the first subject whose name or code fuzzy-matches query.
func (s *Snapshot) FindSubject(query string) (*Subject, bool) {
	if query == "" {
		return nil, false
	}
	for i := range s.subjects {
		sub := &s.subjects[i]
		if stringutil.FuzzyMatch(sub.Name, query) || stringutil.FuzzyMatch(sub.Code, query) {
			return sub, true
		}
	}
	return nil, false
}

// SearchBySubject returns the professors, in snapshot order, who teach at
// least one schedule of a subject whose name or code fuzzy-matches query.
func (s *Snapshot) SearchBySubject(query string) []Professor {
	if query == "" {
		return nil
	}

	matched := make(map[int64]struct{})
	for _, sub := range s.subjects {
		if stringutil.FuzzyMatch(sub.Name, query) || stringutil.FuzzyMatch(sub.Code, query) {
			matched[sub.ID] = struct{}{}
		}
	}
	if len(matched) == 0 {
		return nil
	}

	teaching := make(map[int64]struct{})
	for _, sc := range s.schedules {
		if sc.SubjectID == nil {
			continue
		}
		if _, ok := matched[*sc.SubjectID]; ok {
			teaching[sc.ProfessorID] = struct{}{}
		}
	}

	var result []Professor
	for _, p := range s.professors {
		if _, ok := teaching[p.ID]; ok {
			result = append(result, p)
		}
	}
	return result
}

// ProfessorSchedules returns the schedules owned by the professor, in snapshot order.
func (s *Snapshot) ProfessorSchedules(professorID int64) []Schedule {
	var result []Schedule
	for _, sc := range s.schedules {
		if sc.ProfessorID == professorID {
			result = append(result, sc)
		}
	}
	return result
}

// SubjectSchedules returns the schedules that reference the subject.
func (s *Snapshot) SubjectSchedules(subjectID int64) []Schedule {
	var result []Schedule
	for _, sc := range s.schedules {
		if sc.HasSubject(subjectID) {
			result = append(result, sc)
		}
	}
	return result
}

// ProfessorAttachments returns attachments whose schedule belongs to the professor.
// Attachments pointing at unknown schedules are skipped.
func (s *Snapshot) ProfessorAttachments(professorID int64) []Attachment {
	var result []Attachment
	for _, a := range s.attachments {
		if owner, ok := s.ScheduleProfessorID(a.ScheduleID); ok && owner == professorID {
			result = append(result, a)
		}
	}
	return result
}

// AttachmentsForSchedules returns attachments bound to any of the given schedules.
func (s *Snapshot) AttachmentsForSchedules(schedules []Schedule) []Attachment {
	if len(schedules) == 0 {
		return nil
	}
	ids := make(map[int64]struct{}, len(schedules))
	for _, sc := range schedules {
		ids[sc.ID] = struct{}{}
	}
	var result []Attachment
	for _, a := range s.attachments {
		if _, ok := ids[a.ScheduleID]; ok {
			result = append(result, a)
		}
	}
	return result
}
