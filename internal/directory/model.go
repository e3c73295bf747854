// Package directory holds the professor directory entities and the
// in-memory snapshot that every chat request reads from.
package directory

import "time"

// Professor is a faculty member. Optional text fields are empty when unknown.
type Professor struct {
	ID                int64  `json:"id" yaml:"id"`
	Name              string `json:"name" yaml:"name"`
	Department        string `json:"department" yaml:"department"`
	Contact           string `json:"contact,omitempty" yaml:"contact"`
	Email             string `json:"email,omitempty" yaml:"email"`
	Bio               string `json:"bio,omitempty" yaml:"bio"`
	OfficeLocation    string `json:"office_location,omitempty" yaml:"office_location"`
	Image             string `json:"image,omitempty" yaml:"image"`
	Expertise         string `json:"expertise,omitempty" yaml:"expertise"`
	Specialization    string `json:"specialization,omitempty" yaml:"specialization"`
	Education         string `json:"education,omitempty" yaml:"education"`
	Experience        string `json:"experience,omitempty" yaml:"experience"`
	ResearchInterests string `json:"research_interests,omitempty" yaml:"research_interests"`
	Publications      string `json:"publications,omitempty" yaml:"publications"`
}

// Subject is a course offering. Credits is nil when unknown.
type Subject struct {
	ID          int64  `json:"id" yaml:"id"`
	Code        string `json:"subject_code" yaml:"subject_code"`
	Name        string `json:"subject_name" yaml:"subject_name"`
	Description string `json:"description,omitempty" yaml:"description"`
	Credits     *int   `json:"credits,omitempty" yaml:"credits"`
	ProfessorID *int64 `json:"professor_id,omitempty" yaml:"professor_id"`
}

// DefaultCredits is shown for subjects without a credit count.
const DefaultCredits = 3

// CreditsOrDefault returns Credits, or DefaultCredits when unset.
func (s Subject) CreditsOrDefault() int {
	if s.Credits == nil {
		return DefaultCredits
	}
	return *s.Credits
}

// Schedule is one class meeting. A schedule with no subject, day or time is
// a placeholder whose only purpose is to carry attachments for a professor.
type Schedule struct {
	ID           int64  `json:"id" yaml:"id"`
	ProfessorID  int64  `json:"professor_id" yaml:"professor_id"`
	SubjectID    *int64 `json:"subject_id,omitempty" yaml:"subject_id"`
	Classroom    string `json:"classroom,omitempty" yaml:"classroom"`
	Day          string `json:"day,omitempty" yaml:"day"`
	TimeStart    string `json:"time_start,omitempty" yaml:"time_start"`
	TimeEnd      string `json:"time_end,omitempty" yaml:"time_end"`
	Section      string `json:"section,omitempty" yaml:"section"`
	Semester     string `json:"semester,omitempty" yaml:"semester"`
	AcademicYear string `json:"academic_year,omitempty" yaml:"academic_year"`
	Description  string `json:"description,omitempty" yaml:"description"`
}

// HasSubject reports whether the schedule references subjectID.
func (s Schedule) HasSubject(subjectID int64) bool {
	return s.SubjectID != nil && *s.SubjectID == subjectID
}

// HasTimes reports whether both start and end times are set.
func (s Schedule) HasTimes() bool {
	return s.TimeStart != "" && s.TimeEnd != ""
}

// Attachment is a course material file bound to a schedule.
type Attachment struct {
	ID          int64     `json:"id" yaml:"id"`
	ScheduleID  int64     `json:"schedule_id" yaml:"schedule_id"`
	FileName    string    `json:"file_name" yaml:"file_name"`
	FilePath    string    `json:"file_path" yaml:"file_path"`
	FileType    string    `json:"file_type,omitempty" yaml:"file_type"`
	FileSize    int64     `json:"file_size,omitempty" yaml:"file_size"`
	Description string    `json:"description,omitempty" yaml:"description"`
	UploadedAt  time.Time `json:"uploaded_at" yaml:"uploaded_at"`
}

// Dataset is the raw content of one directory load, before indexing.
type Dataset struct {
	Professors  []Professor  `json:"professors" yaml:"professors"`
	Subjects    []Subject    `json:"subjects" yaml:"subjects"`
	Schedules   []Schedule   `json:"schedules" yaml:"schedules"`
	Attachments []Attachment `json:"attachments" yaml:"attachments"`
}

// Counts reports the number of entities per kind.
type Counts struct {
	Professors  int `json:"professors_loaded"`
	Subjects    int `json:"subjects_loaded"`
	Schedules   int `json:"schedules_loaded"`
	Attachments int `json:"attachments_loaded"`
}
