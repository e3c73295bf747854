package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// Table names, also used as metric and error labels.
const (
	TableProfessors  = "professors"
	TableSubjects    = "subjects"
	TableSchedules   = "schedules"
	TableAttachments = "attachments"
)

// InitSchema creates all tables and indexes. It is idempotent.
func InitSchema(ctx context.Context, db *sql.DB) error {
	steps := []struct {
		table string
		ddl   string
	}{
		{TableProfessors, professorsDDL},
		{TableSubjects, subjectsDDL},
		{TableSchedules, schedulesDDL},
		{TableAttachments, attachmentsDDL},
	}
	for _, s := range steps {
		if _, err := db.ExecContext(ctx, s.ddl); err != nil {
			return fmt.Errorf("failed to create %s table: %w", s.table, err)
		}
	}
	return nil
}

const professorsDDL = `
CREATE TABLE IF NOT EXISTS professors (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	department TEXT NOT NULL,
	contact TEXT,
	email TEXT,
	bio TEXT,
	office_location TEXT,
	image TEXT,
	expertise TEXT,
	specialization TEXT,
	education TEXT,
	experience TEXT,
	research_interests TEXT,
	publications TEXT
);
CREATE INDEX IF NOT EXISTS idx_professors_name ON professors(name);
CREATE INDEX IF NOT EXISTS idx_professors_department ON professors(department);
`

const subjectsDDL = `
CREATE TABLE IF NOT EXISTS subjects (
	id INTEGER PRIMARY KEY,
	subject_code TEXT NOT NULL,
	subject_name TEXT NOT NULL,
	professor_id INTEGER REFERENCES professors(id) ON DELETE SET NULL,
	description TEXT,
	credits INTEGER
);
CREATE INDEX IF NOT EXISTS idx_subjects_code ON subjects(subject_code);
CREATE INDEX IF NOT EXISTS idx_subjects_professor ON subjects(professor_id);
`

// Schedule times are stored as "HH:MM" text so they sort lexically.
const schedulesDDL = `
CREATE TABLE IF NOT EXISTS schedules (
	id INTEGER PRIMARY KEY,
	professor_id INTEGER NOT NULL REFERENCES professors(id) ON DELETE CASCADE,
	subject_id INTEGER REFERENCES subjects(id) ON DELETE SET NULL,
	classroom TEXT,
	day TEXT,
	time_start TEXT,
	time_end TEXT,
	section TEXT,
	semester TEXT,
	academic_year TEXT,
	description TEXT
);
CREATE INDEX IF NOT EXISTS idx_schedules_professor ON schedules(professor_id);
CREATE INDEX IF NOT EXISTS idx_schedules_subject ON schedules(subject_id);
CREATE INDEX IF NOT EXISTS idx_schedules_day ON schedules(day, time_start);
`

// uploaded_at is a Unix timestamp in seconds.
const attachmentsDDL = `
CREATE TABLE IF NOT EXISTS attachments (
	id INTEGER PRIMARY KEY,
	schedule_id INTEGER NOT NULL REFERENCES schedules(id) ON DELETE CASCADE,
	file_name TEXT NOT NULL,
	file_path TEXT NOT NULL,
	file_type TEXT,
	file_size INTEGER,
	description TEXT,
	uploaded_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_attachments_schedule ON attachments(schedule_id);
CREATE INDEX IF NOT EXISTS idx_attachments_uploaded_at ON attachments(uploaded_at);
`
