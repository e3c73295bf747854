package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/findmyprof/findmyprof-chatbot-go/internal/directory"
)

const (
	insertProfessor = `INSERT INTO professors (id, name, department, contact, email, bio, office_location, image,
	expertise, specialization, education, experience, research_interests, publications)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	insertSubject = `INSERT INTO subjects (id, subject_code, subject_name, description, credits, professor_id)
	VALUES (?, ?, ?, ?, ?, ?)`

	insertSchedule = `INSERT INTO schedules (id, professor_id, subject_id, classroom, day, time_start, time_end,
	section, semester, academic_year, description)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	insertAttachment = `INSERT INTO attachments (id, schedule_id, file_name, file_path, file_type, file_size,
	description, uploaded_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
)

// SaveDataset replaces the whole directory with d in a single transaction.
// Readers see either the previous content or the new one.
func (db *DB) SaveDataset(ctx context.Context, d *directory.Dataset) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Children first so foreign keys never dangle.
	for _, table := range []string{TableAttachments, TableSchedules, TableSubjects, TableProfessors} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil { //nolint:gosec
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if err := insertEach(ctx, tx, TableProfessors, insertProfessor, d.Professors, func(p directory.Professor) []any {
		return []any{
			p.ID, p.Name, p.Department, nullString(p.Contact), nullString(p.Email), nullString(p.Bio),
			nullString(p.OfficeLocation), nullString(p.Image), nullString(p.Expertise),
			nullString(p.Specialization), nullString(p.Education), nullString(p.Experience),
			nullString(p.ResearchInterests), nullString(p.Publications),
		}
	}); err != nil {
		return err
	}

	if err := insertEach(ctx, tx, TableSubjects, insertSubject, d.Subjects, func(s directory.Subject) []any {
		var credits sql.NullInt64
		if s.Credits != nil {
			credits = sql.NullInt64{Int64: int64(*s.Credits), Valid: true}
		}
		return []any{s.ID, s.Code, s.Name, nullString(s.Description), credits, nullInt64(s.ProfessorID)}
	}); err != nil {
		return err
	}

	if err := insertEach(ctx, tx, TableSchedules, insertSchedule, d.Schedules, func(s directory.Schedule) []any {
		return []any{
			s.ID, s.ProfessorID, nullInt64(s.SubjectID), nullString(s.Classroom), nullString(s.Day),
			nullString(s.TimeStart), nullString(s.TimeEnd), nullString(s.Section), nullString(s.Semester),
			nullString(s.AcademicYear), nullString(s.Description),
		}
	}); err != nil {
		return err
	}

	if err := insertEach(ctx, tx, TableAttachments, insertAttachment, d.Attachments, func(a directory.Attachment) []any {
		var size sql.NullInt64
		if a.FileSize > 0 {
			size = sql.NullInt64{Int64: a.FileSize, Valid: true}
		}
		return []any{
			a.ID, a.ScheduleID, a.FileName, a.FilePath, nullString(a.FileType), size,
			nullString(a.Description), a.UploadedAt.Unix(),
		}
	}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func insertEach[T any](ctx context.Context, tx *sql.Tx, table, query string, items []T, args func(T) []any) error {
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare %s insert: %w", table, err)
	}
	defer func() { _ = stmt.Close() }()

	for i, item := range items {
		if _, err := stmt.ExecContext(ctx, args(item)...); err != nil {
			return fmt.Errorf("failed to insert %s row %d: %w", table, i, err)
		}
	}
	return nil
}
