package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/findmyprof/findmyprof-chatbot-go/internal/config"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/directory"
	domerrors "github.com/findmyprof/findmyprof-chatbot-go/internal/errors"
)

// Row ordering matches what users see in list replies: professors by name,
// subjects by code, schedules by day then start time, newest attachments first.
const (
	selectProfessors = `SELECT id, name, department, contact, email, bio, office_location, image,
	expertise, specialization, education, experience, research_interests, publications
	FROM professors ORDER BY name, id`

	selectSubjects = `SELECT id, subject_code, subject_name, description, credits, professor_id
	FROM subjects ORDER BY subject_code, id`

	selectSchedules = `SELECT id, professor_id, subject_id, classroom, day, time_start, time_end,
	section, semester, academic_year, description
	FROM schedules ORDER BY day, time_start, id`

	selectAttachments = `SELECT id, schedule_id, file_name, file_path, file_type, file_size,
	description, uploaded_at
	FROM attachments ORDER BY uploaded_at DESC, id`
)

// rowScanner is satisfied by *sql.Rows and pgx.CollectableRow.
type rowScanner interface {
	Scan(dest ...any) error
}

// LoadDataset reads all four tables concurrently.
func (db *DB) LoadDataset(ctx context.Context) (*directory.Dataset, error) {
	var d directory.Dataset
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		d.Professors, err = queryAll(ctx, db.conn, TableProfessors, selectProfessors, scanProfessor)
		return err
	})
	g.Go(func() (err error) {
		d.Subjects, err = queryAll(ctx, db.conn, TableSubjects, selectSubjects, scanSubject)
		return err
	})
	g.Go(func() (err error) {
		d.Schedules, err = queryAll(ctx, db.conn, TableSchedules, selectSchedules, scanSchedule)
		return err
	})
	g.Go(func() (err error) {
		d.Attachments, err = queryAll(ctx, db.conn, TableAttachments, selectAttachments, scanAttachment)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Counts returns the number of rows per table.
func (db *DB) Counts(ctx context.Context) (directory.Counts, error) {
	var c directory.Counts
	targets := []struct {
		table string
		dest  *int
	}{
		{TableProfessors, &c.Professors},
		{TableSubjects, &c.Subjects},
		{TableSchedules, &c.Schedules},
		{TableAttachments, &c.Attachments},
	}
	for _, t := range targets {
		// Table names come from the constants above.
		query := "SELECT COUNT(*) FROM " + t.table //nolint:gosec
		if err := db.conn.QueryRowContext(ctx, query).Scan(t.dest); err != nil {
			return directory.Counts{}, fmt.Errorf("failed to count %s: %w", t.table, err)
		}
	}
	return c, nil
}

func queryAll[T any](ctx context.Context, conn *sql.DB, table, query string, scan func(rowScanner) (T, error)) ([]T, error) {
	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		return nil, domerrors.NewLoadError(config.SourceStorage, table, err)
	}
	defer func() { _ = rows.Close() }()

	var result []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, domerrors.NewLoadError(config.SourceStorage, table, err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, domerrors.NewLoadError(config.SourceStorage, table, err)
	}
	return result, nil
}

func scanProfessor(row rowScanner) (directory.Professor, error) {
	var p directory.Professor
	var contact, email, bio, office, image, expertise, specialization, education, experience, research, publications sql.NullString
	if err := row.Scan(
		&p.ID, &p.Name, &p.Department, &contact, &email, &bio, &office, &image,
		&expertise, &specialization, &education, &experience, &research, &publications,
	); err != nil {
		return p, err
	}
	p.Contact = contact.String
	p.Email = email.String
	p.Bio = bio.String
	p.OfficeLocation = office.String
	p.Image = image.String
	p.Expertise = expertise.String
	p.Specialization = specialization.String
	p.Education = education.String
	p.Experience = experience.String
	p.ResearchInterests = research.String
	p.Publications = publications.String
	return p, nil
}

func scanSubject(row rowScanner) (directory.Subject, error) {
	var s directory.Subject
	var description sql.NullString
	var credits, professorID sql.NullInt64
	if err := row.Scan(&s.ID, &s.Code, &s.Name, &description, &credits, &professorID); err != nil {
		return s, err
	}
	s.Description = description.String
	if credits.Valid {
		n := int(credits.Int64)
		s.Credits = &n
	}
	s.ProfessorID = int64Ptr(professorID)
	return s, nil
}

func scanSchedule(row rowScanner) (directory.Schedule, error) {
	var s directory.Schedule
	var subjectID sql.NullInt64
	var classroom, day, timeStart, timeEnd, section, semester, academicYear, description sql.NullString
	if err := row.Scan(
		&s.ID, &s.ProfessorID, &subjectID, &classroom, &day, &timeStart, &timeEnd,
		&section, &semester, &academicYear, &description,
	); err != nil {
		return s, err
	}
	s.SubjectID = int64Ptr(subjectID)
	s.Classroom = classroom.String
	s.Day = day.String
	s.TimeStart = timeStart.String
	s.TimeEnd = timeEnd.String
	s.Section = section.String
	s.Semester = semester.String
	s.AcademicYear = academicYear.String
	s.Description = description.String
	return s, nil
}

func scanAttachment(row rowScanner) (directory.Attachment, error) {
	var a directory.Attachment
	var fileType, description sql.NullString
	var fileSize sql.NullInt64
	var uploadedAt int64
	if err := row.Scan(&a.ID, &a.ScheduleID, &a.FileName, &a.FilePath, &fileType, &fileSize, &description, &uploadedAt); err != nil {
		return a, err
	}
	a.FileType = fileType.String
	a.FileSize = fileSize.Int64
	a.Description = description.String
	a.UploadedAt = time.Unix(uploadedAt, 0).UTC()
	return a, nil
}

func int64Ptr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

// nullString converts an empty string to sql.NullString
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullInt64(p *int64) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *p, Valid: true}
}
