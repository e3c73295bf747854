package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/findmyprof/findmyprof-chatbot-go/internal/directory"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/logger"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/storage"
)

type fakePublisher struct {
	got *directory.Dataset
	err error
}

func (p *fakePublisher) Publish(_ context.Context, d *directory.Dataset) (string, error) {
	p.got = d
	return "etag-1", p.err
}

func writeFixture(t *testing.T, d *directory.Dataset) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "directory.json")
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func testLogger() *logger.Logger {
	return logger.NewWithWriter("error", io.Discard)
}

func TestRunWritesDatabase(t *testing.T) {
	t.Parallel()
	dbPath := filepath.Join(t.TempDir(), "data", "findmyprof.db")
	opts := options{fixture: writeFixture(t, directory.Sample()), dbPath: dbPath}

	counts, err := run(context.Background(), opts, nil, testLogger())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := directory.Counts{Professors: 5, Subjects: 9, Schedules: 13, Attachments: 3}
	if counts != want {
		t.Errorf("counts = %+v, want %+v", counts, want)
	}

	db, err := storage.New(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("reopen database: %v", err)
	}
	defer func() { _ = db.Close() }()
	stored, err := db.Counts(context.Background())
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if stored != want {
		t.Errorf("stored counts = %+v, want %+v", stored, want)
	}
}

func TestRunYAMLFixture(t *testing.T) {
	t.Parallel()
	opts := options{
		fixture: filepath.Join("testdata", "directory.yaml"),
		dbPath:  filepath.Join(t.TempDir(), "findmyprof.db"),
	}

	counts, err := run(context.Background(), opts, nil, testLogger())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if counts.Professors != 2 || counts.Subjects != 2 || counts.Schedules != 2 || counts.Attachments != 1 {
		t.Errorf("unexpected counts %+v", counts)
	}
}

func TestRunPublishOnly(t *testing.T) {
	t.Parallel()
	pub := &fakePublisher{}
	opts := options{fixture: writeFixture(t, directory.Sample()), skipDB: true, publish: true}

	if _, err := run(context.Background(), opts, pub, testLogger()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if pub.got == nil || len(pub.got.Professors) != 5 {
		t.Errorf("expected the sample dataset to be published, got %+v", pub.got)
	}
}

func TestRunErrors(t *testing.T) {
	t.Parallel()

	broken := directory.Sample()
	broken.Schedules[0].ProfessorID = 99

	tests := []struct {
		name    string
		opts    func(t *testing.T) options
		pub     snapshotPublisher
		wantErr string
	}{
		{
			name:    "missing fixture flag",
			opts:    func(*testing.T) options { return options{} },
			wantErr: "-fixture is required",
		},
		{
			name: "nothing to do",
			opts: func(t *testing.T) options {
				return options{fixture: writeFixture(t, directory.Sample()), skipDB: true}
			},
			wantErr: "nothing to do",
		},
		{
			name: "fixture not found",
			opts: func(t *testing.T) options {
				return options{fixture: filepath.Join(t.TempDir(), "missing.json"), skipDB: true}
			},
			pub:     &fakePublisher{},
			wantErr: "open fixture",
		},
		{
			name: "dangling reference",
			opts: func(t *testing.T) options {
				return options{fixture: writeFixture(t, broken), skipDB: true}
			},
			pub:     &fakePublisher{},
			wantErr: "unknown professor 99",
		},
		{
			name: "publish failure",
			opts: func(t *testing.T) options {
				return options{fixture: writeFixture(t, directory.Sample()), skipDB: true}
			},
			pub:     &fakePublisher{err: errors.New("bucket gone")},
			wantErr: "bucket gone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := run(context.Background(), tt.opts(t), tt.pub, testLogger())
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("run() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDataset(t *testing.T) {
	t.Parallel()

	if err := validateDataset(directory.Sample()); err != nil {
		t.Fatalf("sample dataset should be valid: %v", err)
	}

	pid := int64(42)
	sid := int64(77)
	d := &directory.Dataset{
		Professors: []directory.Professor{{ID: 1, Name: "A"}, {ID: 1, Name: ""}},
		Subjects:   []directory.Subject{{ID: 1, ProfessorID: &pid}},
		Schedules:  []directory.Schedule{{ID: 1, ProfessorID: 1, SubjectID: &sid}},
		Attachments: []directory.Attachment{
			{ID: 1, ScheduleID: 9},
		},
	}
	err := validateDataset(d)
	if err == nil {
		t.Fatal("expected validation errors")
	}
	for _, want := range []string{
		"duplicate professor id 1",
		"professor 1 has no name",
		"subject 1 references unknown professor 42",
		"schedule 1 references unknown subject 77",
		"attachment 1 references unknown schedule 9",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err, want)
		}
	}
}
