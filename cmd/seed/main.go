// Command seed loads a directory fixture into the SQLite database and can
// publish it as the compressed snapshot object that R2-backed servers poll.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/findmyprof/findmyprof-chatbot-go/internal/config"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/directory"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/logger"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/r2client"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/snapshot"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/storage"
)

// CLI flags
var (
	fixtureFlag = flag.String("fixture", "", "JSON or YAML fixture to load (.zst compressed allowed)")
	dbFlag      = flag.String("db", "", "SQLite database path (default: DATA_DIR/findmyprof.db)")
	skipDBFlag  = flag.Bool("skip-db", false, "Do not write the SQLite database")
	publishFlag = flag.Bool("publish", false, "Upload the dataset to R2 as a compressed snapshot")
	timeoutFlag = flag.Duration("timeout", 2*time.Minute, "Overall timeout")
)

type options struct {
	fixture string
	dbPath  string
	skipDB  bool
	publish bool
}

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel).WithModule("seed")

	opts := options{
		fixture: *fixtureFlag,
		dbPath:  *dbFlag,
		skipDB:  *skipDBFlag,
		publish: *publishFlag,
	}
	if opts.dbPath == "" {
		opts.dbPath = cfg.SQLitePath()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeoutFlag)
	defer cancel()

	var publisher snapshotPublisher
	if opts.publish {
		if !cfg.R2.Configured() {
			log.Error("R2 is not configured; set the R2_* environment variables")
			os.Exit(1)
		}
		client, err := r2client.New(ctx, r2client.Config{
			Endpoint:    r2client.EndpointForAccount(cfg.R2.AccountID),
			AccessKeyID: cfg.R2.AccessKeyID,
			SecretKey:   cfg.R2.SecretAccessKey,
			BucketName:  cfg.R2.BucketName,
		})
		if err != nil {
			log.WithError(err).Error("Failed to create R2 client")
			os.Exit(1)
		}
		publisher = r2Publisher{client: client, key: cfg.R2.SnapshotKey}
	}

	start := time.Now()
	counts, err := run(ctx, opts, publisher, log)
	if err != nil {
		log.WithError(err).Error("Seed failed")
		os.Exit(1)
	}

	log.WithField("professors", counts.Professors).
		WithField("subjects", counts.Subjects).
		WithField("schedules", counts.Schedules).
		WithField("attachments", counts.Attachments).
		WithField("duration", time.Since(start).Round(time.Millisecond)).
		Info("Seed complete")
}

// snapshotPublisher uploads an encoded dataset.
type snapshotPublisher interface {
	Publish(ctx context.Context, d *directory.Dataset) (string, error)
}

type r2Publisher struct {
	client *r2client.Client
	key    string
}

func (p r2Publisher) Publish(ctx context.Context, d *directory.Dataset) (string, error) {
	data, err := r2client.EncodeJSON(d)
	if err != nil {
		return "", err
	}
	return p.client.Upload(ctx, p.key, bytes.NewReader(data), r2client.ContentTypeZstdJSON)
}

// run decodes and validates the fixture, then writes it to the database and
// publishes it as requested.
func run(ctx context.Context, opts options, publisher snapshotPublisher, log *logger.Logger) (directory.Counts, error) {
	if opts.fixture == "" {
		return directory.Counts{}, errors.New("-fixture is required")
	}
	if opts.skipDB && publisher == nil {
		return directory.Counts{}, errors.New("nothing to do: -skip-db without -publish")
	}

	d, err := loadFixture(opts.fixture)
	if err != nil {
		return directory.Counts{}, err
	}
	if err := validateDataset(d); err != nil {
		return directory.Counts{}, fmt.Errorf("invalid fixture: %w", err)
	}
	counts := directory.NewSnapshotFromDataset(d).Counts()
	log.WithField("fixture", opts.fixture).
		WithField("professors", counts.Professors).
		Info("Fixture loaded")

	if !opts.skipDB {
		db, err := storage.New(ctx, opts.dbPath)
		if err != nil {
			return counts, fmt.Errorf("open database: %w", err)
		}
		defer func() { _ = db.Close() }()

		if err := db.SaveDataset(ctx, d); err != nil {
			return counts, fmt.Errorf("save dataset: %w", err)
		}
		log.WithField("path", opts.dbPath).Info("Database written")
	}

	if publisher != nil {
		etag, err := publisher.Publish(ctx, d)
		if err != nil {
			return counts, fmt.Errorf("publish snapshot: %w", err)
		}
		log.WithField("etag", etag).Info("Snapshot published")
	}

	return counts, nil
}

func loadFixture(path string) (*directory.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer func() { _ = f.Close() }()
	return snapshot.DecodeDataset(f, path)
}

// validateDataset reports duplicate IDs and references to missing records.
func validateDataset(d *directory.Dataset) error {
	var errs []error

	professors := make(map[int64]bool, len(d.Professors))
	for _, p := range d.Professors {
		if professors[p.ID] {
			errs = append(errs, fmt.Errorf("duplicate professor id %d", p.ID))
		}
		professors[p.ID] = true
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("professor %d has no name", p.ID))
		}
	}

	subjects := make(map[int64]bool, len(d.Subjects))
	for _, s := range d.Subjects {
		if subjects[s.ID] {
			errs = append(errs, fmt.Errorf("duplicate subject id %d", s.ID))
		}
		subjects[s.ID] = true
		if s.ProfessorID != nil && !professors[*s.ProfessorID] {
			errs = append(errs, fmt.Errorf("subject %d references unknown professor %d", s.ID, *s.ProfessorID))
		}
	}

	schedules := make(map[int64]bool, len(d.Schedules))
	for _, s := range d.Schedules {
		if schedules[s.ID] {
			errs = append(errs, fmt.Errorf("duplicate schedule id %d", s.ID))
		}
		schedules[s.ID] = true
		if !professors[s.ProfessorID] {
			errs = append(errs, fmt.Errorf("schedule %d references unknown professor %d", s.ID, s.ProfessorID))
		}
		if s.SubjectID != nil && !subjects[*s.SubjectID] {
			errs = append(errs, fmt.Errorf("schedule %d references unknown subject %d", s.ID, *s.SubjectID))
		}
	}

	for _, a := range d.Attachments {
		if !schedules[a.ScheduleID] {
			errs = append(errs, fmt.Errorf("attachment %d references unknown schedule %d", a.ID, a.ScheduleID))
		}
	}

	return errors.Join(errs...)
}
