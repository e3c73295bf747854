package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/findmyprof/findmyprof-chatbot-go/internal/config"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/directory"
	domerrors "github.com/findmyprof/findmyprof-chatbot-go/internal/errors"
)

// PostgreSQL keeps times and timestamps in native types; they are projected
// into the same shapes the SQLite tables store.
const (
	pgSelectSchedules = `SELECT id, professor_id, subject_id, classroom, day,
	to_char(time_start, 'HH24:MI'), to_char(time_end, 'HH24:MI'),
	section, semester, academic_year, description
	FROM schedules ORDER BY day, time_start, id`

	pgSelectAttachments = `SELECT id, schedule_id, file_name, file_path, file_type, file_size::bigint,
	description, EXTRACT(EPOCH FROM uploaded_at)::bigint
	FROM attachments ORDER BY uploaded_at DESC, id`
)

// PostgresDB reads the directory from the admin dashboard's PostgreSQL database.
type PostgresDB struct {
	pool *pgxpool.Pool
}

// OpenPostgres creates a connection pool for dsn and verifies it with a ping.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresDB, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres DSN: %w", err)
	}
	poolCfg.MaxConnLifetime = config.DatabaseConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}
	return &PostgresDB{pool: pool}, nil
}

// Close releases all pooled connections.
func (db *PostgresDB) Close() {
	db.pool.Close()
}

// Ping checks that the database is reachable.
func (db *PostgresDB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

// LoadDataset reads all four tables concurrently.
func (db *PostgresDB) LoadDataset(ctx context.Context) (*directory.Dataset, error) {
	var d directory.Dataset
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		d.Professors, err = collectAll(ctx, db.pool, TableProfessors, selectProfessors, scanProfessor)
		return err
	})
	g.Go(func() (err error) {
		d.Subjects, err = collectAll(ctx, db.pool, TableSubjects, selectSubjects, scanSubject)
		return err
	})
	g.Go(func() (err error) {
		d.Schedules, err = collectAll(ctx, db.pool, TableSchedules, pgSelectSchedules, scanSchedule)
		return err
	})
	g.Go(func() (err error) {
		d.Attachments, err = collectAll(ctx, db.pool, TableAttachments, pgSelectAttachments, scanAttachment)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &d, nil
}

func collectAll[T any](ctx context.Context, pool *pgxpool.Pool, table, query string, scan func(rowScanner) (T, error)) ([]T, error) {
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, domerrors.NewLoadError(config.SourcePostgres, table, err)
	}
	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (T, error) {
		return scan(row)
	})
	if err != nil {
		return nil, domerrors.NewLoadError(config.SourcePostgres, table, err)
	}
	return result, nil
}
