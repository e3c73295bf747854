package app

import (
	"context"
	"fmt"

	"github.com/findmyprof/findmyprof-chatbot-go/internal/config"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/logger"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/r2client"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/snapshot"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/storage"
)

// newSource opens the snapshot source selected by cfg.Snapshot.Source.
// The returned closer releases its connections and is never nil.
func newSource(ctx context.Context, cfg *config.Config, log *logger.Logger) (snapshot.Source, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Snapshot.Source {
	case config.SourceStorage:
		db, err := storage.New(ctx, cfg.SQLitePath())
		if err != nil {
			return nil, noop, fmt.Errorf("database: %w", err)
		}
		log.WithField("path", cfg.SQLitePath()).Info("Database connected")
		return snapshot.NewDatabaseSource(config.SourceStorage, db), db.Close, nil

	case config.SourcePostgres:
		db, err := storage.OpenPostgres(ctx, cfg.Snapshot.PostgresDSN)
		if err != nil {
			return nil, noop, fmt.Errorf("postgres: %w", err)
		}
		log.Info("PostgreSQL connected")
		return snapshot.NewDatabaseSource(config.SourcePostgres, db), func() error { db.Close(); return nil }, nil

	case config.SourceFile:
		log.WithField("path", cfg.Snapshot.FilePath).Info("Using file snapshot source")
		return snapshot.NewFileSource(cfg.Snapshot.FilePath), noop, nil

	case config.SourceR2:
		client, err := r2client.New(ctx, r2client.Config{
			Endpoint:    r2client.EndpointForAccount(cfg.R2.AccountID),
			AccessKeyID: cfg.R2.AccessKeyID,
			SecretKey:   cfg.R2.SecretAccessKey,
			BucketName:  cfg.R2.BucketName,
		})
		if err != nil {
			return nil, noop, fmt.Errorf("r2: %w", err)
		}
		log.WithField("bucket", client.Bucket()).
			WithField("key", cfg.R2.SnapshotKey).
			Info("Using R2 snapshot source")
		return snapshot.NewR2Source(client, cfg.R2.SnapshotKey), noop, nil
	}

	return nil, noop, fmt.Errorf("unknown snapshot source %q", cfg.Snapshot.Source)
}
