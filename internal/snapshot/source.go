// Package snapshot loads the professor directory from a configured source
// and keeps the in-memory directory.Store current.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/findmyprof/findmyprof-chatbot-go/internal/config"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/directory"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/r2client"
)

// ErrUnchanged is returned by a Source when the data has not changed since
// its previous successful Load. The Manager keeps the current snapshot.
var ErrUnchanged = errors.New("snapshot: source unchanged")

// Source produces a complete directory dataset.
type Source interface {
	Name() string
	Load(ctx context.Context) (*directory.Dataset, error)
}

// DatasetLoader is implemented by *storage.DB and *storage.PostgresDB.
type DatasetLoader interface {
	LoadDataset(ctx context.Context) (*directory.Dataset, error)
}

// DatabaseSource reads the directory tables through a DatasetLoader.
type DatabaseSource struct {
	name string
	db   DatasetLoader
}

// NewDatabaseSource wraps db. name is used in logs and metrics.
func NewDatabaseSource(name string, db DatasetLoader) *DatabaseSource {
	return &DatabaseSource{name: name, db: db}
}

func (s *DatabaseSource) Name() string { return s.name }

func (s *DatabaseSource) Load(ctx context.Context) (*directory.Dataset, error) {
	return s.db.LoadDataset(ctx)
}

// FileSource reads a JSON or YAML fixture. A trailing ".zst" marks a
// zstd-compressed file, e.g. "directory.yaml.zst".
type FileSource struct {
	path string
}

// NewFileSource returns a source for the fixture at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string { return config.SourceFile }

func (s *FileSource) Load(_ context.Context) (*directory.Dataset, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer func() { _ = f.Close() }()
	return DecodeDataset(f, s.path)
}

// DecodeDataset decodes a dataset from r, choosing the format from name's
// extensions.
func DecodeDataset(r io.Reader, name string) (*directory.Dataset, error) {
	lower := strings.ToLower(name)
	if trimmed, ok := strings.CutSuffix(lower, ".zst"); ok {
		rc, err := r2client.NewDecompressReader(r)
		if err != nil {
			return nil, err
		}
		defer func() { _ = rc.Close() }()
		r, lower = rc, trimmed
	}

	var d directory.Dataset
	switch filepath.Ext(lower) {
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(r).Decode(&d); err != nil {
			return nil, fmt.Errorf("decode yaml fixture: %w", err)
		}
	default:
		if err := json.NewDecoder(r).Decode(&d); err != nil {
			return nil, fmt.Errorf("decode json fixture: %w", err)
		}
	}
	return &d, nil
}

// ObjectDownloader is the subset of *r2client.Client used by R2Source.
type ObjectDownloader interface {
	DownloadIfChanged(ctx context.Context, key, etag string) (io.ReadCloser, string, error)
}

// R2Source reads a zstd-compressed JSON dataset from R2. Loads after the
// first return ErrUnchanged while the object's ETag stays the same.
type R2Source struct {
	client ObjectDownloader
	key    string

	mu   sync.Mutex
	etag string
}

// NewR2Source returns a source for the object key.
func NewR2Source(client ObjectDownloader, key string) *R2Source {
	return &R2Source{client: client, key: key}
}

func (s *R2Source) Name() string { return config.SourceR2 }

func (s *R2Source) Load(ctx context.Context) (*directory.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	body, etag, err := s.client.DownloadIfChanged(ctx, s.key, s.etag)
	if err != nil {
		if errors.Is(err, r2client.ErrNotModified) {
			return nil, ErrUnchanged
		}
		return nil, err
	}
	defer func() { _ = body.Close() }()

	var d directory.Dataset
	if err := r2client.DecodeJSON(body, &d); err != nil {
		return nil, err
	}
	s.etag = etag
	return &d, nil
}

// ETag returns the ETag of the last dataset loaded.
func (s *R2Source) ETag() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.etag
}
