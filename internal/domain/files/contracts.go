package files

import (
	"context"
	"errors"
	"time"
)

// ErrFileNotFound is returned when a file is not present in the index.
var ErrFileNotFound = errors.New("file not found in index")

// ScanOptions control a directory scan. Zero values fall back to the
// configured scan settings.
type ScanOptions struct {
	Extensions   []string
	ExcludedDirs []string
	MaxFiles     int
	MaxFileSize  int64
}

// ScanResult summarizes a completed directory scan.
type ScanResult struct {
	Directory string
	Processed int
	Skipped   int
	Duration  time.Duration
}

// FileScanService walks directory trees and keeps the file index current.
type FileScanService interface {
	// Scan indexes all matching files below dir. Files already indexed with
	// an unchanged checksum are refreshed in place rather than duplicated.
	Scan(ctx context.Context, dir string, opts ScanOptions) (*ScanResult, error)

	// ScanFile indexes a single file, used by the watcher on change events.
	ScanFile(ctx context.Context, path string) (*FileMeta, error)
}

// FileMetadataService defines read and delete operations over the file index.
type FileMetadataService interface {
	// List retrieves file metadata considering a query filter when set.
	List(ctx context.Context, query *FileMetaQuery) ([]*FileMeta, error)

	// GetByID retrieves file metadata by ID.
	GetByID(ctx context.Context, fileID string) (*FileMeta, error)

	// DeleteByID removes a file from the index by ID.
	DeleteByID(ctx context.Context, fileID string) error
}

// FileMetaRepository defines the interface for file index persistence.
type FileMetaRepository interface {
	// Create adds a new FileMeta to the database
	Create(ctx context.Context, file *FileMeta) error
	// List lists FileMetas in the database with optional filter
	List(ctx context.Context, query *FileMetaQuery) ([]*FileMeta, error)
	// GetByID retrieves a FileMeta from the database by ID
	GetByID(ctx context.Context, fileID string) (*FileMeta, error)
	// GetByPath retrieves a FileMeta from the database by absolute path
	GetByPath(ctx context.Context, path string) (*FileMeta, error)
	// UpdateByID updates a FileMeta in the database by ID
	UpdateByID(ctx context.Context, file *FileMeta) error
	// DeleteByID deletes a FileMeta in the database by ID
	DeleteByID(ctx context.Context, fileID string) error
	// Count returns the number of indexed files
	Count(ctx context.Context) (int64, error)
}

// WatchStatus describes the state of the directory watcher.
type WatchStatus struct {
	Running       bool
	Directory     string
	StartedAt     time.Time
	EventsHandled int64
}

// WatchService manages the lifecycle of the directory watcher that keeps
// the index current as files change on disk.
type WatchService interface {
	// Start begins watching dir recursively. Starting while a watch is
	// already running replaces the previous watch.
	Start(ctx context.Context, dir string) error

	// Stop terminates the active watch. Stopping an idle service is a no-op.
	Stop() error

	// Status reports the current watcher state.
	Status() WatchStatus
}
