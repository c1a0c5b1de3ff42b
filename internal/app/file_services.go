package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"system_ai_service/internal/domain/files"
	"system_ai_service/internal/pkg/config"
	"system_ai_service/internal/pkg/fsutil"
	"system_ai_service/internal/pkg/logger"

	"github.com/google/uuid"
)

// fileScanService implements the FileScanService interface for indexing files
type fileScanService struct {
	fileRepo files.FileMetaRepository
	settings *config.ScanSettings
	logger   logger.Logger
}

// NewFileScanService creates a new instance of FileScanService
func NewFileScanService(fileRepo files.FileMetaRepository, settings *config.ScanSettings, logger logger.Logger) (files.FileScanService, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scan settings: %w", err)
	}
	return &fileScanService{
		fileRepo: fileRepo,
		settings: settings,
		logger:   logger,
	}, nil
}

// resolveScanOptions fills zero fields of opts from the configured defaults
func resolveScanOptions(opts files.ScanOptions, settings *config.ScanSettings) files.ScanOptions {
	if len(opts.Extensions) == 0 {
		opts.Extensions = settings.Extensions
	}
	if len(opts.ExcludedDirs) == 0 {
		opts.ExcludedDirs = settings.ExcludedDirs
	}
	if opts.MaxFiles == 0 {
		opts.MaxFiles = settings.MaxFiles
	}
	if opts.MaxFileSize == 0 {
		opts.MaxFileSize = settings.MaxFileSize
	}
	return opts
}

// extensionAllowed reports whether ext passes the filter. An empty filter
// accepts every file that has an extension at all.
func extensionAllowed(ext string, filter []string) bool {
	if ext == "" {
		return false
	}
	if len(filter) == 0 {
		return true
	}
	for _, allowed := range filter {
		if strings.EqualFold(ext, allowed) {
			return true
		}
	}
	return false
}

// excludedDir reports whether the directory name is on the exclusion list
func excludedDir(name string, excluded []string) bool {
	for _, dir := range excluded {
		if name == dir {
			return true
		}
	}
	return false
}

func (s *fileScanService) Scan(ctx context.Context, dir string, opts files.ScanOptions) (*files.ScanResult, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to stat scan directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan target %s is not a directory", dir)
	}

	opts = resolveScanOptions(opts, s.settings)
	start := time.Now()
	result := &files.ScanResult{Directory: dir}

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			result.Skipped++
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && excludedDir(d.Name(), opts.ExcludedDirs) {
				return filepath.SkipDir
			}
			return nil
		}
		if result.Processed >= opts.MaxFiles {
			return filepath.SkipAll
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !extensionAllowed(ext, opts.Extensions) {
			result.Skipped++
			return nil
		}

		fileInfo, err := d.Info()
		if err != nil {
			result.Skipped++
			return nil
		}
		if fileInfo.Size() > opts.MaxFileSize {
			result.Skipped++
			return nil
		}

		if err := s.indexFile(ctx, path, fileInfo); err != nil {
			s.logger.Warn("Failed to index file ", path, ": ", err)
			result.Skipped++
			return nil
		}
		result.Processed++
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan of %s aborted: %w", dir, err)
	}

	result.Duration = time.Since(start)
	s.logger.Info("Scanned ", dir, ": ", result.Processed, " files indexed, ", result.Skipped, " skipped")
	return result, nil
}

func (s *fileScanService) ScanFile(ctx context.Context, path string) (*files.FileMeta, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	if err := s.indexFile(ctx, path, fileInfo); err != nil {
		return nil, err
	}
	return s.fileRepo.GetByPath(ctx, path)
}

// indexFile upserts the index entry for one file. Entries with an unchanged
// checksum only get their index timestamp refreshed.
func (s *fileScanService) indexFile(ctx context.Context, path string, info os.FileInfo) error {
	checksum, err := fsutil.Checksum(path)
	if err != nil {
		return fmt.Errorf("failed to compute checksum: %w", err)
	}

	now := time.Now()
	existing, err := s.fileRepo.GetByPath(ctx, path)
	switch {
	case err == nil:
		existing.Size = info.Size()
		existing.Checksum = checksum
		existing.DateTimeModified = info.ModTime()
		existing.DateTimeIndexed = now
		return s.fileRepo.UpdateByID(ctx, existing)

	case errors.Is(err, files.ErrFileNotFound):
		meta := &files.FileMeta{
			ID:               uuid.New().String(),
			Path:             path,
			Name:             filepath.Base(path),
			Extension:        strings.ToLower(filepath.Ext(path)),
			Size:             info.Size(),
			Checksum:         checksum,
			DateTimeModified: info.ModTime(),
			DateTimeIndexed:  now,
		}
		return s.fileRepo.Create(ctx, meta)

	default:
		return err
	}
}

// fileMetadataService implements the FileMetadataService interface for
// reading and pruning the file index
type fileMetadataService struct {
	fileRepo files.FileMetaRepository
	logger   logger.Logger
}

// NewFileMetadataService creates a new instance of FileMetadataService
func NewFileMetadataService(fileRepo files.FileMetaRepository, logger logger.Logger) (files.FileMetadataService, error) {
	return &fileMetadataService{
		fileRepo: fileRepo,
		logger:   logger,
	}, nil
}

func (s *fileMetadataService) List(ctx context.Context, query *files.FileMetaQuery) ([]*files.FileMeta, error) {
	if query == nil {
		query = files.NewFileMetaQuery()
	}
	return s.fileRepo.List(ctx, query)
}

func (s *fileMetadataService) GetByID(ctx context.Context, fileID string) (*files.FileMeta, error) {
	return s.fileRepo.GetByID(ctx, fileID)
}

func (s *fileMetadataService) DeleteByID(ctx context.Context, fileID string) error {
	return s.fileRepo.DeleteByID(ctx, fileID)
}
