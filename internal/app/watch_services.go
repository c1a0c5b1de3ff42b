package app

import (
	"context"
	"path/filepath"
	"strings"

	"system_ai_service/internal/domain/analysis"
	"system_ai_service/internal/domain/files"
	"system_ai_service/internal/infrastructure/watcher"
	"system_ai_service/internal/pkg/config"
	"system_ai_service/internal/pkg/logger"
)

// watchService implements the WatchService interface. Change events re-index
// the file and, for recognized source files, refresh the code report.
type watchService struct {
	watcher         *watcher.Watcher
	scanService     files.FileScanService
	analysisService analysis.CodeAnalysisService
	logger          logger.Logger
}

// NewWatchService creates a new instance of WatchService
func NewWatchService(settings *config.WatcherSettings, scanService files.FileScanService, analysisService analysis.CodeAnalysisService, logger logger.Logger) (files.WatchService, error) {
	s := &watchService{
		scanService:     scanService,
		analysisService: analysisService,
		logger:          logger,
	}

	w, err := watcher.New(settings, s.handleChange, logger)
	if err != nil {
		return nil, err
	}
	s.watcher = w
	return s, nil
}

func (s *watchService) Start(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.watcher.Start(dir)
}

func (s *watchService) Stop() error {
	return s.watcher.Stop()
}

func (s *watchService) Status() files.WatchStatus {
	directory, startedAt, events := s.watcher.Stats()
	return files.WatchStatus{
		Running:       s.watcher.IsRunning(),
		Directory:     directory,
		StartedAt:     startedAt,
		EventsHandled: events,
	}
}

// handleChange is invoked by the watcher for each debounced change event.
func (s *watchService) handleChange(path string) {
	ctx := context.Background()

	if _, err := s.scanService.ScanFile(ctx, path); err != nil {
		s.logger.Warn("Failed to re-index changed file ", path, ": ", err)
		return
	}
	s.logger.Info("Re-indexed changed file ", path)

	if analysis.IsSupportedExtension(strings.ToLower(filepath.Ext(path))) {
		if _, err := s.analysisService.AnalyzeFile(ctx, path); err != nil {
			s.logger.Warn("Failed to refresh code report for ", path, ": ", err)
		}
	}
}
