//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"system_ai_service/internal/domain/ai"
	"system_ai_service/internal/domain/analysis"
	"system_ai_service/internal/domain/documents"
	"system_ai_service/internal/domain/files"
	"system_ai_service/internal/infrastructure/persistence"
	"system_ai_service/internal/infrastructure/persistence/models"
	"system_ai_service/internal/pkg/config"
	"system_ai_service/internal/pkg/testutil"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAIConnector is a testify mock for the model backend
type MockAIConnector struct {
	mock.Mock
}

func (m *MockAIConnector) Version(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockAIConnector) ListModels(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAIConnector) ResolveModel(ctx context.Context, preferred string) (string, error) {
	args := m.Called(ctx, preferred)
	return args.String(0), args.Error(1)
}

func (m *MockAIConnector) Generate(ctx context.Context, model, prompt string) (string, error) {
	args := m.Called(ctx, model, prompt)
	return args.String(0), args.Error(1)
}

var _ ai.Connector = (*MockAIConnector)(nil)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	FileScanService       files.FileScanService
	FileMetadataService   files.FileMetadataService
	CodeAnalysisService   analysis.CodeAnalysisService
	CodeReviewService     analysis.CodeReviewService
	DependencyAnalysisSvc analysis.DependencyAnalysisService
	TestAnalysisService   analysis.TestAnalysisService
	DocumentScanService   documents.DocumentScanService
	DocumentQuerySvc      documents.DocumentQueryService
	WatchService          files.WatchService

	FileRepo     files.FileMetaRepository
	ReportRepo   analysis.CodeReportRepository
	DocumentRepo documents.DocumentRepository

	Connector *MockAIConnector
}

// SetupTestServices wires all application services against an in-memory
// SQLite database and a mocked model backend.
func SetupTestServices(t *testing.T) *TestServices {
	t.Helper()

	db, err := persistence.NewDBConnection(config.DatabaseSettings{
		Type: config.SqliteDbType,
		DSN:  ":memory:",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = persistence.CloseDB(db)
	})

	err = db.AutoMigrate(&models.FileModel{}, &models.CodeReportModel{}, &models.DocumentModel{})
	require.NoError(t, err)

	logger := testutil.SetupTestLogger(t)
	connector := new(MockAIConnector)

	scanSettings := &config.ScanSettings{}
	ollamaSettings := &config.OllamaSettings{BaseURL: "http://localhost:11434"}
	watcherSettings := &config.WatcherSettings{CooldownSeconds: 1}

	fileRepo, err := persistence.NewGormFileMetaRepository(db, logger)
	require.NoError(t, err)
	reportRepo, err := persistence.NewGormCodeReportRepository(db, logger)
	require.NoError(t, err)
	documentRepo, err := persistence.NewGormDocumentRepository(db, logger)
	require.NoError(t, err)

	fileScanService, err := NewFileScanService(fileRepo, scanSettings, logger)
	require.NoError(t, err)
	fileMetadataService, err := NewFileMetadataService(fileRepo, logger)
	require.NoError(t, err)
	codeAnalysisService, err := NewCodeAnalysisService(reportRepo, scanSettings, logger)
	require.NoError(t, err)
	codeReviewService, err := NewCodeReviewService(connector, reportRepo, ollamaSettings, logger)
	require.NoError(t, err)
	dependencyAnalysisService, err := NewDependencyAnalysisService(logger)
	require.NoError(t, err)
	testAnalysisService, err := NewTestAnalysisService(scanSettings, logger)
	require.NoError(t, err)
	documentScanService, err := NewDocumentScanService(documentRepo, scanSettings, logger)
	require.NoError(t, err)
	documentQueryService, err := NewDocumentQueryService(documentRepo, connector, ollamaSettings, logger)
	require.NoError(t, err)
	watchService, err := NewWatchService(watcherSettings, fileScanService, codeAnalysisService, logger)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = watchService.Stop()
	})

	return &TestServices{
		FileScanService:       fileScanService,
		FileMetadataService:   fileMetadataService,
		CodeAnalysisService:   codeAnalysisService,
		CodeReviewService:     codeReviewService,
		DependencyAnalysisSvc: dependencyAnalysisService,
		TestAnalysisService:   testAnalysisService,
		DocumentScanService:   documentScanService,
		DocumentQuerySvc:      documentQueryService,
		WatchService:          watchService,
		FileRepo:              fileRepo,
		ReportRepo:            reportRepo,
		DocumentRepo:          documentRepo,
		Connector:             connector,
	}
}
