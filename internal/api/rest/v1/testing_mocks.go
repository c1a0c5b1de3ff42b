//go:build unit
// +build unit

package v1

import (
	"context"

	"system_ai_service/internal/domain/analysis"
	"system_ai_service/internal/domain/documents"
	"system_ai_service/internal/domain/files"

	"github.com/stretchr/testify/mock"
)

// MockFileScanService is a mock implementation of FileScanService
type MockFileScanService struct {
	mock.Mock
}

func (m *MockFileScanService) Scan(ctx context.Context, dir string, opts files.ScanOptions) (*files.ScanResult, error) {
	args := m.Called(ctx, dir, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*files.ScanResult), args.Error(1)
}

func (m *MockFileScanService) ScanFile(ctx context.Context, path string) (*files.FileMeta, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*files.FileMeta), args.Error(1)
}

// MockFileMetadataService is a mock implementation of FileMetadataService
type MockFileMetadataService struct {
	mock.Mock
}

func (m *MockFileMetadataService) List(ctx context.Context, query *files.FileMetaQuery) ([]*files.FileMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*files.FileMeta), args.Error(1)
}

func (m *MockFileMetadataService) GetByID(ctx context.Context, fileID string) (*files.FileMeta, error) {
	args := m.Called(ctx, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*files.FileMeta), args.Error(1)
}

func (m *MockFileMetadataService) DeleteByID(ctx context.Context, fileID string) error {
	args := m.Called(ctx, fileID)
	return args.Error(0)
}

// MockCodeAnalysisService is a mock implementation of CodeAnalysisService
type MockCodeAnalysisService struct {
	mock.Mock
}

func (m *MockCodeAnalysisService) AnalyzeFile(ctx context.Context, path string) (*analysis.CodeReport, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analysis.CodeReport), args.Error(1)
}

func (m *MockCodeAnalysisService) AnalyzeDirectory(ctx context.Context, dir string, recursive bool) ([]*analysis.CodeReport, error) {
	args := m.Called(ctx, dir, recursive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*analysis.CodeReport), args.Error(1)
}

func (m *MockCodeAnalysisService) Summary(ctx context.Context) (*analysis.CodeSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analysis.CodeSummary), args.Error(1)
}

func (m *MockCodeAnalysisService) FindPatterns(ctx context.Context, pattern string, extensions []string) ([]*analysis.PatternMatch, error) {
	args := m.Called(ctx, pattern, extensions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*analysis.PatternMatch), args.Error(1)
}

// MockCodeReviewService is a mock implementation of CodeReviewService
type MockCodeReviewService struct {
	mock.Mock
}

func (m *MockCodeReviewService) ReviewFile(ctx context.Context, path string, model string) (string, error) {
	args := m.Called(ctx, path, model)
	return args.String(0), args.Error(1)
}

func (m *MockCodeReviewService) ReviewSecurity(ctx context.Context, path string, model string) (string, error) {
	args := m.Called(ctx, path, model)
	return args.String(0), args.Error(1)
}

// MockDependencyAnalysisService is a mock implementation of DependencyAnalysisService
type MockDependencyAnalysisService struct {
	mock.Mock
}

func (m *MockDependencyAnalysisService) AnalyzeDependencies(ctx context.Context, dir string) (*analysis.DependencyReport, error) {
	args := m.Called(ctx, dir)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analysis.DependencyReport), args.Error(1)
}

// MockTestAnalysisService is a mock implementation of TestAnalysisService
type MockTestAnalysisService struct {
	mock.Mock
}

func (m *MockTestAnalysisService) AnalyzeTests(ctx context.Context, dir string) (*analysis.TestReport, error) {
	args := m.Called(ctx, dir)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analysis.TestReport), args.Error(1)
}

// MockDocumentScanService is a mock implementation of DocumentScanService
type MockDocumentScanService struct {
	mock.Mock
}

func (m *MockDocumentScanService) Scan(ctx context.Context, dir string, opts files.ScanOptions) (*files.ScanResult, error) {
	args := m.Called(ctx, dir, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*files.ScanResult), args.Error(1)
}

// MockDocumentQueryService is a mock implementation of DocumentQueryService
type MockDocumentQueryService struct {
	mock.Mock
}

func (m *MockDocumentQueryService) Search(ctx context.Context, query string, k int) ([]*documents.Document, error) {
	args := m.Called(ctx, query, k)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*documents.Document), args.Error(1)
}

func (m *MockDocumentQueryService) GetByID(ctx context.Context, documentID string) (*documents.Document, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*documents.Document), args.Error(1)
}

func (m *MockDocumentQueryService) Ask(ctx context.Context, question string, model string, k int) (*documents.Answer, error) {
	args := m.Called(ctx, question, model, k)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*documents.Answer), args.Error(1)
}

// MockWatchService is a mock implementation of WatchService
type MockWatchService struct {
	mock.Mock
}

func (m *MockWatchService) Start(ctx context.Context, dir string) error {
	args := m.Called(ctx, dir)
	return args.Error(0)
}

func (m *MockWatchService) Stop() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockWatchService) Status() files.WatchStatus {
	args := m.Called()
	return args.Get(0).(files.WatchStatus)
}

// MockAIConnector is a mock implementation of the model backend connector
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

// MockFileMetaRepository is a mock implementation of FileMetaRepository
type MockFileMetaRepository struct {
	mock.Mock
}

func (m *MockFileMetaRepository) Create(ctx context.Context, file *files.FileMeta) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *MockFileMetaRepository) List(ctx context.Context, query *files.FileMetaQuery) ([]*files.FileMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*files.FileMeta), args.Error(1)
}

func (m *MockFileMetaRepository) GetByID(ctx context.Context, fileID string) (*files.FileMeta, error) {
	args := m.Called(ctx, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*files.FileMeta), args.Error(1)
}

func (m *MockFileMetaRepository) GetByPath(ctx context.Context, path string) (*files.FileMeta, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*files.FileMeta), args.Error(1)
}

func (m *MockFileMetaRepository) UpdateByID(ctx context.Context, file *files.FileMeta) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *MockFileMetaRepository) DeleteByID(ctx context.Context, fileID string) error {
	args := m.Called(ctx, fileID)
	return args.Error(0)
}

func (m *MockFileMetaRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockCodeReportRepository is a mock implementation of CodeReportRepository
type MockCodeReportRepository struct {
	mock.Mock
}

func (m *MockCodeReportRepository) Create(ctx context.Context, report *analysis.CodeReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockCodeReportRepository) List(ctx context.Context, query *analysis.CodeReportQuery) ([]*analysis.CodeReport, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*analysis.CodeReport), args.Error(1)
}

func (m *MockCodeReportRepository) GetByID(ctx context.Context, reportID string) (*analysis.CodeReport, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analysis.CodeReport), args.Error(1)
}

func (m *MockCodeReportRepository) GetByPath(ctx context.Context, path string) (*analysis.CodeReport, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analysis.CodeReport), args.Error(1)
}

func (m *MockCodeReportRepository) UpdateByID(ctx context.Context, report *analysis.CodeReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockCodeReportRepository) DeleteByID(ctx context.Context, reportID string) error {
	args := m.Called(ctx, reportID)
	return args.Error(0)
}

func (m *MockCodeReportRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockDocumentRepository is a mock implementation of DocumentRepository
type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) Create(ctx context.Context, doc *documents.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockDocumentRepository) GetByID(ctx context.Context, documentID string) (*documents.Document, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*documents.Document), args.Error(1)
}

func (m *MockDocumentRepository) GetByPath(ctx context.Context, path string) (*documents.Document, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*documents.Document), args.Error(1)
}

func (m *MockDocumentRepository) Search(ctx context.Context, term string, limit int) ([]*documents.Document, error) {
	args := m.Called(ctx, term, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*documents.Document), args.Error(1)
}

func (m *MockDocumentRepository) UpdateByID(ctx context.Context, doc *documents.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockDocumentRepository) DeleteByID(ctx context.Context, documentID string) error {
	args := m.Called(ctx, documentID)
	return args.Error(0)
}

func (m *MockDocumentRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
