package analysis

import (
	"context"
	"errors"
)

// ErrReportNotFound is returned when no report exists for the requested ID.
var ErrReportNotFound = errors.New("code report not found")

// ErrNotText is returned when a file submitted for analysis is binary.
var ErrNotText = errors.New("file is not a text file")

// CodeAnalysisService analyzes source files and persists the resulting reports.
type CodeAnalysisService interface {
	// AnalyzeFile analyzes one file and stores a report for it. A file
	// analyzed before is re-measured and its report replaced.
	AnalyzeFile(ctx context.Context, path string) (*CodeReport, error)

	// AnalyzeDirectory analyzes every recognized source file below dir.
	AnalyzeDirectory(ctx context.Context, dir string, recursive bool) ([]*CodeReport, error)

	// Summary aggregates all stored reports per language.
	Summary(ctx context.Context) (*CodeSummary, error)

	// FindPatterns searches analyzed files for a regex pattern, optionally
	// restricted to a set of extensions.
	FindPatterns(ctx context.Context, pattern string, extensions []string) ([]*PatternMatch, error)
}

// CodeReviewService produces model-backed reviews of source files.
type CodeReviewService interface {
	// ReviewFile asks the code model for structure and improvement feedback.
	ReviewFile(ctx context.Context, path string, model string) (string, error)

	// ReviewSecurity asks the security model for security concerns.
	ReviewSecurity(ctx context.Context, path string, model string) (string, error)
}

// DependencyAnalysisService inspects a project's dependency manifest.
type DependencyAnalysisService interface {
	// AnalyzeDependencies detects the package manager used below dir and
	// lists the dependencies its manifest declares.
	AnalyzeDependencies(ctx context.Context, dir string) (*DependencyReport, error)
}

// TestAnalysisService measures the test files of a project directory.
type TestAnalysisService interface {
	// AnalyzeTests collects static metrics over the test files below dir
	// and derives improvement recommendations.
	AnalyzeTests(ctx context.Context, dir string) (*TestReport, error)
}

// CodeReportRepository defines the interface for code report persistence.
type CodeReportRepository interface {
	// Create adds a new CodeReport to the database
	Create(ctx context.Context, report *CodeReport) error
	// List lists CodeReports in the database with optional filter
	List(ctx context.Context, query *CodeReportQuery) ([]*CodeReport, error)
	// GetByID retrieves a CodeReport from the database by ID
	GetByID(ctx context.Context, reportID string) (*CodeReport, error)
	// GetByPath retrieves a CodeReport from the database by file path
	GetByPath(ctx context.Context, path string) (*CodeReport, error)
	// UpdateByID updates a CodeReport in the database by ID
	UpdateByID(ctx context.Context, report *CodeReport) error
	// DeleteByID deletes a CodeReport in the database by ID
	DeleteByID(ctx context.Context, reportID string) error
	// Count returns the number of stored reports
	Count(ctx context.Context) (int64, error)
}
