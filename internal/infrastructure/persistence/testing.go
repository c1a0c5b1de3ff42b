//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"system_ai_service/internal/domain/analysis"
	"system_ai_service/internal/domain/documents"
	"system_ai_service/internal/domain/files"
	"system_ai_service/internal/infrastructure/persistence/models"
	"system_ai_service/internal/pkg/config"
	"system_ai_service/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB           *gorm.DB
	FileRepo     files.FileMetaRepository
	ReportRepo   analysis.CodeReportRepository
	DocumentRepo documents.DocumentRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
	})

	err = db.AutoMigrate(&models.FileModel{}, &models.CodeReportModel{}, &models.DocumentModel{})
	require.NoError(t, err, "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)

	fileRepo, err := NewGormFileMetaRepository(db, logger)
	require.NoError(t, err, "Failed to create file repository")

	reportRepo, err := NewGormCodeReportRepository(db, logger)
	require.NoError(t, err, "Failed to create code report repository")

	documentRepo, err := NewGormDocumentRepository(db, logger)
	require.NoError(t, err, "Failed to create document repository")

	return &TestContext{
		DB:           db,
		FileRepo:     fileRepo,
		ReportRepo:   reportRepo,
		DocumentRepo: documentRepo,
	}
}

// CreateTestFileMeta creates file metadata with default values
func CreateTestFileMeta(t *testing.T, path string) *files.FileMeta {
	t.Helper()

	if path == "" {
		path = "/tmp/sample.go"
	}
	name := path[strings.LastIndex(path, "/")+1:]
	ext := path[strings.LastIndex(path, "."):]

	return &files.FileMeta{
		ID:               uuid.NewString(),
		Path:             path,
		Name:             name,
		Extension:        ext,
		Size:             1024,
		Checksum:         "5eb63bbbe01eeed093cb22bb8f5acdc3",
		DateTimeModified: time.Now(),
		DateTimeIndexed:  time.Now(),
	}
}

// CreateTestCodeReport creates a code report with default values
func CreateTestCodeReport(t *testing.T, path, language string) *analysis.CodeReport {
	t.Helper()

	if path == "" {
		path = "/tmp/sample.go"
	}
	if language == "" {
		language = "Go"
	}

	return &analysis.CodeReport{
		ID:                uuid.NewString(),
		Path:              path,
		Language:          language,
		Lines:             42,
		Size:              1024,
		Functions:         3,
		ControlStructures: 5,
		Complexity:        61,
		DateTimeCreated:   time.Now(),
	}
}

// CreateTestDocument creates a document with default values
func CreateTestDocument(t *testing.T, path, content string) *documents.Document {
	t.Helper()

	if path == "" {
		path = "/tmp/notes.md"
	}
	if content == "" {
		content = "sample document content"
	}
	name := path[strings.LastIndex(path, "/")+1:]
	ext := path[strings.LastIndex(path, "."):]

	return &documents.Document{
		ID:               uuid.NewString(),
		Path:             path,
		Name:             name,
		Extension:        ext,
		Size:             int64(len(content)),
		Content:          content,
		DateTimeModified: time.Now(),
		DateTimeIndexed:  time.Now(),
	}
}
