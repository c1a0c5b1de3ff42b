//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"system_ai_service/internal/domain/documents"
	"system_ai_service/internal/domain/files"
	"system_ai_service/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDocumentScanService_Scan(t *testing.T) {
	services := SetupTestServices(t)

	root := testutil.WriteTestTree(t, map[string]string{
		"docs/deploy.md": "Deployment requires Docker and a registry login.",
		"docs/backup.md": "Backups run nightly via cron.",
		"README":         "no extension, skipped",
	})

	result, err := services.DocumentScanService.Scan(context.Background(), root, files.ScanOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 1, result.Skipped)

	count, err := services.DocumentRepo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestDocumentScanService_Scan_SkipsBinary(t *testing.T) {
	services := SetupTestServices(t)

	root := t.TempDir()
	testutil.WriteTestFile(t, root, "image.md", []byte{0x89, 0x50, 0x00, 0x47})
	testutil.WriteTestFile(t, root, "notes.md", []byte("plain text"))

	result, err := services.DocumentScanService.Scan(context.Background(), root, files.ScanOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.Skipped)
}

func TestDocumentScanService_Rescan_ReplacesContent(t *testing.T) {
	services := SetupTestServices(t)

	root := testutil.WriteTestTree(t, map[string]string{
		"notes.md": "old content",
	})

	_, err := services.DocumentScanService.Scan(context.Background(), root, files.ScanOptions{})
	require.NoError(t, err)

	testutil.WriteTestFile(t, root, "notes.md", []byte("new content"))

	_, err = services.DocumentScanService.Scan(context.Background(), root, files.ScanOptions{})
	require.NoError(t, err)

	count, err := services.DocumentRepo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	doc, err := services.DocumentRepo.GetByPath(context.Background(), root+"/notes.md")
	require.NoError(t, err)
	assert.Equal(t, "new content", doc.Content)
}

func TestDocumentQueryService_Search_RanksByOccurrences(t *testing.T) {
	services := SetupTestServices(t)

	root := testutil.WriteTestTree(t, map[string]string{
		"once.md":  "docker appears here",
		"twice.md": "docker here and docker there",
		"none.md":  "nothing relevant",
	})

	_, err := services.DocumentScanService.Scan(context.Background(), root, files.ScanOptions{})
	require.NoError(t, err)

	results, err := services.DocumentQuerySvc.Search(context.Background(), "Docker", 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "twice.md", results[0].Name)
	assert.Equal(t, "once.md", results[1].Name)
}

func TestDocumentQueryService_Search_EmptyQuery(t *testing.T) {
	services := SetupTestServices(t)

	_, err := services.DocumentQuerySvc.Search(context.Background(), "   ", 5)
	assert.Error(t, err)
}

func TestDocumentQueryService_GetByID(t *testing.T) {
	services := SetupTestServices(t)

	root := testutil.WriteTestTree(t, map[string]string{
		"notes.md": "some content",
	})

	_, err := services.DocumentScanService.Scan(context.Background(), root, files.ScanOptions{})
	require.NoError(t, err)

	stored, err := services.DocumentRepo.GetByPath(context.Background(), root+"/notes.md")
	require.NoError(t, err)

	doc, err := services.DocumentQuerySvc.GetByID(context.Background(), stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.Path, doc.Path)

	_, err = services.DocumentQuerySvc.GetByID(context.Background(), "missing-id")
	assert.ErrorIs(t, err, documents.ErrDocumentNotFound)
}

func TestDocumentQueryService_Ask(t *testing.T) {
	services := SetupTestServices(t)

	root := testutil.WriteTestTree(t, map[string]string{
		"deploy.md": "Deployment requires Docker and a registry login.",
	})

	_, err := services.DocumentScanService.Scan(context.Background(), root, files.ScanOptions{})
	require.NoError(t, err)

	services.Connector.On("ResolveModel", mock.Anything, "llama3").Return("llama3", nil)
	services.Connector.On("Generate", mock.Anything, "llama3", mock.MatchedBy(func(prompt string) bool {
		return len(prompt) > 0
	})).Return("You need Docker.", nil)

	answer, err := services.DocumentQuerySvc.Ask(context.Background(), "What is needed for Docker deployment?", "", 3)
	require.NoError(t, err)
	assert.Equal(t, "You need Docker.", answer.Response)
	assert.Equal(t, "llama3", answer.Model)
	require.Len(t, answer.Sources, 1)
	assert.Equal(t, root+"/deploy.md", answer.Sources[0])

	services.Connector.AssertExpectations(t)
}

func TestDocumentQueryService_Ask_NoRelevantDocuments(t *testing.T) {
	services := SetupTestServices(t)

	_, err := services.DocumentQuerySvc.Ask(context.Background(), "anything at all?", "", 3)
	assert.ErrorIs(t, err, documents.ErrNoRelevantDocuments)
}
