//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"system_ai_service/internal/domain/documents"
	"system_ai_service/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentSqliteRepository_CreateAndGet(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	doc := CreateTestDocument(t, "/srv/docs/setup.md", "Install the dependencies first.")
	require.NoError(t, ctx.DocumentRepo.Create(context.Background(), doc))

	fetched, err := ctx.DocumentRepo.GetByID(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.Content, fetched.Content)
}

func TestDocumentSqliteRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.DocumentRepo.GetByID(context.Background(), "non-existent-id")
	assert.ErrorIs(t, err, documents.ErrDocumentNotFound)
}

func TestDocumentSqliteRepository_GetByPath(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	doc := CreateTestDocument(t, "/srv/docs/setup.md", "Install the dependencies first.")
	require.NoError(t, ctx.DocumentRepo.Create(context.Background(), doc))

	fetched, err := ctx.DocumentRepo.GetByPath(context.Background(), "/srv/docs/setup.md")
	require.NoError(t, err)
	assert.Equal(t, doc.ID, fetched.ID)
}

func TestDocumentSqliteRepository_Search(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	deploy := CreateTestDocument(t, "/srv/docs/deploy.md", "Deployment requires Docker and a registry login.")
	backup := CreateTestDocument(t, "/srv/docs/backup.md", "Backups run nightly via cron.")
	require.NoError(t, ctx.DocumentRepo.Create(context.Background(), deploy))
	require.NoError(t, ctx.DocumentRepo.Create(context.Background(), backup))

	results, err := ctx.DocumentRepo.Search(context.Background(), "docker", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, deploy.ID, results[0].ID)

	// Case-insensitive against content and name
	results, err = ctx.DocumentRepo.Search(context.Background(), "BACKUP", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, backup.ID, results[0].ID)
}

func TestDocumentSqliteRepository_Search_Limit(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	require.NoError(t, ctx.DocumentRepo.Create(context.Background(), CreateTestDocument(t, "/srv/docs/a.md", "shared term here")))
	require.NoError(t, ctx.DocumentRepo.Create(context.Background(), CreateTestDocument(t, "/srv/docs/b.md", "shared term here too")))

	results, err := ctx.DocumentRepo.Search(context.Background(), "shared", 1)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestDocumentSqliteRepository_UpdateByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	doc := CreateTestDocument(t, "/srv/docs/setup.md", "old content")
	require.NoError(t, ctx.DocumentRepo.Create(context.Background(), doc))

	doc.Content = "new content"
	doc.Size = int64(len(doc.Content))
	require.NoError(t, ctx.DocumentRepo.UpdateByID(context.Background(), doc))

	fetched, err := ctx.DocumentRepo.GetByID(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "new content", fetched.Content)
}

func TestDocumentSqliteRepository_DeleteByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	doc := CreateTestDocument(t, "/srv/docs/setup.md", "content")
	require.NoError(t, ctx.DocumentRepo.Create(context.Background(), doc))

	require.NoError(t, ctx.DocumentRepo.DeleteByID(context.Background(), doc.ID))

	_, err := ctx.DocumentRepo.GetByID(context.Background(), doc.ID)
	assert.ErrorIs(t, err, documents.ErrDocumentNotFound)
}
