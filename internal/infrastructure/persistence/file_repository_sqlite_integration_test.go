//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"system_ai_service/internal/domain/files"
	"system_ai_service/internal/infrastructure/persistence/models"
	"system_ai_service/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileMetaSqliteRepository_Create(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	file := CreateTestFileMeta(t, "/srv/projects/app/main.go")

	err := ctx.FileRepo.Create(context.Background(), file)
	require.NoError(t, err)

	// Verify using GORM model (infrastructure concern)
	var createdModel models.FileModel
	err = ctx.DB.First(&createdModel, "id = ?", file.ID).Error
	require.NoError(t, err)
	assert.Equal(t, file.Path, createdModel.Path)
	assert.Equal(t, file.Checksum, createdModel.Checksum)
}

func TestFileMetaSqliteRepository_Create_InvalidEntity(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	file := &files.FileMeta{} // missing required fields

	err := ctx.FileRepo.Create(context.Background(), file)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestFileMetaSqliteRepository_GetByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	file := CreateTestFileMeta(t, "/srv/projects/app/main.go")
	require.NoError(t, ctx.FileRepo.Create(context.Background(), file))

	fetched, err := ctx.FileRepo.GetByID(context.Background(), file.ID)
	require.NoError(t, err)
	assert.Equal(t, file.ID, fetched.ID)
	assert.Equal(t, file.Name, fetched.Name)
}

func TestFileMetaSqliteRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.FileRepo.GetByID(context.Background(), "non-existent-id")
	assert.ErrorIs(t, err, files.ErrFileNotFound)
}

func TestFileMetaSqliteRepository_GetByPath(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	file := CreateTestFileMeta(t, "/srv/projects/app/util.go")
	require.NoError(t, ctx.FileRepo.Create(context.Background(), file))

	fetched, err := ctx.FileRepo.GetByPath(context.Background(), "/srv/projects/app/util.go")
	require.NoError(t, err)
	assert.Equal(t, file.ID, fetched.ID)

	_, err = ctx.FileRepo.GetByPath(context.Background(), "/srv/projects/app/missing.go")
	assert.ErrorIs(t, err, files.ErrFileNotFound)
}

func TestFileMetaSqliteRepository_List_WithFilters(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	goFile := CreateTestFileMeta(t, "/srv/projects/app/main.go")
	pyFile := CreateTestFileMeta(t, "/srv/projects/scripts/tool.py")
	require.NoError(t, ctx.FileRepo.Create(context.Background(), goFile))
	require.NoError(t, ctx.FileRepo.Create(context.Background(), pyFile))

	query := files.NewFileMetaQuery()
	query.Extension = ".py"

	results, err := ctx.FileRepo.List(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, pyFile.ID, results[0].ID)

	query = files.NewFileMetaQuery()
	query.PathPrefix = "/srv/projects/app"

	results, err = ctx.FileRepo.List(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, goFile.ID, results[0].ID)
}

func TestFileMetaSqliteRepository_UpdateByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	file := CreateTestFileMeta(t, "/srv/projects/app/main.go")
	require.NoError(t, ctx.FileRepo.Create(context.Background(), file))

	file.Size = 4096
	file.Checksum = "d41d8cd98f00b204e9800998ecf8427e"
	require.NoError(t, ctx.FileRepo.UpdateByID(context.Background(), file))

	fetched, err := ctx.FileRepo.GetByID(context.Background(), file.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4096), fetched.Size)
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", fetched.Checksum)
}

func TestFileMetaSqliteRepository_DeleteByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	file := CreateTestFileMeta(t, "/srv/projects/app/main.go")
	require.NoError(t, ctx.FileRepo.Create(context.Background(), file))

	require.NoError(t, ctx.FileRepo.DeleteByID(context.Background(), file.ID))

	_, err := ctx.FileRepo.GetByID(context.Background(), file.ID)
	assert.ErrorIs(t, err, files.ErrFileNotFound)

	err = ctx.FileRepo.DeleteByID(context.Background(), file.ID)
	assert.ErrorIs(t, err, files.ErrFileNotFound)
}

func TestFileMetaSqliteRepository_Count(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	count, err := ctx.FileRepo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	require.NoError(t, ctx.FileRepo.Create(context.Background(), CreateTestFileMeta(t, "/srv/a.go")))
	require.NoError(t, ctx.FileRepo.Create(context.Background(), CreateTestFileMeta(t, "/srv/b.go")))

	count, err = ctx.FileRepo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
