//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"system_ai_service/internal/domain/files"

	"github.com/stretchr/testify/assert"
)

func TestFileModel_ToDomain(t *testing.T) {
	fileModel := &FileModel{
		ID:               "test-id",
		Path:             "/srv/projects/app/main.go",
		Name:             "main.go",
		Extension:        ".go",
		Size:             2048,
		Checksum:         "5eb63bbbe01eeed093cb22bb8f5acdc3",
		DateTimeModified: time.Now().Add(-time.Hour),
		DateTimeIndexed:  time.Now(),
	}

	fileMeta := fileModel.ToDomain()

	assert.Equal(t, fileModel.ID, fileMeta.ID)
	assert.Equal(t, fileModel.Path, fileMeta.Path)
	assert.Equal(t, fileModel.Name, fileMeta.Name)
	assert.Equal(t, fileModel.Extension, fileMeta.Extension)
	assert.Equal(t, fileModel.Size, fileMeta.Size)
	assert.Equal(t, fileModel.Checksum, fileMeta.Checksum)
	assert.Equal(t, fileModel.DateTimeModified, fileMeta.DateTimeModified)
	assert.Equal(t, fileModel.DateTimeIndexed, fileMeta.DateTimeIndexed)
}

func TestFileModel_FromDomain(t *testing.T) {
	fileMeta := &files.FileMeta{
		ID:               "test-id",
		Path:             "/srv/projects/app/main.go",
		Name:             "main.go",
		Extension:        ".go",
		Size:             2048,
		Checksum:         "5eb63bbbe01eeed093cb22bb8f5acdc3",
		DateTimeModified: time.Now().Add(-time.Hour),
		DateTimeIndexed:  time.Now(),
	}

	fileModel := &FileModel{}
	fileModel.FromDomain(fileMeta)

	assert.Equal(t, fileMeta.ID, fileModel.ID)
	assert.Equal(t, fileMeta.Path, fileModel.Path)
	assert.Equal(t, fileMeta.Name, fileModel.Name)
	assert.Equal(t, fileMeta.Extension, fileModel.Extension)
	assert.Equal(t, fileMeta.Size, fileModel.Size)
	assert.Equal(t, fileMeta.Checksum, fileModel.Checksum)
	assert.Equal(t, fileMeta.DateTimeModified, fileModel.DateTimeModified)
	assert.Equal(t, fileMeta.DateTimeIndexed, fileModel.DateTimeIndexed)
}
