package v1

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"system_ai_service/internal/domain/files"
	"system_ai_service/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// FileHandler defines the interface for handling file index operations
type FileHandler interface {
	Scan(ctx *gin.Context)
	ListMetadata(ctx *gin.Context)
	GetMetadataByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// fileHandler struct holds the services
type fileHandler struct {
	fileScanService     files.FileScanService
	fileMetadataService files.FileMetadataService
}

// NewFileHandler creates a new FileHandler
func NewFileHandler(fileScanService files.FileScanService, fileMetadataService files.FileMetadataService) FileHandler {
	return &fileHandler{
		fileScanService:     fileScanService,
		fileMetadataService: fileMetadataService,
	}
}

func respondError(ctx *gin.Context, status int, format string, args ...interface{}) {
	var errorResponse ErrorResponse
	errorMessage := fmt.Sprintf(format, args...)
	errorResponse.Message = &errorMessage
	ctx.JSON(status, errorResponse)
}

func toFileMetaResponse(meta *files.FileMeta) FileMetaResponse {
	return FileMetaResponse{
		ID:               meta.ID,
		Path:             meta.Path,
		Name:             meta.Name,
		Extension:        meta.Extension,
		Size:             meta.Size,
		Checksum:         meta.Checksum,
		DateTimeModified: meta.DateTimeModified,
		DateTimeIndexed:  meta.DateTimeIndexed,
	}
}

// Scan indexes all matching files below the requested directory
func (handler *fileHandler) Scan(ctx *gin.Context) {
	var request ScanRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, http.StatusBadRequest, "invalid request body: %v", err)
		return
	}

	result, err := handler.fileScanService.Scan(ctx, request.Directory, files.ScanOptions{
		Extensions:   request.Extensions,
		ExcludedDirs: request.ExcludedDirs,
		MaxFiles:     request.MaxFiles,
		MaxFileSize:  request.MaxFileSize,
	})
	if err != nil {
		respondError(ctx, http.StatusBadRequest, "error scanning directory: %v", err)
		return
	}

	ctx.JSON(http.StatusCreated, ScanResultResponse{
		Directory:  result.Directory,
		Processed:  result.Processed,
		Skipped:    result.Skipped,
		DurationMs: result.Duration.Milliseconds(),
	})
}

// ListMetadata fetches file metadata optionally with query parameters
func (handler *fileHandler) ListMetadata(ctx *gin.Context) {
	query := files.NewFileMetaQuery()

	if name := ctx.Query("name"); len(name) > 0 {
		query.Name = name
	}

	if extension := ctx.Query("extension"); len(extension) > 0 {
		query.Extension = extension
	}

	if pathPrefix := ctx.Query("pathPrefix"); len(pathPrefix) > 0 {
		query.PathPrefix = pathPrefix
	}

	if dateTimeIndexed := ctx.Query("dateTimeIndexed"); len(dateTimeIndexed) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, dateTimeIndexed)
		if err == nil {
			query.DateTimeIndexed = parsedTime
		}
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		parsed, err := strutil.ParseInt(limit)
		if err != nil {
			respondError(ctx, http.StatusBadRequest, "invalid limit: %v", err)
			return
		}
		query.Limit = parsed
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		parsed, err := strutil.ParseInt(offset)
		if err != nil {
			respondError(ctx, http.StatusBadRequest, "invalid offset: %v", err)
			return
		}
		query.Offset = parsed
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		respondError(ctx, http.StatusBadRequest, "validation failed: %v", err)
		return
	}

	metas, err := handler.fileMetadataService.List(ctx, query)
	if err != nil {
		respondError(ctx, http.StatusBadRequest, "error listing file metadata: %v", err)
		return
	}

	responses := make([]FileMetaResponse, 0, len(metas))
	for _, meta := range metas {
		responses = append(responses, toFileMetaResponse(meta))
	}
	ctx.JSON(http.StatusOK, responses)
}

// GetMetadataByID fetches file metadata by its id
func (handler *fileHandler) GetMetadataByID(ctx *gin.Context) {
	fileID := ctx.Param("id")

	meta, err := handler.fileMetadataService.GetByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, files.ErrFileNotFound) {
			respondError(ctx, http.StatusNotFound, "file with id %s not found", fileID)
			return
		}
		respondError(ctx, http.StatusBadRequest, "error fetching file metadata: %v", err)
		return
	}

	ctx.JSON(http.StatusOK, toFileMetaResponse(meta))
}

// DeleteByID removes a file from the index by its id
func (handler *fileHandler) DeleteByID(ctx *gin.Context) {
	fileID := ctx.Param("id")

	if err := handler.fileMetadataService.DeleteByID(ctx, fileID); err != nil {
		if errors.Is(err, files.ErrFileNotFound) {
			respondError(ctx, http.StatusNotFound, "file with id %s not found", fileID)
			return
		}
		respondError(ctx, http.StatusBadRequest, "error deleting file metadata: %v", err)
		return
	}

	ctx.JSON(http.StatusNoContent, nil)
}
