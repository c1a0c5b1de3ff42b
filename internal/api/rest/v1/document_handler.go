package v1

import (
	"errors"
	"net/http"

	"system_ai_service/internal/domain/documents"
	"system_ai_service/internal/domain/files"
	"system_ai_service/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// DocumentHandler defines the interface for handling document store operations
type DocumentHandler interface {
	Scan(ctx *gin.Context)
	Search(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Ask(ctx *gin.Context)
}

// documentHandler struct holds the services
type documentHandler struct {
	scanService          documents.DocumentScanService
	documentQueryService documents.DocumentQueryService
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(scanService documents.DocumentScanService, documentQueryService documents.DocumentQueryService) DocumentHandler {
	return &documentHandler{
		scanService:          scanService,
		documentQueryService: documentQueryService,
	}
}

func toDocumentResponse(doc *documents.Document) DocumentResponse {
	return DocumentResponse{
		ID:               doc.ID,
		Path:             doc.Path,
		Name:             doc.Name,
		Extension:        doc.Extension,
		Size:             doc.Size,
		Snippet:          doc.Snippet(),
		DateTimeModified: doc.DateTimeModified,
		DateTimeIndexed:  doc.DateTimeIndexed,
	}
}

// Scan extracts text documents from a directory tree into the store
func (handler *documentHandler) Scan(ctx *gin.Context) {
	var request ScanRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, http.StatusBadRequest, "invalid request body: %v", err)
		return
	}

	result, err := handler.scanService.Scan(ctx, request.Directory, files.ScanOptions{
		Extensions:   request.Extensions,
		ExcludedDirs: request.ExcludedDirs,
		MaxFiles:     request.MaxFiles,
		MaxFileSize:  request.MaxFileSize,
	})
	if err != nil {
		respondError(ctx, http.StatusBadRequest, "error scanning documents: %v", err)
		return
	}

	ctx.JSON(http.StatusCreated, ScanResultResponse{
		Directory:  result.Directory,
		Processed:  result.Processed,
		Skipped:    result.Skipped,
		DurationMs: result.Duration.Milliseconds(),
	})
}

// Search lists documents ranked by relevance to the q query parameter
func (handler *documentHandler) Search(ctx *gin.Context) {
	query := ctx.Query("q")
	if query == "" {
		respondError(ctx, http.StatusBadRequest, "query parameter q is required")
		return
	}

	k := 0
	if rawK := ctx.Query("k"); len(rawK) > 0 {
		parsed, err := strutil.ParseInt(rawK)
		if err != nil {
			respondError(ctx, http.StatusBadRequest, "invalid k: %v", err)
			return
		}
		k = parsed
	}

	docs, err := handler.documentQueryService.Search(ctx, query, k)
	if err != nil {
		respondError(ctx, http.StatusBadRequest, "error searching documents: %v", err)
		return
	}

	responses := make([]DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		responses = append(responses, toDocumentResponse(doc))
	}
	ctx.JSON(http.StatusOK, responses)
}

// GetByID fetches one document by its id
func (handler *documentHandler) GetByID(ctx *gin.Context) {
	documentID := ctx.Param("id")

	doc, err := handler.documentQueryService.GetByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, documents.ErrDocumentNotFound) {
			respondError(ctx, http.StatusNotFound, "document with id %s not found", documentID)
			return
		}
		respondError(ctx, http.StatusBadRequest, "error fetching document: %v", err)
		return
	}

	ctx.JSON(http.StatusOK, toDocumentResponse(doc))
}

// Ask answers a question grounded on the stored documents
func (handler *documentHandler) Ask(ctx *gin.Context) {
	var request AskRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, http.StatusBadRequest, "invalid request body: %v", err)
		return
	}

	answer, err := handler.documentQueryService.Ask(ctx, request.Question, request.Model, request.TopK)
	if err != nil {
		if errors.Is(err, documents.ErrNoRelevantDocuments) {
			respondError(ctx, http.StatusNotFound, "no relevant documents found")
			return
		}
		respondError(ctx, http.StatusBadGateway, "error answering question: %v", err)
		return
	}

	ctx.JSON(http.StatusOK, AnswerResponse{
		Question: answer.Question,
		Response: answer.Response,
		Model:    answer.Model,
		Sources:  answer.Sources,
	})
}
