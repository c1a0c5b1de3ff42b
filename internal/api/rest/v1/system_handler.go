package v1

import (
	"net/http"

	"system_ai_service/internal/domain/ai"
	"system_ai_service/internal/domain/analysis"
	"system_ai_service/internal/domain/documents"
	"system_ai_service/internal/domain/files"

	"github.com/gin-gonic/gin"
)

// SystemHandler defines the interface for watcher control and health reporting
type SystemHandler interface {
	StartWatcher(ctx *gin.Context)
	StopWatcher(ctx *gin.Context)
	WatcherStatus(ctx *gin.Context)
	Status(ctx *gin.Context)
}

// systemHandler struct holds the services
type systemHandler struct {
	watchService files.WatchService
	connector    ai.Connector
	fileRepo     files.FileMetaRepository
	reportRepo   analysis.CodeReportRepository
	documentRepo documents.DocumentRepository
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(watchService files.WatchService, connector ai.Connector, fileRepo files.FileMetaRepository, reportRepo analysis.CodeReportRepository, documentRepo documents.DocumentRepository) SystemHandler {
	return &systemHandler{
		watchService: watchService,
		connector:    connector,
		fileRepo:     fileRepo,
		reportRepo:   reportRepo,
		documentRepo: documentRepo,
	}
}

func toWatchStatusResponse(status files.WatchStatus) WatchStatusResponse {
	response := WatchStatusResponse{
		Running:       status.Running,
		Directory:     status.Directory,
		EventsHandled: status.EventsHandled,
	}
	if !status.StartedAt.IsZero() {
		startedAt := status.StartedAt
		response.StartedAt = &startedAt
	}
	return response
}

// StartWatcher begins watching the requested directory
func (handler *systemHandler) StartWatcher(ctx *gin.Context) {
	var request WatchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, http.StatusBadRequest, "invalid request body: %v", err)
		return
	}

	if err := handler.watchService.Start(ctx, request.Directory); err != nil {
		respondError(ctx, http.StatusBadRequest, "error starting watcher: %v", err)
		return
	}

	ctx.JSON(http.StatusCreated, toWatchStatusResponse(handler.watchService.Status()))
}

// StopWatcher terminates the active watch
func (handler *systemHandler) StopWatcher(ctx *gin.Context) {
	if err := handler.watchService.Stop(); err != nil {
		respondError(ctx, http.StatusBadRequest, "error stopping watcher: %v", err)
		return
	}

	ctx.JSON(http.StatusOK, toWatchStatusResponse(handler.watchService.Status()))
}

// WatcherStatus reports the current watcher state
func (handler *systemHandler) WatcherStatus(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, toWatchStatusResponse(handler.watchService.Status()))
}

// Status aggregates model backend reachability, store counts and watcher state
func (handler *systemHandler) Status(ctx *gin.Context) {
	var response SystemStatusResponse

	if version, err := handler.connector.Version(ctx); err == nil {
		response.ModelBackend.Online = true
		response.ModelBackend.Version = version
		if models, err := handler.connector.ListModels(ctx); err == nil {
			response.ModelBackend.Models = models
		}
	}

	if count, err := handler.fileRepo.Count(ctx); err == nil {
		response.Index.Files = count
	}
	if count, err := handler.reportRepo.Count(ctx); err == nil {
		response.Index.Reports = count
	}
	if count, err := handler.documentRepo.Count(ctx); err == nil {
		response.Index.Documents = count
	}

	response.Watcher = toWatchStatusResponse(handler.watchService.Status())

	ctx.JSON(http.StatusOK, response)
}
