package v1

import (
	"system_ai_service/internal/domain/ai"
	"system_ai_service/internal/domain/analysis"
	"system_ai_service/internal/domain/documents"
	"system_ai_service/internal/domain/files"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	fileScanService files.FileScanService,
	fileMetadataService files.FileMetadataService,
	analysisService analysis.CodeAnalysisService,
	reviewService analysis.CodeReviewService,
	dependencyService analysis.DependencyAnalysisService,
	testService analysis.TestAnalysisService,
	documentScanService documents.DocumentScanService,
	documentQueryService documents.DocumentQueryService,
	watchService files.WatchService,
	connector ai.Connector,
	fileRepo files.FileMetaRepository,
	reportRepo analysis.CodeReportRepository,
	documentRepo documents.DocumentRepository) {

	v1 := r.Group(BasePath)

	// File index routes
	fileHandler := NewFileHandler(fileScanService, fileMetadataService)
	v1.POST("/scans", fileHandler.Scan)
	v1.GET("/files", fileHandler.ListMetadata)
	v1.GET("/files/:id", fileHandler.GetMetadataByID)
	v1.DELETE("/files/:id", fileHandler.DeleteByID)

	// Code analysis routes
	analysisHandler := NewAnalysisHandler(analysisService, reviewService, dependencyService, testService, reportRepo)
	v1.POST("/analysis", analysisHandler.Analyze)
	v1.GET("/analysis", analysisHandler.ListReports)
	v1.GET("/analysis/summary", analysisHandler.Summary)
	v1.GET("/analysis/:id", analysisHandler.GetReportByID)
	v1.POST("/analysis/patterns", analysisHandler.FindPatterns)
	v1.POST("/analysis/review", analysisHandler.Review)
	v1.POST("/analysis/security", analysisHandler.ReviewSecurity)
	v1.POST("/analysis/dependencies", analysisHandler.AnalyzeDependencies)
	v1.POST("/analysis/tests", analysisHandler.AnalyzeTests)

	// Document store routes
	documentHandler := NewDocumentHandler(documentScanService, documentQueryService)
	v1.POST("/documents/scans", documentHandler.Scan)
	v1.GET("/documents", documentHandler.Search)
	v1.GET("/documents/:id", documentHandler.GetByID)
	v1.POST("/documents/queries", documentHandler.Ask)

	// Watcher and system routes
	systemHandler := NewSystemHandler(watchService, connector, fileRepo, reportRepo, documentRepo)
	v1.POST("/watchers", systemHandler.StartWatcher)
	v1.DELETE("/watchers", systemHandler.StopWatcher)
	v1.GET("/watchers", systemHandler.WatcherStatus)
	v1.GET("/system/status", systemHandler.Status)
}
