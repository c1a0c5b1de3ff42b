// cmd/system-ai-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "system_ai_service/internal/api/rest/v1"
	"system_ai_service/internal/app"
	"system_ai_service/internal/domain/ai"
	"system_ai_service/internal/domain/analysis"
	"system_ai_service/internal/domain/documents"
	"system_ai_service/internal/domain/files"
	"system_ai_service/internal/infrastructure/ollama"
	"system_ai_service/internal/infrastructure/persistence"
	"system_ai_service/internal/infrastructure/persistence/models"
	"system_ai_service/internal/pkg/config"
	"system_ai_service/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	fileScan       files.FileScanService
	fileMetadata   files.FileMetadataService
	codeAnalysis   analysis.CodeAnalysisService
	codeReview     analysis.CodeReviewService
	dependencyScan analysis.DependencyAnalysisService
	testScan       analysis.TestAnalysisService
	documentScan   documents.DocumentScanService
	documentQuery  documents.DocumentQueryService
	watch          files.WatchService
	connector      ai.Connector
	fileRepo       files.FileMetaRepository
	reportRepo     analysis.CodeReportRepository
	documentRepo   documents.DocumentRepository
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(&models.FileModel{}, &models.CodeReportModel{}, &models.DocumentModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	fileRepo, err := persistence.NewGormFileMetaRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create file repository: %w", err)
	}

	reportRepo, err := persistence.NewGormCodeReportRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create code report repository: %w", err)
	}

	documentRepo, err := persistence.NewGormDocumentRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create document repository: %w", err)
	}

	// Initialize the model backend connector
	connector, err := ollama.NewClient(&cfg.Ollama, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama client: %w", err)
	}

	// Initialize services
	fileScan, err := app.NewFileScanService(fileRepo, &cfg.Scan, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create file scan service: %w", err)
	}

	fileMetadata, err := app.NewFileMetadataService(fileRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create file metadata service: %w", err)
	}

	codeAnalysis, err := app.NewCodeAnalysisService(reportRepo, &cfg.Scan, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create code analysis service: %w", err)
	}

	codeReview, err := app.NewCodeReviewService(connector, reportRepo, &cfg.Ollama, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create code review service: %w", err)
	}

	dependencyScan, err := app.NewDependencyAnalysisService(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create dependency analysis service: %w", err)
	}

	testScan, err := app.NewTestAnalysisService(&cfg.Scan, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create test analysis service: %w", err)
	}

	documentScan, err := app.NewDocumentScanService(documentRepo, &cfg.Scan, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create document scan service: %w", err)
	}

	documentQuery, err := app.NewDocumentQueryService(documentRepo, connector, &cfg.Ollama, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create document query service: %w", err)
	}

	watch, err := app.NewWatchService(&cfg.Watcher, fileScan, codeAnalysis, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create watch service: %w", err)
	}

	return &appDependencies{
		fileScan:       fileScan,
		fileMetadata:   fileMetadata,
		codeAnalysis:   codeAnalysis,
		codeReview:     codeReview,
		dependencyScan: dependencyScan,
		testScan:       testScan,
		documentScan:   documentScan,
		documentQuery:  documentQuery,
		watch:          watch,
		connector:      connector,
		fileRepo:       fileRepo,
		reportRepo:     reportRepo,
		documentRepo:   documentRepo,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r,
		deps.fileScan,
		deps.fileMetadata,
		deps.codeAnalysis,
		deps.codeReview,
		deps.dependencyScan,
		deps.testScan,
		deps.documentScan,
		deps.documentQuery,
		deps.watch,
		deps.connector,
		deps.fileRepo,
		deps.reportRepo,
		deps.documentRepo,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Stop the watcher before shutting down the server
	if err := deps.watch.Stop(); err != nil {
		log.Warn("Failed to stop watcher: ", err)
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
