package commands

import (
	"fmt"
	"os"

	"system_ai_service/internal/domain/ai"
	"system_ai_service/internal/domain/analysis"
	"system_ai_service/internal/domain/documents"
	"system_ai_service/internal/domain/files"
	"system_ai_service/internal/infrastructure/ollama"
	"system_ai_service/internal/infrastructure/persistence"
	"system_ai_service/internal/infrastructure/persistence/models"
	"system_ai_service/internal/pkg/config"
	"system_ai_service/internal/pkg/logger"

	"system_ai_service/internal/app"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// serviceSet bundles the application services the CLI commands work with
type serviceSet struct {
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
	logger         logger.Logger
}

// databaseDSN resolves the SQLite database location. SAM_DATABASE_DSN
// overrides the default file next to the working directory.
func databaseDSN() string {
	if dsn := os.Getenv("SAM_DATABASE_DSN"); dsn != "" {
		return dsn
	}
	return "system-ai.db"
}

// ollamaBaseURL resolves the model server address, SAM_OLLAMA_BASE_URL
// overrides the default local instance.
func ollamaBaseURL() string {
	if url := os.Getenv("SAM_OLLAMA_BASE_URL"); url != "" {
		return url
	}
	return "http://localhost:11434"
}

// setupServices opens the local database and wires all application services
func setupServices() (*serviceSet, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	db, err := persistence.NewDBConnection(config.DatabaseSettings{
		Type: config.SqliteDbType,
		DSN:  databaseDSN(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&models.FileModel{}, &models.CodeReportModel{}, &models.DocumentModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	fileRepo, err := persistence.NewGormFileMetaRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create file repository: %w", err)
	}
	reportRepo, err := persistence.NewGormCodeReportRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create code report repository: %w", err)
	}
	documentRepo, err := persistence.NewGormDocumentRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create document repository: %w", err)
	}

	ollamaSettings := &config.OllamaSettings{BaseURL: ollamaBaseURL()}
	connector, err := ollama.NewClient(ollamaSettings, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama client: %w", err)
	}

	scanSettings := &config.ScanSettings{}
	watcherSettings := &config.WatcherSettings{}

	fileScan, err := app.NewFileScanService(fileRepo, scanSettings, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create file scan service: %w", err)
	}
	fileMetadata, err := app.NewFileMetadataService(fileRepo, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create file metadata service: %w", err)
	}
	codeAnalysis, err := app.NewCodeAnalysisService(reportRepo, scanSettings, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create code analysis service: %w", err)
	}
	codeReview, err := app.NewCodeReviewService(connector, reportRepo, ollamaSettings, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create code review service: %w", err)
	}
	dependencyScan, err := app.NewDependencyAnalysisService(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create dependency analysis service: %w", err)
	}
	testScan, err := app.NewTestAnalysisService(scanSettings, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create test analysis service: %w", err)
	}
	documentScan, err := app.NewDocumentScanService(documentRepo, scanSettings, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create document scan service: %w", err)
	}
	documentQuery, err := app.NewDocumentQueryService(documentRepo, connector, ollamaSettings, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create document query service: %w", err)
	}
	watch, err := app.NewWatchService(watcherSettings, fileScan, codeAnalysis, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create watch service: %w", err)
	}

	return &serviceSet{
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
		logger:         loggerInstance,
	}, nil
}
