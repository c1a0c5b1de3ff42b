package v1

import (
	"context"
	"errors"
	"net/http"

	"system_ai_service/internal/domain/analysis"
	"system_ai_service/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// AnalysisHandler defines the interface for handling code analysis operations
type AnalysisHandler interface {
	Analyze(ctx *gin.Context)
	ListReports(ctx *gin.Context)
	GetReportByID(ctx *gin.Context)
	Summary(ctx *gin.Context)
	FindPatterns(ctx *gin.Context)
	Review(ctx *gin.Context)
	ReviewSecurity(ctx *gin.Context)
	AnalyzeDependencies(ctx *gin.Context)
	AnalyzeTests(ctx *gin.Context)
}

// analysisHandler struct holds the services
type analysisHandler struct {
	analysisService   analysis.CodeAnalysisService
	reviewService     analysis.CodeReviewService
	dependencyService analysis.DependencyAnalysisService
	testService       analysis.TestAnalysisService
	reportRepo        analysis.CodeReportRepository
}

// NewAnalysisHandler creates a new AnalysisHandler
func NewAnalysisHandler(analysisService analysis.CodeAnalysisService, reviewService analysis.CodeReviewService, dependencyService analysis.DependencyAnalysisService, testService analysis.TestAnalysisService, reportRepo analysis.CodeReportRepository) AnalysisHandler {
	return &analysisHandler{
		analysisService:   analysisService,
		reviewService:     reviewService,
		dependencyService: dependencyService,
		testService:       testService,
		reportRepo:        reportRepo,
	}
}

func toCodeReportResponse(report *analysis.CodeReport) CodeReportResponse {
	return CodeReportResponse{
		ID:                report.ID,
		Path:              report.Path,
		Language:          report.Language,
		Lines:             report.Lines,
		Size:              report.Size,
		Functions:         report.Functions,
		ControlStructures: report.ControlStructures,
		Complexity:        report.Complexity,
		DateTimeCreated:   report.DateTimeCreated,
		Insights:          report.Insights,
	}
}

// Analyze analyzes a single file or a whole directory
func (handler *analysisHandler) Analyze(ctx *gin.Context) {
	var request AnalyzeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, http.StatusBadRequest, "invalid request body: %v", err)
		return
	}
	if (request.Path == "") == (request.Directory == "") {
		respondError(ctx, http.StatusBadRequest, "exactly one of path or directory must be set")
		return
	}

	if request.Path != "" {
		report, err := handler.analysisService.AnalyzeFile(ctx, request.Path)
		if err != nil {
			if errors.Is(err, analysis.ErrNotText) {
				respondError(ctx, http.StatusUnprocessableEntity, "file %s is not a text file", request.Path)
				return
			}
			respondError(ctx, http.StatusBadRequest, "error analyzing file: %v", err)
			return
		}
		ctx.JSON(http.StatusCreated, []CodeReportResponse{toCodeReportResponse(report)})
		return
	}

	reports, err := handler.analysisService.AnalyzeDirectory(ctx, request.Directory, request.Recursive)
	if err != nil {
		respondError(ctx, http.StatusBadRequest, "error analyzing directory: %v", err)
		return
	}

	responses := make([]CodeReportResponse, 0, len(reports))
	for _, report := range reports {
		responses = append(responses, toCodeReportResponse(report))
	}
	ctx.JSON(http.StatusCreated, responses)
}

// ListReports fetches stored code reports optionally with query parameters
func (handler *analysisHandler) ListReports(ctx *gin.Context) {
	query := analysis.NewCodeReportQuery()

	if language := ctx.Query("language"); len(language) > 0 {
		query.Language = language
	}

	if pathPrefix := ctx.Query("pathPrefix"); len(pathPrefix) > 0 {
		query.PathPrefix = pathPrefix
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

	reports, err := handler.reportRepo.List(ctx, query)
	if err != nil {
		respondError(ctx, http.StatusBadRequest, "error listing code reports: %v", err)
		return
	}

	responses := make([]CodeReportResponse, 0, len(reports))
	for _, report := range reports {
		responses = append(responses, toCodeReportResponse(report))
	}
	ctx.JSON(http.StatusOK, responses)
}

// GetReportByID fetches one code report by its id
func (handler *analysisHandler) GetReportByID(ctx *gin.Context) {
	reportID := ctx.Param("id")

	report, err := handler.reportRepo.GetByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, analysis.ErrReportNotFound) {
			respondError(ctx, http.StatusNotFound, "code report with id %s not found", reportID)
			return
		}
		respondError(ctx, http.StatusBadRequest, "error fetching code report: %v", err)
		return
	}

	ctx.JSON(http.StatusOK, toCodeReportResponse(report))
}

// Summary aggregates all stored reports per language
func (handler *analysisHandler) Summary(ctx *gin.Context) {
	summary, err := handler.analysisService.Summary(ctx)
	if err != nil {
		respondError(ctx, http.StatusBadRequest, "error building summary: %v", err)
		return
	}

	languages := make(map[string]LanguageStatsResponse, len(summary.Languages))
	for language, stats := range summary.Languages {
		languages[language] = LanguageStatsResponse{
			Files: stats.Files,
			Lines: stats.Lines,
			Size:  stats.Size,
		}
	}

	ctx.JSON(http.StatusOK, SummaryResponse{
		TotalFiles: summary.TotalFiles,
		TotalLines: summary.TotalLines,
		TotalSize:  summary.TotalSize,
		Languages:  languages,
	})
}

// FindPatterns searches analyzed files for a regex pattern
func (handler *analysisHandler) FindPatterns(ctx *gin.Context) {
	var request PatternRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, http.StatusBadRequest, "invalid request body: %v", err)
		return
	}

	matches, err := handler.analysisService.FindPatterns(ctx, request.Pattern, request.Extensions)
	if err != nil {
		respondError(ctx, http.StatusBadRequest, "error searching patterns: %v", err)
		return
	}

	responses := make([]PatternMatchResponse, 0, len(matches))
	for _, match := range matches {
		responses = append(responses, PatternMatchResponse{
			Path:    match.Path,
			Line:    match.Line,
			Match:   match.Match,
			Context: match.Context,
		})
	}
	ctx.JSON(http.StatusOK, responses)
}

// AnalyzeDependencies lists the dependencies declared by a project directory
func (handler *analysisHandler) AnalyzeDependencies(ctx *gin.Context) {
	var request DirectoryRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, http.StatusBadRequest, "invalid request body: %v", err)
		return
	}

	report, err := handler.dependencyService.AnalyzeDependencies(ctx, request.Directory)
	if err != nil {
		if errors.Is(err, analysis.ErrNoPackageManager) {
			respondError(ctx, http.StatusUnprocessableEntity, "no supported package manager found in %s", request.Directory)
			return
		}
		respondError(ctx, http.StatusBadRequest, "error analyzing dependencies: %v", err)
		return
	}

	dependencies := make([]DependencyResponse, 0, len(report.Dependencies))
	for _, dep := range report.Dependencies {
		dependencies = append(dependencies, DependencyResponse{Name: dep.Name, Version: dep.Version})
	}
	ctx.JSON(http.StatusOK, DependencyReportResponse{
		Directory:      report.Directory,
		PackageManager: report.PackageManager,
		Manifest:       report.Manifest,
		Dependencies:   dependencies,
	})
}

// AnalyzeTests reports static metrics over a project's test files
func (handler *analysisHandler) AnalyzeTests(ctx *gin.Context) {
	var request DirectoryRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, http.StatusBadRequest, "invalid request body: %v", err)
		return
	}

	report, err := handler.testService.AnalyzeTests(ctx, request.Directory)
	if err != nil {
		if errors.Is(err, analysis.ErrNoTestFiles) {
			respondError(ctx, http.StatusUnprocessableEntity, "no test files found in %s", request.Directory)
			return
		}
		respondError(ctx, http.StatusBadRequest, "error analyzing tests: %v", err)
		return
	}

	ctx.JSON(http.StatusOK, TestReportResponse{
		Directory:        report.Directory,
		TestFiles:        report.TestFiles,
		TestFunctions:    report.TestFunctions,
		Assertions:       report.Assertions,
		Lines:            report.Lines,
		AssertionDensity: report.AssertionDensity,
		Categories:       report.Categories,
		Recommendations:  report.Recommendations,
	})
}

// Review asks the code model to review a source file
func (handler *analysisHandler) Review(ctx *gin.Context) {
	handler.review(ctx, handler.reviewService.ReviewFile)
}

// ReviewSecurity asks the security model to audit a source file
func (handler *analysisHandler) ReviewSecurity(ctx *gin.Context) {
	handler.review(ctx, handler.reviewService.ReviewSecurity)
}

func (handler *analysisHandler) review(ctx *gin.Context, reviewFn func(context.Context, string, string) (string, error)) {
	var request ReviewRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, http.StatusBadRequest, "invalid request body: %v", err)
		return
	}

	review, err := reviewFn(ctx, request.Path, request.Model)
	if err != nil {
		if errors.Is(err, analysis.ErrNotText) {
			respondError(ctx, http.StatusUnprocessableEntity, "file %s is not a text file", request.Path)
			return
		}
		respondError(ctx, http.StatusBadGateway, "error generating review: %v", err)
		return
	}

	ctx.JSON(http.StatusOK, ReviewResponse{
		Path:   request.Path,
		Review: review,
	})
}
