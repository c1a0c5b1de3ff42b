package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"system_ai_service/internal/domain/ai"
	"system_ai_service/internal/domain/analysis"
	"system_ai_service/internal/pkg/config"
	"system_ai_service/internal/pkg/fsutil"
	"system_ai_service/internal/pkg/logger"

	"github.com/google/uuid"
)

// Prompt context is capped so large files do not blow the model context window.
const maxPromptSourceRunes = 4000

// patternContextLines is the number of lines shown around a pattern hit.
const patternContextLines = 2

// codeAnalysisService implements the CodeAnalysisService interface
type codeAnalysisService struct {
	reportRepo analysis.CodeReportRepository
	settings   *config.ScanSettings
	logger     logger.Logger
}

// NewCodeAnalysisService creates a new instance of CodeAnalysisService
func NewCodeAnalysisService(reportRepo analysis.CodeReportRepository, settings *config.ScanSettings, logger logger.Logger) (analysis.CodeAnalysisService, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scan settings: %w", err)
	}
	return &codeAnalysisService{
		reportRepo: reportRepo,
		settings:   settings,
		logger:     logger,
	}, nil
}

func (s *codeAnalysisService) AnalyzeFile(ctx context.Context, path string) (*analysis.CodeReport, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if !fsutil.IsLikelyText(path) {
		return nil, analysis.ErrNotText
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	metrics := analysis.MeasureSource(string(content))
	now := time.Now()

	existing, err := s.reportRepo.GetByPath(ctx, path)
	switch {
	case err == nil:
		existing.Language = analysis.DetectLanguage(path)
		existing.Lines = metrics.Lines
		existing.Size = info.Size()
		existing.Functions = metrics.Functions
		existing.ControlStructures = metrics.ControlStructures
		existing.Complexity = metrics.Complexity
		existing.DateTimeCreated = now
		if err := s.reportRepo.UpdateByID(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil

	case errors.Is(err, analysis.ErrReportNotFound):
		report := &analysis.CodeReport{
			ID:                uuid.New().String(),
			Path:              path,
			Language:          analysis.DetectLanguage(path),
			Lines:             metrics.Lines,
			Size:              info.Size(),
			Functions:         metrics.Functions,
			ControlStructures: metrics.ControlStructures,
			Complexity:        metrics.Complexity,
			DateTimeCreated:   now,
		}
		if err := s.reportRepo.Create(ctx, report); err != nil {
			return nil, err
		}
		return report, nil

	default:
		return nil, err
	}
}

func (s *codeAnalysisService) AnalyzeDirectory(ctx context.Context, dir string, recursive bool) ([]*analysis.CodeReport, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to stat directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	var reports []*analysis.CodeReport
	analyze := func(path string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		report, err := s.AnalyzeFile(ctx, path)
		if err != nil {
			if errors.Is(err, analysis.ErrNotText) {
				return nil
			}
			s.logger.Warn("Failed to analyze ", path, ": ", err)
			return nil
		}
		reports = append(reports, report)
		return nil
	}

	if recursive {
		err = filepath.WalkDir(dir, func(path string, d os.DirEntry, walkErr error) error {
			if walkErr != nil {
				return nil
			}
			if d.IsDir() {
				if path != dir && excludedDir(d.Name(), s.settings.ExcludedDirs) {
					return filepath.SkipDir
				}
				return nil
			}
			if !analysis.IsSupportedExtension(strings.ToLower(filepath.Ext(path))) {
				return nil
			}
			return analyze(path)
		})
	} else {
		var entries []os.DirEntry
		entries, err = os.ReadDir(dir)
		if err == nil {
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				if !analysis.IsSupportedExtension(strings.ToLower(filepath.Ext(entry.Name()))) {
					continue
				}
				if err = analyze(filepath.Join(dir, entry.Name())); err != nil {
					break
				}
			}
		}
	}
	if err != nil {
		return nil, fmt.Errorf("analysis of %s aborted: %w", dir, err)
	}

	s.logger.Info("Analyzed ", len(reports), " source files under ", dir)
	return reports, nil
}

// listAllReports pages through the full report store.
func (s *codeAnalysisService) listAllReports(ctx context.Context) ([]*analysis.CodeReport, error) {
	query := analysis.NewCodeReportQuery()
	query.Limit = 1000

	var all []*analysis.CodeReport
	for {
		page, err := s.reportRepo.List(ctx, query)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < query.Limit {
			break
		}
		query.Offset += query.Limit
	}
	return all, nil
}

func (s *codeAnalysisService) Summary(ctx context.Context) (*analysis.CodeSummary, error) {
	all, err := s.listAllReports(ctx)
	if err != nil {
		return nil, err
	}
	return analysis.Summarize(all), nil
}

func (s *codeAnalysisService) FindPatterns(ctx context.Context, pattern string, extensions []string) ([]*analysis.PatternMatch, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern: %w", err)
	}

	reports, err := s.listAllReports(ctx)
	if err != nil {
		return nil, err
	}

	var matches []*analysis.PatternMatch
	for _, report := range reports {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !extensionAllowed(strings.ToLower(filepath.Ext(report.Path)), extensions) {
			continue
		}

		content, err := os.ReadFile(report.Path)
		if err != nil {
			s.logger.Warn("Skipping unreadable file ", report.Path, ": ", err)
			continue
		}

		lines := strings.Split(string(content), "\n")
		for i, line := range lines {
			hit := re.FindString(line)
			if hit == "" {
				continue
			}
			matches = append(matches, &analysis.PatternMatch{
				Path:    report.Path,
				Line:    i + 1,
				Match:   hit,
				Context: contextAround(lines, i, patternContextLines),
			})
		}
	}

	return matches, nil
}

// contextAround joins the lines within window lines of index i.
func contextAround(lines []string, i, window int) string {
	lo := i - window
	if lo < 0 {
		lo = 0
	}
	hi := i + window + 1
	if hi > len(lines) {
		hi = len(lines)
	}
	return strings.Join(lines[lo:hi], "\n")
}

// codeReviewService implements the CodeReviewService interface using the
// model backend
type codeReviewService struct {
	connector  ai.Connector
	reportRepo analysis.CodeReportRepository
	settings   *config.OllamaSettings
	logger     logger.Logger
}

// NewCodeReviewService creates a new instance of CodeReviewService
func NewCodeReviewService(connector ai.Connector, reportRepo analysis.CodeReportRepository, settings *config.OllamaSettings, logger logger.Logger) (analysis.CodeReviewService, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid ollama settings: %w", err)
	}
	return &codeReviewService{
		connector:  connector,
		reportRepo: reportRepo,
		settings:   settings,
		logger:     logger,
	}, nil
}

func (s *codeReviewService) ReviewFile(ctx context.Context, path string, model string) (string, error) {
	source, language, err := s.readSource(path)
	if err != nil {
		return "", err
	}

	if model == "" {
		model = s.settings.CodeModel
	}
	resolved, err := s.connector.ResolveModel(ctx, model)
	if err != nil {
		return "", fmt.Errorf("failed to resolve model: %w", err)
	}

	prompt := fmt.Sprintf(
		"Review the following %s code. Describe its structure, point out potential bugs and suggest concrete improvements.\n\n%s",
		language, source)

	review, err := s.connector.Generate(ctx, resolved, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate review: %w", err)
	}

	s.storeInsights(ctx, path, review)
	return review, nil
}

func (s *codeReviewService) ReviewSecurity(ctx context.Context, path string, model string) (string, error) {
	source, language, err := s.readSource(path)
	if err != nil {
		return "", err
	}

	if model == "" {
		model = s.settings.SecurityModel
	}
	resolved, err := s.connector.ResolveModel(ctx, model)
	if err != nil {
		return "", fmt.Errorf("failed to resolve model: %w", err)
	}

	prompt := fmt.Sprintf(
		"Audit the following %s code for security issues. List each finding with its severity and a suggested fix.\n\n%s",
		language, source)

	review, err := s.connector.Generate(ctx, resolved, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate security review: %w", err)
	}
	return review, nil
}

// readSource loads the file and truncates it to a prompt-friendly length.
func (s *codeReviewService) readSource(path string) (string, string, error) {
	if !fsutil.IsLikelyText(path) {
		return "", "", analysis.ErrNotText
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read file: %w", err)
	}

	source := string(content)
	runes := []rune(source)
	if len(runes) > maxPromptSourceRunes {
		source = string(runes[:maxPromptSourceRunes])
	}
	return source, analysis.DetectLanguage(path), nil
}

// storeInsights attaches the review text to an existing report, best effort.
func (s *codeReviewService) storeInsights(ctx context.Context, path, review string) {
	report, err := s.reportRepo.GetByPath(ctx, path)
	if err != nil {
		return
	}
	report.Insights = &review
	if err := s.reportRepo.UpdateByID(ctx, report); err != nil {
		s.logger.Warn("Failed to store review insights for ", path, ": ", err)
	}
}
