package analysis

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// CodeReport entity holding the analysis result for one source file.
type CodeReport struct {
	ID                string    `validate:"required,uuid4"`
	Path              string    `validate:"required,min=1"`
	Language          string    `validate:"required,min=1,max=50"`
	Lines             int       `validate:"min=0"`
	Size              int64     `validate:"min=0"`
	Functions         int       `validate:"min=0"`
	ControlStructures int       `validate:"min=0"`
	Complexity        int       `validate:"min=0"`
	DateTimeCreated   time.Time `validate:"required"`
	Insights          *string   `validate:"omitempty,min=1"`
}

// Validate for validating CodeReport struct
func (r *CodeReport) Validate() error {
	validate := validator.New()

	err := validate.Struct(r)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// CodeReportQuery filters and paginates code report listings.
type CodeReportQuery struct {
	Language   string `validate:"omitempty,max=50"`
	PathPrefix string `validate:"omitempty"`

	SortBy    string `validate:"omitempty,oneof=path language lines complexity date_time_created"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
	Limit     int    `validate:"omitempty,min=1,max=1000"`
	Offset    int    `validate:"omitempty,min=0"`
}

// NewCodeReportQuery creates a query with default pagination and sorting.
func NewCodeReportQuery() *CodeReportQuery {
	return &CodeReportQuery{
		SortBy:    "date_time_created",
		SortOrder: "desc",
		Limit:     100,
	}
}

// Validate for validating CodeReportQuery struct
func (q *CodeReportQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("query validation failed: %w", err)
	}

	return nil
}

// SourceMetrics are the raw counters extracted from a source file.
type SourceMetrics struct {
	Lines             int
	Functions         int
	ControlStructures int
	Complexity        int
}

var controlKeywords = []string{"if ", "for ", "while ", "switch ", "case "}

var functionKeywords = []string{"def ", "function ", "func "}

// MeasureSource computes line, function and control-structure counts for a
// piece of source text. The complexity score weighs control structures
// double and function definitions triple on top of the line count.
func MeasureSource(content string) SourceMetrics {
	lines := strings.Split(content, "\n")

	var controls, functions int
	for _, line := range lines {
		for _, kw := range controlKeywords {
			if strings.Contains(line, kw) {
				controls++
				break
			}
		}
		for _, kw := range functionKeywords {
			if strings.Contains(line, kw) {
				functions++
				break
			}
		}
	}

	return SourceMetrics{
		Lines:             len(lines),
		Functions:         functions,
		ControlStructures: controls,
		Complexity:        len(lines) + controls*2 + functions*3,
	}
}

// LanguageStats aggregates per-language counters for a summary.
type LanguageStats struct {
	Files int
	Lines int
	Size  int64
}

// CodeSummary aggregates all code reports.
type CodeSummary struct {
	TotalFiles int
	TotalLines int
	TotalSize  int64
	Languages  map[string]LanguageStats
}

// Summarize folds a list of reports into a CodeSummary.
func Summarize(reports []*CodeReport) *CodeSummary {
	summary := &CodeSummary{Languages: make(map[string]LanguageStats)}

	for _, r := range reports {
		stats := summary.Languages[r.Language]
		stats.Files++
		stats.Lines += r.Lines
		stats.Size += r.Size
		summary.Languages[r.Language] = stats

		summary.TotalFiles++
		summary.TotalLines += r.Lines
		summary.TotalSize += r.Size
	}

	return summary
}

// PatternMatch is one regex hit inside an analyzed file.
type PatternMatch struct {
	Path    string
	Line    int
	Match   string
	Context string
}
