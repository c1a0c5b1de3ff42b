package v1

import "time"

// ErrorResponse is the error payload returned by every endpoint
type ErrorResponse struct {
	Message *string `json:"message,omitempty"`
}

// ScanRequest asks for a directory scan. Zero fields fall back to the
// configured scan settings.
type ScanRequest struct {
	Directory    string   `json:"directory" binding:"required"`
	Extensions   []string `json:"extensions,omitempty"`
	ExcludedDirs []string `json:"excludedDirs,omitempty"`
	MaxFiles     int      `json:"maxFiles,omitempty"`
	MaxFileSize  int64    `json:"maxFileSize,omitempty"`
}

// ScanResultResponse summarizes a completed scan
type ScanResultResponse struct {
	Directory  string `json:"directory"`
	Processed  int    `json:"processed"`
	Skipped    int    `json:"skipped"`
	DurationMs int64  `json:"durationMs"`
}

// FileMetaResponse is the API representation of an indexed file
type FileMetaResponse struct {
	ID               string    `json:"id"`
	Path             string    `json:"path"`
	Name             string    `json:"name"`
	Extension        string    `json:"extension"`
	Size             int64     `json:"size"`
	Checksum         string    `json:"checksum"`
	DateTimeModified time.Time `json:"dateTimeModified"`
	DateTimeIndexed  time.Time `json:"dateTimeIndexed"`
}

// AnalyzeRequest asks for analysis of a single file or a directory
type AnalyzeRequest struct {
	Path      string `json:"path,omitempty"`
	Directory string `json:"directory,omitempty"`
	Recursive bool   `json:"recursive,omitempty"`
}

// CodeReportResponse is the API representation of a code report
type CodeReportResponse struct {
	ID                string    `json:"id"`
	Path              string    `json:"path"`
	Language          string    `json:"language"`
	Lines             int       `json:"lines"`
	Size              int64     `json:"size"`
	Functions         int       `json:"functions"`
	ControlStructures int       `json:"controlStructures"`
	Complexity        int       `json:"complexity"`
	DateTimeCreated   time.Time `json:"dateTimeCreated"`
	Insights          *string   `json:"insights,omitempty"`
}

// LanguageStatsResponse aggregates per-language counters
type LanguageStatsResponse struct {
	Files int   `json:"files"`
	Lines int   `json:"lines"`
	Size  int64 `json:"size"`
}

// SummaryResponse aggregates all stored code reports
type SummaryResponse struct {
	TotalFiles int                              `json:"totalFiles"`
	TotalLines int                              `json:"totalLines"`
	TotalSize  int64                            `json:"totalSize"`
	Languages  map[string]LanguageStatsResponse `json:"languages"`
}

// PatternRequest asks for a regex search over analyzed files
type PatternRequest struct {
	Pattern    string   `json:"pattern" binding:"required"`
	Extensions []string `json:"extensions,omitempty"`
}

// PatternMatchResponse is one regex hit
type PatternMatchResponse struct {
	Path    string `json:"path"`
	Line    int    `json:"line"`
	Match   string `json:"match"`
	Context string `json:"context"`
}

// DirectoryRequest names the project directory an operation works on
type DirectoryRequest struct {
	Directory string `json:"directory" binding:"required"`
}

// DependencyResponse is one declared project dependency
type DependencyResponse struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

// DependencyReportResponse lists the dependencies declared by a project
type DependencyReportResponse struct {
	Directory      string               `json:"directory"`
	PackageManager string               `json:"packageManager"`
	Manifest       string               `json:"manifest"`
	Dependencies   []DependencyResponse `json:"dependencies"`
}

// TestReportResponse aggregates static metrics over a project's test files
type TestReportResponse struct {
	Directory        string         `json:"directory"`
	TestFiles        int            `json:"testFiles"`
	TestFunctions    int            `json:"testFunctions"`
	Assertions       int            `json:"assertions"`
	Lines            int            `json:"lines"`
	AssertionDensity float64        `json:"assertionDensity"`
	Categories       map[string]int `json:"categories"`
	Recommendations  []string       `json:"recommendations"`
}

// ReviewRequest asks for a model-backed review of a source file
type ReviewRequest struct {
	Path  string `json:"path" binding:"required"`
	Model string `json:"model,omitempty"`
}

// ReviewResponse carries the review text
type ReviewResponse struct {
	Path   string `json:"path"`
	Review string `json:"review"`
}

// DocumentResponse is the API representation of a stored document
type DocumentResponse struct {
	ID               string    `json:"id"`
	Path             string    `json:"path"`
	Name             string    `json:"name"`
	Extension        string    `json:"extension"`
	Size             int64     `json:"size"`
	Snippet          string    `json:"snippet"`
	DateTimeModified time.Time `json:"dateTimeModified"`
	DateTimeIndexed  time.Time `json:"dateTimeIndexed"`
}

// AskRequest asks a question over the document store
type AskRequest struct {
	Question string `json:"question" binding:"required"`
	Model    string `json:"model,omitempty"`
	TopK     int    `json:"topK,omitempty"`
}

// AnswerResponse carries the model answer and its sources
type AnswerResponse struct {
	Question string   `json:"question"`
	Response string   `json:"response"`
	Model    string   `json:"model"`
	Sources  []string `json:"sources"`
}

// WatchRequest asks to watch a directory for changes
type WatchRequest struct {
	Directory string `json:"directory" binding:"required"`
}

// WatchStatusResponse describes the watcher state
type WatchStatusResponse struct {
	Running       bool       `json:"running"`
	Directory     string     `json:"directory,omitempty"`
	StartedAt     *time.Time `json:"startedAt,omitempty"`
	EventsHandled int64      `json:"eventsHandled"`
}

// ModelBackendStatus describes the reachability of the model server
type ModelBackendStatus struct {
	Online  bool     `json:"online"`
	Version string   `json:"version,omitempty"`
	Models  []string `json:"models,omitempty"`
}

// IndexStatus carries the record counts of the stores
type IndexStatus struct {
	Files     int64 `json:"files"`
	Reports   int64 `json:"reports"`
	Documents int64 `json:"documents"`
}

// SystemStatusResponse is the aggregate health view of the service
type SystemStatusResponse struct {
	ModelBackend ModelBackendStatus  `json:"modelBackend"`
	Index        IndexStatus         `json:"index"`
	Watcher      WatchStatusResponse `json:"watcher"`
}
