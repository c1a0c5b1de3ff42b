package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"system_ai_service/internal/domain/ai"
	"system_ai_service/internal/domain/documents"
	"system_ai_service/internal/domain/files"
	"system_ai_service/internal/pkg/config"
	"system_ai_service/internal/pkg/fsutil"
	"system_ai_service/internal/pkg/logger"

	"github.com/google/uuid"
)

// defaultTopK is used when a retrieval request does not specify how many
// documents to consider.
const defaultTopK = 3

// searchCandidateFactor widens the database pre-filter so occurrence
// ranking has enough candidates to pick the top k from.
const searchCandidateFactor = 5

// documentScanService implements the DocumentScanService interface
type documentScanService struct {
	documentRepo documents.DocumentRepository
	settings     *config.ScanSettings
	logger       logger.Logger
}

// NewDocumentScanService creates a new instance of DocumentScanService
func NewDocumentScanService(documentRepo documents.DocumentRepository, settings *config.ScanSettings, logger logger.Logger) (documents.DocumentScanService, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scan settings: %w", err)
	}
	return &documentScanService{
		documentRepo: documentRepo,
		settings:     settings,
		logger:       logger,
	}, nil
}

func (s *documentScanService) Scan(ctx context.Context, dir string, opts files.ScanOptions) (*files.ScanResult, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to stat scan directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan target %s is not a directory", dir)
	}

	opts = resolveScanOptions(opts, s.settings)
	start := time.Now()
	result := &files.ScanResult{Directory: dir}

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			result.Skipped++
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && excludedDir(d.Name(), opts.ExcludedDirs) {
				return filepath.SkipDir
			}
			return nil
		}
		if result.Processed >= opts.MaxFiles {
			return filepath.SkipAll
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !extensionAllowed(ext, opts.Extensions) {
			result.Skipped++
			return nil
		}

		fileInfo, err := d.Info()
		if err != nil || fileInfo.Size() > opts.MaxFileSize {
			result.Skipped++
			return nil
		}
		if !fsutil.IsLikelyText(path) {
			result.Skipped++
			return nil
		}

		if err := s.storeDocument(ctx, path, fileInfo); err != nil {
			s.logger.Warn("Failed to store document ", path, ": ", err)
			result.Skipped++
			return nil
		}
		result.Processed++
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("document scan of %s aborted: %w", dir, err)
	}

	result.Duration = time.Since(start)
	s.logger.Info("Scanned ", dir, ": ", result.Processed, " documents stored, ", result.Skipped, " skipped")
	return result, nil
}

// storeDocument upserts the stored document for one file path
func (s *documentScanService) storeDocument(ctx context.Context, path string, info os.FileInfo) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	if len(content) == 0 {
		return fmt.Errorf("file is empty")
	}

	now := time.Now()
	existing, err := s.documentRepo.GetByPath(ctx, path)
	switch {
	case err == nil:
		existing.Size = info.Size()
		existing.Content = string(content)
		existing.DateTimeModified = info.ModTime()
		existing.DateTimeIndexed = now
		return s.documentRepo.UpdateByID(ctx, existing)

	case errors.Is(err, documents.ErrDocumentNotFound):
		doc := &documents.Document{
			ID:               uuid.New().String(),
			Path:             path,
			Name:             filepath.Base(path),
			Extension:        strings.ToLower(filepath.Ext(path)),
			Size:             info.Size(),
			Content:          string(content),
			DateTimeModified: info.ModTime(),
			DateTimeIndexed:  now,
		}
		return s.documentRepo.Create(ctx, doc)

	default:
		return err
	}
}

// documentQueryService implements the DocumentQueryService interface
type documentQueryService struct {
	documentRepo documents.DocumentRepository
	connector    ai.Connector
	settings     *config.OllamaSettings
	logger       logger.Logger
}

// NewDocumentQueryService creates a new instance of DocumentQueryService
func NewDocumentQueryService(documentRepo documents.DocumentRepository, connector ai.Connector, settings *config.OllamaSettings, logger logger.Logger) (documents.DocumentQueryService, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid ollama settings: %w", err)
	}
	return &documentQueryService{
		documentRepo: documentRepo,
		connector:    connector,
		settings:     settings,
		logger:       logger,
	}, nil
}

func (s *documentQueryService) Search(ctx context.Context, query string, k int) ([]*documents.Document, error) {
	term := strings.TrimSpace(query)
	if term == "" {
		return nil, fmt.Errorf("search query must not be empty")
	}
	if k <= 0 {
		k = defaultTopK
	}

	candidates, err := s.documentRepo.Search(ctx, term, k*searchCandidateFactor)
	if err != nil {
		return nil, err
	}

	// Rank candidates by occurrence count of the term, most hits first
	lowered := strings.ToLower(term)
	sort.SliceStable(candidates, func(i, j int) bool {
		return occurrences(candidates[i], lowered) > occurrences(candidates[j], lowered)
	})

	if len(candidates) > k {
		candidates = candidates[:k]
	}
	return candidates, nil
}

// occurrences counts term hits across content and name, case-insensitive
func occurrences(doc *documents.Document, loweredTerm string) int {
	count := strings.Count(strings.ToLower(doc.Content), loweredTerm)
	count += strings.Count(strings.ToLower(doc.Name), loweredTerm)
	return count
}

// keywordMinLength filters out short filler words when a full question is
// broken down for retrieval.
const keywordMinLength = 4

// retrieveByKeywords breaks the question into keywords, collects matching
// documents per keyword and ranks them by total keyword occurrences.
func (s *documentQueryService) retrieveByKeywords(ctx context.Context, question string, k int) ([]*documents.Document, error) {
	var keywords []string
	for _, word := range strings.Fields(strings.ToLower(question)) {
		word = strings.Trim(word, ".,!?\"'()[]{}:;")
		if len(word) >= keywordMinLength {
			keywords = append(keywords, word)
		}
	}
	if len(keywords) == 0 {
		return nil, nil
	}

	byID := make(map[string]*documents.Document)
	scores := make(map[string]int)
	for _, keyword := range keywords {
		matched, err := s.documentRepo.Search(ctx, keyword, k*searchCandidateFactor)
		if err != nil {
			return nil, err
		}
		for _, doc := range matched {
			byID[doc.ID] = doc
			scores[doc.ID] += occurrences(doc, keyword)
		}
	}

	ranked := make([]*documents.Document, 0, len(byID))
	for id := range byID {
		ranked = append(ranked, byID[id])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i].ID] > scores[ranked[j].ID]
	})

	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked, nil
}

func (s *documentQueryService) GetByID(ctx context.Context, documentID string) (*documents.Document, error) {
	return s.documentRepo.GetByID(ctx, documentID)
}

func (s *documentQueryService) Ask(ctx context.Context, question string, model string, k int) (*documents.Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("question must not be empty")
	}

	if k <= 0 {
		k = defaultTopK
	}
	relevant, err := s.retrieveByKeywords(ctx, question, k)
	if err != nil {
		return nil, err
	}
	if len(relevant) == 0 {
		return nil, documents.ErrNoRelevantDocuments
	}

	if model == "" {
		model = s.settings.TextModel
	}
	resolved, err := s.connector.ResolveModel(ctx, model)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve model: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("Answer the question using only the documents below.\n\n")
	sources := make([]string, 0, len(relevant))
	for _, doc := range relevant {
		fmt.Fprintf(&sb, "Document %s:\n%s\n\n", doc.Name, doc.Snippet())
		sources = append(sources, doc.Path)
	}
	fmt.Fprintf(&sb, "Question: %s", question)

	response, err := s.connector.Generate(ctx, resolved, sb.String())
	if err != nil {
		return nil, fmt.Errorf("failed to generate answer: %w", err)
	}

	return &documents.Answer{
		Question: question,
		Response: response,
		Model:    resolved,
		Sources:  sources,
	}, nil
}
