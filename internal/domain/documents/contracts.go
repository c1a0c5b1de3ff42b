package documents

import (
	"context"
	"errors"

	"system_ai_service/internal/domain/files"
)

// ErrDocumentNotFound is returned when a document is not present in the store.
var ErrDocumentNotFound = errors.New("document not found")

// ErrNoRelevantDocuments is returned by Ask when retrieval finds nothing
// to ground the question on.
var ErrNoRelevantDocuments = errors.New("no relevant documents found")

// DocumentScanService extracts text documents from a directory tree into
// the document store.
type DocumentScanService interface {
	// Scan walks dir and stores every text file that passes the extension,
	// size and content checks. Documents already stored for a path are
	// replaced with the fresh content.
	Scan(ctx context.Context, dir string, opts files.ScanOptions) (*files.ScanResult, error)
}

// DocumentQueryService retrieves documents and answers questions over them.
type DocumentQueryService interface {
	// Search returns up to k documents ranked by occurrence count of the
	// case-insensitive query term.
	Search(ctx context.Context, query string, k int) ([]*Document, error)

	// GetByID retrieves a document by ID.
	GetByID(ctx context.Context, documentID string) (*Document, error)

	// Ask retrieves the top-k documents for the question, builds a context
	// prompt from their snippets and asks the configured model for an answer.
	Ask(ctx context.Context, question string, model string, k int) (*Answer, error)
}

// DocumentRepository defines the interface for document persistence.
type DocumentRepository interface {
	// Create adds a new Document to the database
	Create(ctx context.Context, doc *Document) error
	// GetByID retrieves a Document from the database by ID
	GetByID(ctx context.Context, documentID string) (*Document, error)
	// GetByPath retrieves a Document from the database by absolute path
	GetByPath(ctx context.Context, path string) (*Document, error)
	// Search lists Documents whose content contains the term, case-insensitive
	Search(ctx context.Context, term string, limit int) ([]*Document, error)
	// UpdateByID updates a Document in the database by ID
	UpdateByID(ctx context.Context, doc *Document) error
	// DeleteByID deletes a Document in the database by ID
	DeleteByID(ctx context.Context, documentID string) error
	// Count returns the number of stored documents
	Count(ctx context.Context) (int64, error)
}
