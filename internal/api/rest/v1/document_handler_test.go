//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"
	"time"

	"system_ai_service/internal/domain/documents"
	"system_ai_service/internal/domain/files"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testDocument() *documents.Document {
	return &documents.Document{
		ID:               "33333333-3333-4333-8333-333333333333",
		Path:             "/srv/docs/deploy.md",
		Name:             "deploy.md",
		Extension:        ".md",
		Size:             64,
		Content:          "Deployment requires Docker and a registry login.",
		DateTimeModified: time.Now(),
		DateTimeIndexed:  time.Now(),
	}
}

func TestDocumentHandler_Scan_Success(t *testing.T) {
	mockScanService := new(MockDocumentScanService)
	handler := NewDocumentHandler(mockScanService, new(MockDocumentQueryService))

	mockScanService.On("Scan", mock.Anything, "/srv/docs", mock.Anything).
		Return(&files.ScanResult{Directory: "/srv/docs", Processed: 2, Duration: 5 * time.Millisecond}, nil)

	c, w := newTestContext(t, "POST", BasePath+"/documents/scans", []byte(`{"directory":"/srv/docs"}`))
	handler.Scan(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"processed":2`)
	mockScanService.AssertExpectations(t)
}

func TestDocumentHandler_Search_Success(t *testing.T) {
	mockQueryService := new(MockDocumentQueryService)
	handler := NewDocumentHandler(new(MockDocumentScanService), mockQueryService)

	doc := testDocument()
	mockQueryService.On("Search", mock.Anything, "docker", 5).Return([]*documents.Document{doc}, nil)

	c, w := newTestContext(t, "GET", BasePath+"/documents?q=docker&k=5", nil)
	handler.Search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "deploy.md")
	mockQueryService.AssertExpectations(t)
}

func TestDocumentHandler_Search_MissingQuery(t *testing.T) {
	handler := NewDocumentHandler(new(MockDocumentScanService), new(MockDocumentQueryService))

	c, w := newTestContext(t, "GET", BasePath+"/documents", nil)
	handler.Search(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "query parameter q is required")
}

func TestDocumentHandler_GetByID_Success(t *testing.T) {
	mockQueryService := new(MockDocumentQueryService)
	handler := NewDocumentHandler(new(MockDocumentScanService), mockQueryService)

	doc := testDocument()
	mockQueryService.On("GetByID", mock.Anything, doc.ID).Return(doc, nil)

	c, w := newTestContext(t, "GET", BasePath+"/documents/"+doc.ID, nil)
	c.Params = gin.Params{{Key: "id", Value: doc.ID}}
	handler.GetByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), doc.ID)
}

func TestDocumentHandler_GetByID_NotFound(t *testing.T) {
	mockQueryService := new(MockDocumentQueryService)
	handler := NewDocumentHandler(new(MockDocumentScanService), mockQueryService)

	mockQueryService.On("GetByID", mock.Anything, "missing").Return(nil, documents.ErrDocumentNotFound)

	c, w := newTestContext(t, "GET", BasePath+"/documents/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}
	handler.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDocumentHandler_Ask_Success(t *testing.T) {
	mockQueryService := new(MockDocumentQueryService)
	handler := NewDocumentHandler(new(MockDocumentScanService), mockQueryService)

	mockQueryService.On("Ask", mock.Anything, "How do I deploy?", "", 0).Return(&documents.Answer{
		Question: "How do I deploy?",
		Response: "With Docker.",
		Model:    "llama3",
		Sources:  []string{"/srv/docs/deploy.md"},
	}, nil)

	c, w := newTestContext(t, "POST", BasePath+"/documents/queries", []byte(`{"question":"How do I deploy?"}`))
	handler.Ask(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "With Docker.")
	mockQueryService.AssertExpectations(t)
}

func TestDocumentHandler_Ask_NoRelevantDocuments(t *testing.T) {
	mockQueryService := new(MockDocumentQueryService)
	handler := NewDocumentHandler(new(MockDocumentScanService), mockQueryService)

	mockQueryService.On("Ask", mock.Anything, "anything?", "", 0).
		Return(nil, documents.ErrNoRelevantDocuments)

	c, w := newTestContext(t, "POST", BasePath+"/documents/queries", []byte(`{"question":"anything?"}`))
	handler.Ask(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "no relevant documents")
}

func TestDocumentHandler_Ask_MissingQuestion(t *testing.T) {
	handler := NewDocumentHandler(new(MockDocumentScanService), new(MockDocumentQueryService))

	c, w := newTestContext(t, "POST", BasePath+"/documents/queries", []byte(`{}`))
	handler.Ask(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
