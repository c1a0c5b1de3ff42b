package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"system_ai_service/internal/domain/documents"
	"system_ai_service/internal/infrastructure/persistence/models"
	"system_ai_service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormDocumentRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormDocumentRepository creates a new GORM-based DocumentRepository implementation
func NewGormDocumentRepository(db *gorm.DB, logger logger.Logger) (documents.DocumentRepository, error) {
	return &gormDocumentRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormDocumentRepository) Create(ctx context.Context, doc *documents.Document) error {
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.DocumentModel{}
	model.FromDomain(doc)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	r.logger.Info("Created document with id ", doc.ID)
	return nil
}

func (r *gormDocumentRepository) GetByID(ctx context.Context, documentID string) (*documents.Document, error) {
	var model models.DocumentModel
	if err := r.db.WithContext(ctx).Where("id = ?", documentID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, documents.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to fetch document: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormDocumentRepository) GetByPath(ctx context.Context, path string) (*documents.Document, error) {
	var model models.DocumentModel
	if err := r.db.WithContext(ctx).Where("path = ?", path).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, documents.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to fetch document: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormDocumentRepository) Search(ctx context.Context, term string, limit int) ([]*documents.Document, error) {
	var modelList []*models.DocumentModel

	dbQuery := r.db.WithContext(ctx).Model(&models.DocumentModel{})
	if term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		dbQuery = dbQuery.Where("LOWER(content) LIKE ? OR LOWER(name) LIKE ?", pattern, pattern)
	}
	if limit > 0 {
		dbQuery = dbQuery.Limit(limit)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to search documents: %w", err)
	}

	domainList := make([]*documents.Document, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormDocumentRepository) UpdateByID(ctx context.Context, doc *documents.Document) error {
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.DocumentModel{}
	model.FromDomain(doc)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}

	r.logger.Info("Updated document with id ", doc.ID)
	return nil
}

func (r *gormDocumentRepository) DeleteByID(ctx context.Context, documentID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", documentID).Delete(&models.DocumentModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete document: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return documents.ErrDocumentNotFound
	}

	r.logger.Info("Deleted document with id ", documentID)
	return nil
}

func (r *gormDocumentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.DocumentModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return count, nil
}
