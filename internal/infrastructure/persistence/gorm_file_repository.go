package persistence

import (
	"context"
	"errors"
	"fmt"

	"system_ai_service/internal/domain/files"
	"system_ai_service/internal/infrastructure/persistence/models"
	"system_ai_service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormFileMetaRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormFileMetaRepository creates a new GORM-based FileMetaRepository implementation
func NewGormFileMetaRepository(db *gorm.DB, logger logger.Logger) (files.FileMetaRepository, error) {
	return &gormFileMetaRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormFileMetaRepository) Create(ctx context.Context, file *files.FileMeta) error {
	// Validate domain entity (business rules)
	if err := file.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	// Convert to GORM model
	model := &models.FileModel{}
	model.FromDomain(file)

	// Persist to database
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create file metadata: %w", err)
	}

	r.logger.Info("Created file metadata with id ", file.ID)
	return nil
}

func (r *gormFileMetaRepository) List(ctx context.Context, query *files.FileMetaQuery) ([]*files.FileMeta, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.FileModel
	dbQuery := r.db.WithContext(ctx).Model(&models.FileModel{})

	// Apply filters
	if query.Name != "" {
		dbQuery = dbQuery.Where("name LIKE ?", "%"+query.Name+"%")
	}
	if query.Extension != "" {
		dbQuery = dbQuery.Where("extension = ?", query.Extension)
	}
	if query.PathPrefix != "" {
		dbQuery = dbQuery.Where("path LIKE ?", query.PathPrefix+"%")
	}
	if !query.DateTimeIndexed.IsZero() {
		dbQuery = dbQuery.Where("date_time_indexed >= ?", query.DateTimeIndexed)
	}

	// Sorting
	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	// Pagination
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch file metadata: %w", err)
	}

	// Convert to domain models
	domainList := make([]*files.FileMeta, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormFileMetaRepository) GetByID(ctx context.Context, fileID string) (*files.FileMeta, error) {
	var model models.FileModel
	if err := r.db.WithContext(ctx).Where("id = ?", fileID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, files.ErrFileNotFound
		}
		return nil, fmt.Errorf("failed to fetch file metadata: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormFileMetaRepository) GetByPath(ctx context.Context, path string) (*files.FileMeta, error) {
	var model models.FileModel
	if err := r.db.WithContext(ctx).Where("path = ?", path).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, files.ErrFileNotFound
		}
		return nil, fmt.Errorf("failed to fetch file metadata: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormFileMetaRepository) UpdateByID(ctx context.Context, file *files.FileMeta) error {
	if err := file.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.FileModel{}
	model.FromDomain(file)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update file metadata: %w", err)
	}

	r.logger.Info("Updated file metadata with id ", file.ID)
	return nil
}

func (r *gormFileMetaRepository) DeleteByID(ctx context.Context, fileID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", fileID).Delete(&models.FileModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete file metadata: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return files.ErrFileNotFound
	}

	r.logger.Info("Deleted file metadata with id ", fileID)
	return nil
}

func (r *gormFileMetaRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.FileModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count file metadata: %w", err)
	}
	return count, nil
}
