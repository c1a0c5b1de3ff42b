package persistence

import (
	"context"
	"errors"
	"fmt"

	"system_ai_service/internal/domain/analysis"
	"system_ai_service/internal/infrastructure/persistence/models"
	"system_ai_service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormCodeReportRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCodeReportRepository creates a new GORM-based CodeReportRepository implementation
func NewGormCodeReportRepository(db *gorm.DB, logger logger.Logger) (analysis.CodeReportRepository, error) {
	return &gormCodeReportRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCodeReportRepository) Create(ctx context.Context, report *analysis.CodeReport) error {
	if err := report.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CodeReportModel{}
	model.FromDomain(report)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create code report: %w", err)
	}

	r.logger.Info("Created code report with id ", report.ID)
	return nil
}

func (r *gormCodeReportRepository) List(ctx context.Context, query *analysis.CodeReportQuery) ([]*analysis.CodeReport, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.CodeReportModel
	dbQuery := r.db.WithContext(ctx).Model(&models.CodeReportModel{})

	// Apply filters
	if query.Language != "" {
		dbQuery = dbQuery.Where("language = ?", query.Language)
	}
	if query.PathPrefix != "" {
		dbQuery = dbQuery.Where("path LIKE ?", query.PathPrefix+"%")
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
		return nil, fmt.Errorf("failed to fetch code reports: %w", err)
	}

	domainList := make([]*analysis.CodeReport, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormCodeReportRepository) GetByID(ctx context.Context, reportID string) (*analysis.CodeReport, error) {
	var model models.CodeReportModel
	if err := r.db.WithContext(ctx).Where("id = ?", reportID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, analysis.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to fetch code report: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormCodeReportRepository) GetByPath(ctx context.Context, path string) (*analysis.CodeReport, error) {
	var model models.CodeReportModel
	if err := r.db.WithContext(ctx).Where("path = ?", path).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, analysis.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to fetch code report: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormCodeReportRepository) UpdateByID(ctx context.Context, report *analysis.CodeReport) error {
	if err := report.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CodeReportModel{}
	model.FromDomain(report)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update code report: %w", err)
	}

	r.logger.Info("Updated code report with id ", report.ID)
	return nil
}

func (r *gormCodeReportRepository) DeleteByID(ctx context.Context, reportID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", reportID).Delete(&models.CodeReportModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete code report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return analysis.ErrReportNotFound
	}

	r.logger.Info("Deleted code report with id ", reportID)
	return nil
}

func (r *gormCodeReportRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.CodeReportModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count code reports: %w", err)
	}
	return count, nil
}
