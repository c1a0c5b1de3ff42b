package models

import (
	"time"

	"system_ai_service/internal/domain/analysis"
)

// CodeReportModel is the GORM database model for code analysis reports
type CodeReportModel struct {
	ID                string    `gorm:"primaryKey;type:uuid"`
	Path              string    `gorm:"not null;uniqueIndex;type:varchar(4096)"`
	Language          string    `gorm:"not null;index;type:varchar(50)"`
	Lines             int       `gorm:"not null"`
	Size              int64     `gorm:"not null"`
	Functions         int       `gorm:"not null"`
	ControlStructures int       `gorm:"not null"`
	Complexity        int       `gorm:"not null"`
	DateTimeCreated   time.Time `gorm:"not null;index"`
	Insights          *string   `gorm:"type:text"`
}

// TableName specifies the table name for GORM
func (CodeReportModel) TableName() string {
	return "code_reports"
}

// ToDomain converts GORM model to domain entity
func (m *CodeReportModel) ToDomain() *analysis.CodeReport {
	return &analysis.CodeReport{
		ID:                m.ID,
		Path:              m.Path,
		Language:          m.Language,
		Lines:             m.Lines,
		Size:              m.Size,
		Functions:         m.Functions,
		ControlStructures: m.ControlStructures,
		Complexity:        m.Complexity,
		DateTimeCreated:   m.DateTimeCreated,
		Insights:          m.Insights,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CodeReportModel) FromDomain(r *analysis.CodeReport) {
	m.ID = r.ID
	m.Path = r.Path
	m.Language = r.Language
	m.Lines = r.Lines
	m.Size = r.Size
	m.Functions = r.Functions
	m.ControlStructures = r.ControlStructures
	m.Complexity = r.Complexity
	m.DateTimeCreated = r.DateTimeCreated
	m.Insights = r.Insights
}
