package models

import (
	"time"

	"system_ai_service/internal/domain/documents"
)

// DocumentModel is the GORM database model for scanned text documents
type DocumentModel struct {
	ID               string    `gorm:"primaryKey;type:uuid"`
	Path             string    `gorm:"not null;uniqueIndex;type:varchar(4096)"`
	Name             string    `gorm:"not null;type:varchar(255)"`
	Extension        string    `gorm:"not null;index;type:varchar(32)"`
	Size             int64     `gorm:"not null"`
	Content          string    `gorm:"not null;type:text"`
	DateTimeModified time.Time `gorm:"not null"`
	DateTimeIndexed  time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (DocumentModel) TableName() string {
	return "documents"
}

// ToDomain converts GORM model to domain entity
func (m *DocumentModel) ToDomain() *documents.Document {
	return &documents.Document{
		ID:               m.ID,
		Path:             m.Path,
		Name:             m.Name,
		Extension:        m.Extension,
		Size:             m.Size,
		Content:          m.Content,
		DateTimeModified: m.DateTimeModified,
		DateTimeIndexed:  m.DateTimeIndexed,
	}
}

// FromDomain converts domain entity to GORM model
func (m *DocumentModel) FromDomain(d *documents.Document) {
	m.ID = d.ID
	m.Path = d.Path
	m.Name = d.Name
	m.Extension = d.Extension
	m.Size = d.Size
	m.Content = d.Content
	m.DateTimeModified = d.DateTimeModified
	m.DateTimeIndexed = d.DateTimeIndexed
}
