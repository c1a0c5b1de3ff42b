package models

import (
	"time"

	"system_ai_service/internal/domain/files"
)

// FileModel is the GORM database model for indexed files (infrastructure concern)
type FileModel struct {
	ID               string    `gorm:"primaryKey;type:uuid"`
	Path             string    `gorm:"not null;uniqueIndex;type:varchar(4096)"`
	Name             string    `gorm:"not null;type:varchar(255)"`
	Extension        string    `gorm:"not null;index;type:varchar(32)"`
	Size             int64     `gorm:"not null"`
	Checksum         string    `gorm:"not null;type:char(32)"`
	DateTimeModified time.Time `gorm:"not null"`
	DateTimeIndexed  time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (FileModel) TableName() string {
	return "files"
}

// ToDomain converts GORM model to domain entity
func (m *FileModel) ToDomain() *files.FileMeta {
	return &files.FileMeta{
		ID:               m.ID,
		Path:             m.Path,
		Name:             m.Name,
		Extension:        m.Extension,
		Size:             m.Size,
		Checksum:         m.Checksum,
		DateTimeModified: m.DateTimeModified,
		DateTimeIndexed:  m.DateTimeIndexed,
	}
}

// FromDomain converts domain entity to GORM model
func (m *FileModel) FromDomain(f *files.FileMeta) {
	m.ID = f.ID
	m.Path = f.Path
	m.Name = f.Name
	m.Extension = f.Extension
	m.Size = f.Size
	m.Checksum = f.Checksum
	m.DateTimeModified = f.DateTimeModified
	m.DateTimeIndexed = f.DateTimeIndexed
}
