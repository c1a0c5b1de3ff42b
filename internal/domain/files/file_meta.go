package files

import (
	"errors"
	"fmt"
	"time"

	"system_ai_service/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// FileMeta entity describing one indexed file.
type FileMeta struct {
	ID               string    `validate:"required,uuid4"`
	Path             string    `validate:"required,min=1"`
	Name             string    `validate:"required,min=1,max=255"`
	Extension        string    `validate:"required,extensionValidation"`
	Size             int64     `validate:"min=0"`
	Checksum         string    `validate:"required,len=32,hexadecimal"`
	DateTimeModified time.Time `validate:"required"`
	DateTimeIndexed  time.Time `validate:"required"`
}

// Validate for validating FileMeta struct
func (f *FileMeta) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("extensionValidation", validators.ExtensionValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(f)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// FileMetaQuery filters and paginates file metadata listings.
type FileMetaQuery struct {
	Name            string    `validate:"omitempty,max=255"`
	Extension       string    `validate:"omitempty,extensionValidation"`
	PathPrefix      string    `validate:"omitempty"`
	DateTimeIndexed time.Time `validate:"omitempty"`

	SortBy    string `validate:"omitempty,oneof=name size extension date_time_indexed date_time_modified"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
	Limit     int    `validate:"omitempty,min=1,max=1000"`
	Offset    int    `validate:"omitempty,min=0"`
}

// NewFileMetaQuery creates a query with default pagination and sorting.
func NewFileMetaQuery() *FileMetaQuery {
	return &FileMetaQuery{
		SortBy:    "date_time_indexed",
		SortOrder: "desc",
		Limit:     100,
		Offset:    0,
	}
}

// Validate for validating FileMetaQuery struct
func (q *FileMetaQuery) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("extensionValidation", validators.ExtensionValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("query validation failed: %w", err)
	}

	return nil
}
