package documents

import (
	"errors"
	"fmt"
	"time"

	"system_ai_service/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// Document entity holding the extracted text of one scanned file.
type Document struct {
	ID               string    `validate:"required,uuid4"`
	Path             string    `validate:"required,min=1"`
	Name             string    `validate:"required,min=1,max=255"`
	Extension        string    `validate:"required,extensionValidation"`
	Size             int64     `validate:"min=0"`
	Content          string    `validate:"required"`
	DateTimeModified time.Time `validate:"required"`
	DateTimeIndexed  time.Time `validate:"required"`
}

// Validate for validating Document struct
func (d *Document) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("extensionValidation", validators.ExtensionValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(d)
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

// snippetRunes caps how much of a document is quoted into a model prompt.
const snippetRunes = 300

// Snippet returns the leading part of the document content, truncated to a
// prompt-friendly length with an ellipsis.
func (d *Document) Snippet() string {
	runes := []rune(d.Content)
	if len(runes) <= snippetRunes {
		return d.Content
	}
	return string(runes[:snippetRunes]) + "..."
}

// Answer is the result of asking a model a question over the document store.
type Answer struct {
	Question string
	Response string
	Model    string
	Sources  []string
}
