package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Default model names per task, matching the models the service was
// prototyped against. Any model installed on the Ollama server can be
// substituted through configuration or per-request parameters.
const (
	DefaultCodeModel     = "qwen2.5-coder:7b"
	DefaultTextModel     = "llama3"
	DefaultSecurityModel = "mistral"
)

// OllamaSettings holds the connection settings for the local Ollama server
type OllamaSettings struct {
	BaseURL        string `mapstructure:"base_url" validate:"required,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"omitempty,min=1,max=3600"`
	CodeModel      string `mapstructure:"code_model"`
	TextModel      string `mapstructure:"text_model"`
	SecurityModel  string `mapstructure:"security_model"`
}

// Validate checks that all fields in OllamaSettings are valid and fills in
// default models for any task left unconfigured.
func (s *OllamaSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for OllamaSettings: %w", err)
	}

	if s.TimeoutSeconds == 0 {
		s.TimeoutSeconds = 300
	}
	if s.CodeModel == "" {
		s.CodeModel = DefaultCodeModel
	}
	if s.TextModel == "" {
		s.TextModel = DefaultTextModel
	}
	if s.SecurityModel == "" {
		s.SecurityModel = DefaultSecurityModel
	}

	return nil
}
