package config

import (
	"fmt"

	"system_ai_service/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// ScanSettings holds the defaults applied to directory scans when a request
// does not override them.
type ScanSettings struct {
	Extensions   []string `mapstructure:"extensions" validate:"omitempty,dive,extensionValidation"`
	ExcludedDirs []string `mapstructure:"excluded_dirs"`
	MaxFiles     int      `mapstructure:"max_files" validate:"omitempty,min=1"`
	MaxFileSize  int64    `mapstructure:"max_file_size" validate:"omitempty,min=1"`
}

// Validate checks that all fields in ScanSettings are valid and fills in defaults.
func (s *ScanSettings) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("extensionValidation", validators.ExtensionValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for ScanSettings: %w", err)
	}

	if s.MaxFiles == 0 {
		s.MaxFiles = 1000
	}
	if s.MaxFileSize == 0 {
		s.MaxFileSize = 10 * 1024 * 1024
	}
	if len(s.ExcludedDirs) == 0 {
		s.ExcludedDirs = []string{".git", "node_modules", "venv", "__pycache__"}
	}

	return nil
}

// WatcherSettings holds the defaults for the directory watcher.
type WatcherSettings struct {
	CooldownSeconds int      `mapstructure:"cooldown_seconds" validate:"omitempty,min=1,max=3600"`
	Extensions      []string `mapstructure:"extensions" validate:"omitempty,dive,extensionValidation"`
}

// Validate checks that all fields in WatcherSettings are valid and fills in defaults.
func (s *WatcherSettings) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("extensionValidation", validators.ExtensionValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for WatcherSettings: %w", err)
	}

	if s.CooldownSeconds == 0 {
		s.CooldownSeconds = 5
	}

	return nil
}
