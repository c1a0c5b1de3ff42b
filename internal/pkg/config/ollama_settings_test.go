//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOllamaSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *OllamaSettings
		expectedError bool
	}{
		{
			name: "valid settings",
			settings: &OllamaSettings{
				BaseURL:        "http://localhost:11434",
				TimeoutSeconds: 300,
			},
			expectedError: false,
		},
		{
			name:          "missing base URL",
			settings:      &OllamaSettings{},
			expectedError: true,
		},
		{
			name: "malformed base URL",
			settings: &OllamaSettings{
				BaseURL: "not-a-url",
			},
			expectedError: true,
		},
		{
			name: "timeout above maximum",
			settings: &OllamaSettings{
				BaseURL:        "http://localhost:11434",
				TimeoutSeconds: 3601,
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestOllamaSettingsDefaults(t *testing.T) {
	settings := &OllamaSettings{BaseURL: "http://localhost:11434"}
	require.NoError(t, settings.Validate())

	assert.Equal(t, 300, settings.TimeoutSeconds)
	assert.Equal(t, DefaultCodeModel, settings.CodeModel)
	assert.Equal(t, DefaultTextModel, settings.TextModel)
	assert.Equal(t, DefaultSecurityModel, settings.SecurityModel)
}
