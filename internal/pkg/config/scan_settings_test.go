//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *ScanSettings
		expectedError bool
	}{
		{
			name:          "empty settings are valid",
			settings:      &ScanSettings{},
			expectedError: false,
		},
		{
			name: "valid explicit settings",
			settings: &ScanSettings{
				Extensions:   []string{".go", ".py"},
				ExcludedDirs: []string{".git", "vendor"},
				MaxFiles:     500,
				MaxFileSize:  1024,
			},
			expectedError: false,
		},
		{
			name: "extension without leading dot",
			settings: &ScanSettings{
				Extensions: []string{"go"},
			},
			expectedError: true,
		},
		{
			name: "negative max files",
			settings: &ScanSettings{
				MaxFiles: -1,
			},
			expectedError: true,
		},
		{
			name: "negative max file size",
			settings: &ScanSettings{
				MaxFileSize: -1,
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

func TestScanSettingsDefaults(t *testing.T) {
	settings := &ScanSettings{}
	require.NoError(t, settings.Validate())

	assert.Equal(t, 1000, settings.MaxFiles)
	assert.Equal(t, int64(10*1024*1024), settings.MaxFileSize)
	assert.Equal(t, []string{".git", "node_modules", "venv", "__pycache__"}, settings.ExcludedDirs)
}

func TestWatcherSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *WatcherSettings
		expectedError bool
	}{
		{
			name:          "empty settings are valid",
			settings:      &WatcherSettings{},
			expectedError: false,
		},
		{
			name: "valid cooldown",
			settings: &WatcherSettings{
				CooldownSeconds: 30,
			},
			expectedError: false,
		},
		{
			name: "cooldown above maximum",
			settings: &WatcherSettings{
				CooldownSeconds: 3601,
			},
			expectedError: true,
		},
		{
			name: "extension without leading dot",
			settings: &WatcherSettings{
				Extensions: []string{"py"},
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

func TestWatcherSettingsDefaults(t *testing.T) {
	settings := &WatcherSettings{}
	require.NoError(t, settings.Validate())

	assert.Equal(t, 5, settings.CooldownSeconds)
}
