//go:build unit
// +build unit

package logger

import (
	"path/filepath"
	"testing"

	"system_ai_service/internal/pkg/config"

	"github.com/stretchr/testify/require"
)

func TestNewLogger_Console(t *testing.T) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	log, err := newLogger(settings)
	require.NoError(t, err)
	require.NotNil(t, log)
	require.IsType(t, &ConsoleLogger{}, log)
}

func TestNewLogger_File(t *testing.T) {
	settings := &config.LoggerSettings{
		LogLevel:   config.LogLevelDebug,
		LogType:    config.LogTypeFile,
		FilePath:   filepath.Join(t.TempDir(), "system-ai.log"),
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     7,
	}

	log, err := newLogger(settings)
	require.NoError(t, err)
	require.NotNil(t, log)
	require.IsType(t, &FileLogger{}, log)

	log.Info("file logger smoke test")
}

func TestNewLogger_InvalidSettings(t *testing.T) {
	settings := &config.LoggerSettings{
		LogLevel: "shouting",
		LogType:  config.LogTypeConsole,
	}

	_, err := newLogger(settings)
	require.Error(t, err)
}

func TestInitLogger_Singleton(t *testing.T) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	require.NoError(t, InitLogger(settings))

	first, err := GetLogger()
	require.NoError(t, err)

	// A second init must not replace the instance.
	require.NoError(t, InitLogger(settings))
	second, err := GetLogger()
	require.NoError(t, err)
	require.Same(t, first, second)
}
