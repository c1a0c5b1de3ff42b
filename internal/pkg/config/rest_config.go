package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// RestConfig aggregates every setting the REST application needs.
type RestConfig struct {
	Port     string           `mapstructure:"port" validate:"required"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Database DatabaseSettings `mapstructure:"database"`
	Ollama   OllamaSettings   `mapstructure:"ollama"`
	Scan     ScanSettings     `mapstructure:"scan"`
	Watcher  WatcherSettings  `mapstructure:"watcher"`
}

// Validate checks every settings section.
func (c *RestConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Ollama.Validate(); err != nil {
		return err
	}
	if err := c.Scan.Validate(); err != nil {
		return err
	}
	if err := c.Watcher.Validate(); err != nil {
		return err
	}
	return nil
}

// InitializeRestConfig reads the REST application configuration from a YAML
// file. Any key can be overridden through SAM_* environment variables, e.g.
// SAM_DATABASE_DSN or SAM_OLLAMA_BASE_URL.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetEnvPrefix("SAM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
