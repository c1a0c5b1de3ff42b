// Package config defines the settings structs for the system-ai applications
// and loads them from YAML files with environment variable overrides.
package config
