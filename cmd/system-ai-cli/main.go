// Package main is the entry point for the system-ai-cli application.
// It initializes the root command, registers the scan, analysis, document,
// watcher and model sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"

	commands "system_ai_service/cmd/system-ai-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "system-ai-cli",
		Short: "Local code intelligence CLI tool",
		Long: `system-ai-cli indexes directories, analyzes source files and answers
questions over scanned documents using a local Ollama server.

The index is kept in a SQLite database, SAM_DATABASE_DSN overrides its
location. SAM_OLLAMA_BASE_URL points at a non-default Ollama instance.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitScanCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize scan commands: %w", err)
	}

	if err := commands.InitAnalyzeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize analyze commands: %w", err)
	}

	if err := commands.InitDocsCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize docs commands: %w", err)
	}

	if err := commands.InitWatchCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize watch commands: %w", err)
	}

	if err := commands.InitModelsCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize models commands: %w", err)
	}

	return nil
}
