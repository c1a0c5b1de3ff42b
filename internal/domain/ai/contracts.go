// Package ai defines the contract for the language model backend used by
// the analysis and document services.
package ai

import "context"

// Connector is an interface for interacting with a local LLM server.
type Connector interface {
	// Version returns the server version string.
	Version(ctx context.Context) (string, error)

	// ListModels returns the names of the models installed on the server.
	ListModels(ctx context.Context) ([]string, error)

	// ResolveModel returns preferred when the server has it, otherwise the
	// closest usable installed model.
	ResolveModel(ctx context.Context, preferred string) (string, error)

	// Generate sends a prompt to the named model and returns the full
	// completion text.
	Generate(ctx context.Context, model, prompt string) (string, error)
}
