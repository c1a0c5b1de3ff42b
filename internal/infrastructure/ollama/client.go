// Package ollama implements the ai.Connector contract against a locally
// running Ollama server.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"system_ai_service/internal/domain/ai"
	"system_ai_service/internal/pkg/config"
	"system_ai_service/internal/pkg/logger"
)

type client struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
}

// NewClient creates a new Ollama connector from settings.
func NewClient(settings *config.OllamaSettings, logger logger.Logger) (ai.Connector, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid ollama settings: %w", err)
	}

	return &client{
		baseURL: strings.TrimRight(settings.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: time.Duration(settings.TimeoutSeconds) * time.Second,
		},
		logger: logger,
	}, nil
}

type versionResponse struct {
	Version string `json:"version"`
}

type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
	Error    string `json:"error"`
}

// Version returns the server version string.
func (c *client) Version(ctx context.Context) (string, error) {
	var res versionResponse
	if err := c.getJSON(ctx, "/api/version", &res); err != nil {
		return "", fmt.Errorf("failed to get ollama version: %w", err)
	}
	return res.Version, nil
}

// ListModels returns the names of the models installed on the server.
func (c *client) ListModels(ctx context.Context) ([]string, error) {
	var res tagsResponse
	if err := c.getJSON(ctx, "/api/tags", &res); err != nil {
		return nil, fmt.Errorf("failed to list ollama models: %w", err)
	}

	names := make([]string, 0, len(res.Models))
	for _, m := range res.Models {
		names = append(names, m.Name)
	}
	return names, nil
}

// ResolveModel returns preferred when installed. Otherwise it falls back to
// an installed model containing "coder" when the preferred one looks like a
// code model, else to the first installed model.
func (c *client) ResolveModel(ctx context.Context, preferred string) (string, error) {
	models, err := c.ListModels(ctx)
	if err != nil {
		return "", err
	}
	if len(models) == 0 {
		return "", fmt.Errorf("no models installed on ollama server")
	}

	for _, m := range models {
		if m == preferred {
			return preferred, nil
		}
	}

	if strings.Contains(strings.ToLower(preferred), "coder") {
		for _, m := range models {
			if strings.Contains(strings.ToLower(m), "coder") {
				c.logger.Warn("model ", preferred, " not installed, falling back to ", m)
				return m, nil
			}
		}
	}

	c.logger.Warn("model ", preferred, " not installed, falling back to ", models[0])
	return models[0], nil
}

// Generate sends a prompt to the named model and returns the completion.
func (c *client) Generate(ctx context.Context, model, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{Model: model, Prompt: prompt, Stream: false})
	if err != nil {
		return "", fmt.Errorf("failed to marshal generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to query ollama: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read ollama response: %w", err)
	}

	var res generateResponse
	if err := json.Unmarshal(data, &res); err != nil {
		return "", fmt.Errorf("failed to decode ollama response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if res.Error != "" {
			return "", fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, res.Error)
		}
		return "", fmt.Errorf("ollama returned status %d", resp.StatusCode)
	}

	return res.Response, nil
}

func (c *client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}

	return nil
}
