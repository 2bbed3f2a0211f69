// Package llm is a thin client for OpenAI-compatible chat endpoints,
// used by the optional enrichment feature. The rest of the app works
// without it.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrNotConfigured is returned when no API key is present.
var ErrNotConfigured = errors.New("no LLM API key configured")

// Provider generates structured JSON from a prompt.
type Provider interface {
	// Generate sends a prompt and returns JSON conforming to the
	// request's schema, validated before return.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	System      string
	Prompt      string
	Schema      *Schema
	MaxTokens   int
	Temperature float64
}

// Schema defines the JSON structure expected from the model.
type Schema struct {
	Name       string
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	Content      json.RawMessage
	Model        string
	InputTokens  int
	OutputTokens int
}

// Config for an OpenAI-compatible endpoint. BaseURL allows routing to
// OpenRouter or a local server.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// ConfigFromEnv reads the JR_OPENAI_* environment variables.
// Returns ErrNotConfigured when the key is missing.
func ConfigFromEnv() (Config, error) {
	key := os.Getenv("JR_OPENAI_API_KEY")
	if key == "" {
		return Config{}, ErrNotConfigured
	}
	cfg := Config{
		APIKey:  key,
		BaseURL: os.Getenv("JR_OPENAI_BASE_URL"),
		Model:   os.Getenv("JR_OPENAI_MODEL"),
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	return cfg, nil
}

// ErrInvalidResponse indicates the model returned content that does
// not conform to the requested schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }
