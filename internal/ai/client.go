// Package ai wraps the LLM provider SDKs behind a single completion call.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/openai/openai-go"
)

// Provider names a supported LLM API.
type Provider string

const (
	// ProviderGemini calls Google Gemini through its OpenAI-compatible endpoint.
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI calls the OpenAI chat completions API.
	ProviderOpenAI Provider = "openai"
	// ProviderAnthropic calls the Anthropic messages API.
	ProviderAnthropic Provider = "anthropic"
)

// GeminiBaseURL is Google's OpenAI-compatible Gemini endpoint.
const GeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

const defaultMaxTokens = 4096

var (
	// ErrMissingAPIKey is returned when no API key is configured for the provider.
	ErrMissingAPIKey = errors.New("API key required")
	// ErrUnauthorized is returned when the provider rejects the API key.
	ErrUnauthorized = errors.New("provider rejected API key")
	// ErrEmptyResponse is returned when the provider returns no text.
	ErrEmptyResponse = errors.New("empty response from provider")
	// ErrUnknownProvider is returned by New for unsupported provider names.
	ErrUnknownProvider = errors.New("unknown AI provider")
)

// Request is a single-turn completion request.
type Request struct {
	System      string
	Prompt      string
	Temperature float64
	TopP        float64
	// TopK is only honored by providers that support it.
	TopK int64
}

// Client completes a prompt.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Config selects and configures a provider.
type Config struct {
	Provider  Provider
	APIKey    string
	Model     string
	BaseURL   string
	MaxTokens int64
}

// DefaultModel returns the model used when none is configured.
func DefaultModel(p Provider) string {
	switch p {
	case ProviderGemini:
		return "gemini-2.5-flash"
	case ProviderOpenAI:
		return string(openai.ChatModelGPT4oMini)
	case ProviderAnthropic:
		return string(anthropic.ModelClaudeSonnet4_5_20250929)
	default:
		return ""
	}
}

// New creates a client for cfg.Provider. A missing API key is reported on
// the first Complete call so a server can still start and answer health checks.
func New(cfg Config) (Client, error) {
	model := cfg.Model
	if model == "" {
		model = DefaultModel(cfg.Provider)
	}

	switch cfg.Provider {
	case ProviderGemini:
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = GeminiBaseURL
		}
		return NewOpenAIClient(ProviderGemini, cfg.APIKey, model, baseURL), nil
	case ProviderOpenAI:
		return NewOpenAIClient(ProviderOpenAI, cfg.APIKey, model, cfg.BaseURL), nil
	case ProviderAnthropic:
		return NewAnthropicClient(cfg.APIKey, model, cfg.BaseURL, cfg.MaxTokens), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}

// classify wraps provider errors that mean the API key was rejected.
func classify(provider Provider, err error) error {
	var (
		openaiErr    *openai.Error
		anthropicErr *anthropic.Error
		status       int
	)
	switch {
	case errors.As(err, &openaiErr):
		status = openaiErr.StatusCode
	case errors.As(err, &anthropicErr):
		status = anthropicErr.StatusCode
	}

	msg := err.Error()
	if status == 401 || status == 403 ||
		strings.Contains(msg, "API key not valid") || strings.Contains(msg, "API_KEY_INVALID") {
		return fmt.Errorf("%w: %s: %w", ErrUnauthorized, provider, err)
	}

	return fmt.Errorf("%s completion failed: %w", provider, err)
}
