package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/alkime/cotola/internal/ai"
)

const (
	// EnvProduction represents the production environment.
	EnvProduction = "production"
)

// Config holds all application configuration.
type Config struct {
	// Server settings
	Env    string `envconfig:"ENV" default:"development"`
	Port   string `envconfig:"PORT" default:"8080"`
	WebDir string `envconfig:"WEB_DIR" default:"./web"`

	// Security settings
	HSTSMaxAge     int      `envconfig:"HSTS_MAX_AGE" default:"31536000"`
	CSPMode        string   `envconfig:"CSP_MODE" default:"relaxed"`
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173,http://localhost:8080"`

	// Logging settings
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// AI provider settings
	AIProvider  string `envconfig:"AI_PROVIDER" default:"gemini"`
	AIModel     string `envconfig:"AI_MODEL"`
	AIBaseURL   string `envconfig:"AI_BASE_URL"`
	AIMaxTokens int64  `envconfig:"AI_MAX_TOKENS" default:"4096"`

	// API keys. APIKey is the server-wide key and wins over the per-provider ones.
	ServerAPIKey    string `envconfig:"API_KEY"`
	GeminiAPIKey    string `envconfig:"GEMINI_API_KEY"`
	OpenAIAPIKey    string `envconfig:"OPENAI_API_KEY"`
	AnthropicAPIKey string `envconfig:"ANTHROPIC_API_KEY"`
}

// LoadConfig loads configuration from .env file and environment variables.
func LoadConfig() (*Config, error) {
	// Try to load .env file (optional for development)
	if err := godotenv.Load(); err != nil {
		// Not an error if file doesn't exist (expected in production)
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	// Parse environment variables into config struct
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	return &config, nil
}

// APIKey returns the key for the configured provider. An empty result is not
// an error here; the AI client reports it when a request is made.
func (c *Config) APIKey() string {
	if c.ServerAPIKey != "" {
		return c.ServerAPIKey
	}

	switch ai.Provider(c.AIProvider) {
	case ai.ProviderGemini:
		return c.GeminiAPIKey
	case ai.ProviderOpenAI:
		return c.OpenAIAPIKey
	case ai.ProviderAnthropic:
		return c.AnthropicAPIKey
	default:
		return ""
	}
}

// AIConfig returns the provider client configuration.
func (c *Config) AIConfig() ai.Config {
	return ai.Config{
		Provider:  ai.Provider(c.AIProvider),
		APIKey:    c.APIKey(),
		Model:     c.AIModel,
		BaseURL:   c.AIBaseURL,
		MaxTokens: c.AIMaxTokens,
	}
}

// BuildCSP constructs Content Security Policy based on mode.
func BuildCSP(mode string) string {
	if mode == "strict" {
		// Production CSP
		return "default-src 'self'; " +
			"style-src 'self' 'unsafe-inline'; " +
			"script-src 'self'; " +
			"connect-src 'self'; " +
			"img-src 'self' data:; " +
			"object-src 'none'; " +
			"base-uri 'self'; " +
			"form-action 'self'"
	}

	// Development/relaxed CSP
	return "default-src 'self'; " +
		"style-src 'self' 'unsafe-inline'; " +
		"script-src 'self' 'unsafe-inline'; " +
		"connect-src 'self'; " +
		"img-src 'self' data:"
}
