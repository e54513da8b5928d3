// Package keyring provides access to the system keychain for storing API keys.
package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const serviceName = "cotola"

// ErrUnknownService is returned for provider names with no keychain entry.
var ErrUnknownService = errors.New("unknown service")

// APIKey represents a named API key stored in the keychain.
type APIKey string

const (
	// Gemini is the keychain entry for the Google Gemini API key.
	Gemini APIKey = "gemini-api-key"
	// OpenAI is the keychain entry for the OpenAI API key.
	OpenAI APIKey = "openai-api-key"
	// Anthropic is the keychain entry for the Anthropic API key.
	Anthropic APIKey = "anthropic-api-key"
)

// AllAPIKeys returns all known API key types for iteration.
func AllAPIKeys() []APIKey {
	return []APIKey{Gemini, OpenAI, Anthropic}
}

// DisplayName returns the provider name for the API key.
func (k APIKey) DisplayName() string {
	switch k {
	case Gemini:
		return "gemini"
	case OpenAI:
		return "openai"
	case Anthropic:
		return "anthropic"
	default:
		return string(k)
	}
}

// Get retrieves an API key value from the system keychain.
func Get(apiKey APIKey) (string, error) {
	value, err := keyring.Get(serviceName, string(apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to get %s from keychain: %w", apiKey.DisplayName(), err)
	}

	return value, nil
}

// Set stores an API key value in the system keychain.
func Set(apiKey APIKey, value string) error {
	if err := keyring.Set(serviceName, string(apiKey), value); err != nil {
		return fmt.Errorf("failed to set %s in keychain: %w", apiKey.DisplayName(), err)
	}

	return nil
}

// IsSet checks if an API key exists in the keychain.
func IsSet(apiKey APIKey) bool {
	_, err := keyring.Get(serviceName, string(apiKey))

	return err == nil
}

// Resolve returns value when it is non-empty, otherwise the keychain entry
// for the named provider. A missing entry yields an empty key.
func Resolve(value, provider string) string {
	if value != "" {
		return value
	}

	apiKey, err := APIKeyFromServiceName(provider)
	if err != nil {
		return ""
	}

	stored, err := Get(apiKey)
	if err != nil {
		return ""
	}

	return stored
}

// APIKeyFromServiceName maps a provider name (e.g., "gemini") to an APIKey.
func APIKeyFromServiceName(name string) (APIKey, error) {
	switch name {
	case "gemini":
		return Gemini, nil
	case "openai":
		return OpenAI, nil
	case "anthropic":
		return Anthropic, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownService, name)
	}
}
