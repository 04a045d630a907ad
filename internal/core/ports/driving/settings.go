package driving

import (
	"github.com/mojuniorlima-droid/sos-licitacoes/internal/core/domain"
)

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves the effective settings: stored values over
	// defaults, with environment fallbacks for credentials.
	Get() (*domain.Settings, error)

	// Save persists the given settings.
	Save(settings *domain.Settings) error

	// SetLLMProvider configures the remote reasoning provider. An empty
	// model selects the provider default.
	SetLLMProvider(provider domain.AIProvider, model, apiKey string) error

	// Validate checks that the stored settings are internally
	// consistent.
	Validate() error

	// ValidateLLMConfig pings the configured provider.
	ValidateLLMConfig() error
}
