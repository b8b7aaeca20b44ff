package driving

import "github.com/custodia-labs/docsift/internal/core/domain"

// SettingsService manages extraction settings.
type SettingsService interface {
	// Get retrieves current settings, filling unset keys with defaults.
	Get() (*domain.ExtractionSettings, error)

	// Save validates and persists settings.
	Save(settings *domain.ExtractionSettings) error

	// Set updates a single setting by its config key.
	Set(key, value string) error

	// Keys returns the recognised config keys.
	Keys() []string
}
