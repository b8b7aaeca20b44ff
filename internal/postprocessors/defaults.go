package postprocessors

import (
	"fmt"

	"github.com/custodia-labs/docsift/internal/core/domain"
	"github.com/custodia-labs/docsift/internal/core/ports/driven"
	"github.com/custodia-labs/docsift/internal/postprocessors/readability"
	"github.com/custodia-labs/docsift/internal/postprocessors/sanitizer"
	"github.com/custodia-labs/docsift/internal/postprocessors/truncator"
)

// Processor names understood by RegisterDefaults.
const (
	SanitizerName   = "sanitizer"
	ReadabilityName = "readability"
	TruncatorName   = "truncator"
)

// RegisterDefaults registers all built-in processors with the registry.
// Call this during application initialisation to enable standard processors.
func RegisterDefaults(r *Registry) {
	r.Register(SanitizerName, buildSanitizer)
	r.Register(ReadabilityName, buildReadability)
	r.Register(TruncatorName, buildTruncator)
}

// DefaultStages returns sanitise, filter, truncate configured from settings.
func DefaultStages(settings domain.ExtractionSettings) []Stage {
	return []Stage{
		{Name: SanitizerName},
		{Name: ReadabilityName, Config: map[string]any{"threshold": settings.ReadabilityThreshold}},
		{Name: TruncatorName, Config: map[string]any{"max_length": settings.Budget.Text}},
	}
}

// NewDefaultPipeline builds the standard cleanup pipeline for settings.
func NewDefaultPipeline(settings domain.ExtractionSettings) (*Pipeline, error) {
	r := NewRegistry()
	RegisterDefaults(r)
	return r.BuildPipeline(DefaultStages(settings)...)
}

// NewExcerpt builds the truncator used for excerpts.
func NewExcerpt(settings domain.ExtractionSettings) driven.PostProcessor {
	return truncator.New(truncator.WithMaxLength(settings.Budget.Excerpt))
}

func buildSanitizer(_ map[string]any) (driven.PostProcessor, error) {
	return sanitizer.New(), nil
}

// buildReadability creates a readability processor from generic config.
// Supported config keys:
//   - threshold (float): special-character ratio at which lines are dropped (default: 0.5)
func buildReadability(cfg map[string]any) (driven.PostProcessor, error) {
	var opts []readability.Option

	if _, ok := cfg["threshold"]; ok {
		threshold := getFloatFromConfig(cfg, "threshold")
		if threshold <= 0 || threshold > 1 {
			return nil, fmt.Errorf("threshold %v: %w", cfg["threshold"], domain.ErrInvalidSettings)
		}
		opts = append(opts, readability.WithThreshold(threshold))
	}

	return readability.New(opts...), nil
}

// buildTruncator creates a truncator processor from generic config.
// Supported config keys:
//   - max_length (int): budget in characters (default: 10000)
func buildTruncator(cfg map[string]any) (driven.PostProcessor, error) {
	var opts []truncator.Option

	if _, ok := cfg["max_length"]; ok {
		n := getIntFromConfig(cfg, "max_length")
		if n <= 0 {
			return nil, fmt.Errorf("max_length %v: %w", cfg["max_length"], domain.ErrInvalidSettings)
		}
		opts = append(opts, truncator.WithMaxLength(n))
	}

	return truncator.New(opts...), nil
}

// getIntFromConfig safely extracts an int from generic config map.
// Handles int, int64, and float64 types that may come from TOML/JSON parsing.
func getIntFromConfig(cfg map[string]any, key string) int {
	val, ok := cfg[key]
	if !ok {
		return 0
	}

	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

// getFloatFromConfig is the float counterpart of getIntFromConfig.
func getFloatFromConfig(cfg map[string]any, key string) float64 {
	val, ok := cfg[key]
	if !ok {
		return 0
	}

	switch v := val.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}
