package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/docsift/internal/core/domain"
	"github.com/custodia-labs/docsift/internal/core/ports/driven"
	"github.com/custodia-labs/docsift/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyByteRunHead          = "recovery.byte_run_head"
	KeyByteRunTail          = "recovery.byte_run_tail"
	KeyEncodingWindow       = "recovery.encoding_window"
	KeyStructureWindow      = "recovery.structure_window"
	KeyReadabilityThreshold = "filter.readability_threshold"
	KeyTextBudget           = "budget.text"
	KeyExcerptBudget        = "budget.excerpt"
	KeyMaxBytes             = "intake.max_bytes"
	KeyAllowedTypes         = "intake.allowed_types"
)

var settingKeys = []string{
	KeyByteRunHead,
	KeyByteRunTail,
	KeyEncodingWindow,
	KeyStructureWindow,
	KeyReadabilityThreshold,
	KeyTextBudget,
	KeyExcerptBudget,
	KeyMaxBytes,
	KeyAllowedTypes,
}

// SettingsService manages extraction settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current settings. Missing or unusable stored values fall
// back to defaults.
func (s *SettingsService) Get() (*domain.ExtractionSettings, error) {
	defaults := domain.DefaultExtractionSettings()

	settings := &domain.ExtractionSettings{
		Recovery: domain.RecoverySettings{
			ByteRunHead:     s.getNonNegative(KeyByteRunHead, defaults.Recovery.ByteRunHead),
			ByteRunTail:     s.getNonNegative(KeyByteRunTail, defaults.Recovery.ByteRunTail),
			EncodingWindow:  s.getPositive(KeyEncodingWindow, defaults.Recovery.EncodingWindow),
			StructureWindow: s.getNonNegative(KeyStructureWindow, defaults.Recovery.StructureWindow),
		},
		ReadabilityThreshold: s.getThreshold(defaults.ReadabilityThreshold),
		Budget: domain.BudgetSettings{
			Text:    s.getPositive(KeyTextBudget, defaults.Budget.Text),
			Excerpt: s.getPositive(KeyExcerptBudget, defaults.Budget.Excerpt),
		},
		Intake: domain.IntakeSettings{
			MaxBytes:     s.getInt(KeyMaxBytes, defaults.Intake.MaxBytes),
			AllowedTypes: s.getStringSlice(KeyAllowedTypes, defaults.Intake.AllowedTypes),
		},
	}

	return settings, nil
}

// Save validates and persists settings.
func (s *SettingsService) Save(settings *domain.ExtractionSettings) error {
	if settings == nil {
		return domain.ErrInvalidInput
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	for _, key := range settingKeys {
		if err := s.configStore.Set(key, Value(settings, key)); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
	}
	return nil
}

// Set parses value for key, validates the resulting settings and persists
// that one key.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if err := apply(settings, key, value); err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(key, Value(settings, key)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns the recognised config keys in display order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	copy(keys, settingKeys)
	return keys
}

// Value returns the settings field stored under key, or nil for an unknown key.
func Value(settings *domain.ExtractionSettings, key string) any {
	switch key {
	case KeyByteRunHead:
		return settings.Recovery.ByteRunHead
	case KeyByteRunTail:
		return settings.Recovery.ByteRunTail
	case KeyEncodingWindow:
		return settings.Recovery.EncodingWindow
	case KeyStructureWindow:
		return settings.Recovery.StructureWindow
	case KeyReadabilityThreshold:
		return settings.ReadabilityThreshold
	case KeyTextBudget:
		return settings.Budget.Text
	case KeyExcerptBudget:
		return settings.Budget.Excerpt
	case KeyMaxBytes:
		return settings.Intake.MaxBytes
	case KeyAllowedTypes:
		return settings.Intake.AllowedTypes
	default:
		return nil
	}
}

// apply parses value into the settings field for key.
func apply(settings *domain.ExtractionSettings, key, value string) error {
	value = strings.TrimSpace(value)

	switch key {
	case KeyReadabilityThreshold:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrInvalidSettings, key, err)
		}
		settings.ReadabilityThreshold = f
		return nil
	case KeyAllowedTypes:
		settings.Intake.AllowedTypes = splitList(value)
		return nil
	}

	target := intField(settings, key)
	if target == nil {
		return fmt.Errorf("%w: unknown key %q", domain.ErrInvalidSettings, key)
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidSettings, key, err)
	}
	*target = n
	return nil
}

func intField(settings *domain.ExtractionSettings, key string) *int {
	switch key {
	case KeyByteRunHead:
		return &settings.Recovery.ByteRunHead
	case KeyByteRunTail:
		return &settings.Recovery.ByteRunTail
	case KeyEncodingWindow:
		return &settings.Recovery.EncodingWindow
	case KeyStructureWindow:
		return &settings.Recovery.StructureWindow
	case KeyTextBudget:
		return &settings.Budget.Text
	case KeyExcerptBudget:
		return &settings.Budget.Excerpt
	case KeyMaxBytes:
		return &settings.Intake.MaxBytes
	default:
		return nil
	}
}

// splitList parses a comma-separated list, dropping blanks.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Helper methods for getting values with defaults

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getNonNegative(key string, defaultVal int) int {
	if v := s.getInt(key, defaultVal); v >= 0 {
		return v
	}
	return defaultVal
}

func (s *SettingsService) getPositive(key string, defaultVal int) int {
	if v := s.getInt(key, defaultVal); v > 0 {
		return v
	}
	return defaultVal
}

func (s *SettingsService) getThreshold(defaultVal float64) float64 {
	if _, ok := s.configStore.Get(KeyReadabilityThreshold); !ok {
		return defaultVal
	}
	if v := s.configStore.GetFloat(KeyReadabilityThreshold); v > 0 && v <= 1 {
		return v
	}
	return defaultVal
}

func (s *SettingsService) getStringSlice(key string, defaultVal []string) []string {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetStringSlice(key)
}
