package mcp

import (
	"context"

	"github.com/custodia-labs/docsift/internal/core/domain"
)

// mockExtractionService is a mock implementation of driving.ExtractionService.
type mockExtractionService struct {
	extraction *domain.Extraction
	err        error
	lastRaw    *domain.RawDocument
}

func (m *mockExtractionService) Extract(_ context.Context, raw *domain.RawDocument) (*domain.Extraction, error) {
	m.lastRaw = raw
	return m.extraction, m.err
}

func (m *mockExtractionService) ExtractText(_ context.Context, _ []byte, _ string) (string, error) {
	if m.extraction == nil {
		return "", m.err
	}
	return m.extraction.RawText, m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.ExtractionSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.ExtractionSettings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) Save(_ *domain.ExtractionSettings) error {
	return m.err
}

func (m *mockSettingsService) Set(_, _ string) error {
	return m.err
}

func (m *mockSettingsService) Keys() []string {
	return nil
}
