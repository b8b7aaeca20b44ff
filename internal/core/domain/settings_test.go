package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultExtractionSettings(t *testing.T) {
	s := DefaultExtractionSettings()

	assert.Equal(t, 50_000, s.Recovery.ByteRunHead)
	assert.Equal(t, 20_000, s.Recovery.ByteRunTail)
	assert.Equal(t, 100_000, s.Recovery.StructureWindow)
	assert.Equal(t, 0.5, s.ReadabilityThreshold)
	assert.Equal(t, 10_000, s.Budget.Text)
	assert.Equal(t, 4_000, s.Budget.Excerpt)
	assert.Equal(t, 5*1024*1024, s.Intake.MaxBytes)
	assert.Contains(t, s.Intake.AllowedTypes, MIMETypePDF)
	assert.Contains(t, s.Intake.AllowedTypes, MIMETypePlainText)
	require.NoError(t, s.Validate())
}

func TestExtractionSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ExtractionSettings)
	}{
		{"negative head", func(s *ExtractionSettings) { s.Recovery.ByteRunHead = -1 }},
		{"negative tail", func(s *ExtractionSettings) { s.Recovery.ByteRunTail = -1 }},
		{"negative structure window", func(s *ExtractionSettings) { s.Recovery.StructureWindow = -5 }},
		{"zero encoding window", func(s *ExtractionSettings) { s.Recovery.EncodingWindow = 0 }},
		{"zero threshold", func(s *ExtractionSettings) { s.ReadabilityThreshold = 0 }},
		{"threshold above one", func(s *ExtractionSettings) { s.ReadabilityThreshold = 1.5 }},
		{"zero text budget", func(s *ExtractionSettings) { s.Budget.Text = 0 }},
		{"negative excerpt budget", func(s *ExtractionSettings) { s.Budget.Excerpt = -10 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultExtractionSettings()
			tt.mutate(&s)

			err := s.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidSettings))
		})
	}
}

func TestExtractionSettings_Validate_EncodingWindowBounded(t *testing.T) {
	for _, window := range []int{0, -1} {
		s := DefaultExtractionSettings()
		s.Recovery.EncodingWindow = window
		assert.ErrorIs(t, s.Validate(), ErrInvalidSettings)
	}
}
