package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/docsift/internal/core/domain"
	"github.com/custodia-labs/docsift/internal/core/ports/driven"
	"github.com/custodia-labs/docsift/internal/core/ports/driving"
	"github.com/custodia-labs/docsift/internal/logger"
	"github.com/custodia-labs/docsift/internal/postprocessors"
	"github.com/custodia-labs/docsift/internal/recovery"
)

// Ensure ExtractionService implements the interface.
var _ driving.ExtractionService = (*ExtractionService)(nil)

// ExtractionService runs the whole flow: intake, recovery, cleanup and the
// two truncation budgets.
type ExtractionService struct {
	intake   *Intake
	registry driven.NormaliserRegistry
	pipeline driven.PostProcessorPipeline
	excerpt  driven.PostProcessor
}

// NewExtractionService creates an extraction service. A nil intake skips
// validation; excerpt bounds the second, shorter copy of the text.
func NewExtractionService(
	intake *Intake,
	registry driven.NormaliserRegistry,
	pipeline driven.PostProcessorPipeline,
	excerpt driven.PostProcessor,
) *ExtractionService {
	return &ExtractionService{
		intake:   intake,
		registry: registry,
		pipeline: pipeline,
		excerpt:  excerpt,
	}
}

// NewExtractionServiceFromSettings wires the default normalisers and
// pipeline for the given settings.
func NewExtractionServiceFromSettings(settings domain.ExtractionSettings) (*ExtractionService, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	pipeline, err := postprocessors.NewDefaultPipeline(settings)
	if err != nil {
		return nil, fmt.Errorf("build pipeline: %w", err)
	}

	return NewExtractionService(
		NewIntake(settings.Intake),
		NewDefaultNormaliserRegistry(settings.Recovery),
		pipeline,
		postprocessors.NewExcerpt(settings),
	), nil
}

// Extract validates the document, recovers its text and cleans it up.
// When a binary document yields no text the failure notice stands in for
// it and Placeholder is set; every other failure is returned.
func (s *ExtractionService) Extract(ctx context.Context, raw *domain.RawDocument) (*domain.Extraction, error) {
	if s.intake != nil {
		if err := s.intake.Validate(raw); err != nil {
			return nil, fmt.Errorf("intake: %w", err)
		}
	} else if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	ext := &domain.Extraction{
		ID:       uuid.New().String(),
		URI:      raw.URI,
		MIMEType: raw.MIMEType,
	}

	result, err := s.registry.Normalise(ctx, raw)
	switch {
	case errors.Is(err, domain.ErrNoTextExtractable):
		var exhausted *recovery.ExhaustedError
		if errors.As(err, &exhausted) {
			ext.Attempts = exhausted.Attempts
		}
		ext.Placeholder = true
		ext.RawText = domain.ExtractionFailedNotice
		logger.Warn("extraction %s: %s: no recoverable text, using notice", ext.ID, raw.URI)
	case err != nil:
		return nil, fmt.Errorf("normalise %s: %w", raw.URI, err)
	default:
		ext.Strategy = result.Strategy
		ext.Attempts = result.Attempts
		ext.RawText = result.Text
	}

	logger.DebugFields("recovered", map[string]any{
		"id":       ext.ID,
		"uri":      raw.URI,
		"strategy": ext.Strategy.String(),
		"attempts": len(ext.Attempts),
		"bytes":    len(ext.RawText),
	})

	ext.Text, err = s.pipeline.Process(ctx, ext.RawText)
	if err != nil {
		return nil, fmt.Errorf("post-process %s: %w", raw.URI, err)
	}

	ext.Excerpt, err = s.excerpt.Process(ctx, ext.Text)
	if err != nil {
		return nil, fmt.Errorf("excerpt %s: %w", raw.URI, err)
	}

	ext.CreatedAt = time.Now()

	logger.DebugFields("extracted", map[string]any{
		"id":          ext.ID,
		"text":        len(ext.Text),
		"excerpt":     len(ext.Excerpt),
		"placeholder": ext.Placeholder,
	})

	return ext, nil
}

// ExtractText returns the raw recovered text, before sanitising, for content
// of the given MIME type. Intake limits are not applied.
func (s *ExtractionService) ExtractText(ctx context.Context, content []byte, mimeType string) (string, error) {
	result, err := s.registry.Normalise(ctx, &domain.RawDocument{
		MIMEType: mimeType,
		Content:  content,
	})
	if err != nil {
		return "", err
	}
	return result.Text, nil
}
