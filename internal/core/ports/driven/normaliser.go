package driven

import (
	"context"

	"github.com/custodia-labs/docsift/internal/core/domain"
)

// Normaliser recovers raw text from a document.
// Each normaliser handles specific MIME types (e.g., PDF, plain text).
type Normaliser interface {
	// SupportedMIMETypes returns the MIME types this normaliser handles.
	// "*/*" marks a catch-all normaliser.
	SupportedMIMETypes() []string

	// Priority returns the selection priority (higher = preferred).
	// MIME-specific normalisers should return 50-89.
	// Fallback normalisers should return 1-9.
	Priority() int

	// Normalise recovers raw, unsanitised text from the document.
	// Binary normalisers return an error wrapping domain.ErrNoTextExtractable
	// when no strategy produced text.
	Normalise(ctx context.Context, raw *domain.RawDocument) (*NormaliseResult, error)
}

// NormaliseResult contains the output of normalisation.
// Sanitisation and truncation are handled by the PostProcessor pipeline.
type NormaliseResult struct {
	// Text is the recovered text.
	Text string

	// Strategy is the strategy that produced Text.
	Strategy domain.Strategy

	// Attempts lists the strategies tried, in order.
	Attempts []domain.RecoveryAttempt
}
