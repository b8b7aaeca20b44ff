package driving

import (
	"context"

	"github.com/custodia-labs/docsift/internal/core/domain"
)

// ExtractionService runs documents through the text recovery pipeline.
type ExtractionService interface {
	// Extract validates, recovers, sanitises and bounds the document text.
	// A binary document with no recoverable text is not an error: the
	// returned Extraction carries the failure notice with Placeholder set.
	Extract(ctx context.Context, raw *domain.RawDocument) (*domain.Extraction, error)

	// ExtractText returns the raw recovered text for content of the given
	// MIME type. It fails with domain.ErrNoTextExtractable when every
	// recovery strategy came back empty.
	ExtractText(ctx context.Context, content []byte, mimeType string) (string, error)
}
