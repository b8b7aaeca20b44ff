// Package fallback is the catch-all normaliser for MIME types without a
// dedicated handler, such as Word documents.
package fallback

import (
	"context"
	"strings"

	xunicode "golang.org/x/text/encoding/unicode"

	"github.com/custodia-labs/docsift/internal/core/domain"
	"github.com/custodia-labs/docsift/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// AnyMIMEType is the registration key for catch-all normalisers.
const AnyMIMEType = "*/*"

// Normaliser decodes any content as UTF-8 on a best-effort basis.
type Normaliser struct{}

// New creates a new fallback normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the catch-all type.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{AnyMIMEType}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 1
}

// Normalise decodes the content as UTF-8, replacing invalid sequences with
// U+FFFD. Binary noise is left for the sanitizer and readability filter.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	out, err := xunicode.UTF8.NewDecoder().Bytes(raw.Content)
	text := string(out)
	if err != nil {
		text = strings.ToValidUTF8(string(raw.Content), "�")
	}

	return &driven.NormaliseResult{
		Text:     text,
		Strategy: domain.StrategyFallback,
		Attempts: []domain.RecoveryAttempt{{Strategy: domain.StrategyFallback, Text: text}},
	}, nil
}
