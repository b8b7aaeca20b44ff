// Package pdf recovers text from PDF documents without parsing them. It runs
// the recovery cascade over the raw bytes: byte runs, encoding probes, then a
// structure scan.
package pdf

import (
	"context"
	"fmt"

	"github.com/custodia-labs/docsift/internal/core/domain"
	"github.com/custodia-labs/docsift/internal/core/ports/driven"
	"github.com/custodia-labs/docsift/internal/recovery"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles PDF documents.
type Normaliser struct {
	cascade *recovery.Cascade
}

// Option configures the PDF normaliser.
type Option func(*Normaliser)

// WithRecoverySettings replaces the default recovery windows.
func WithRecoverySettings(settings domain.RecoverySettings) Option {
	return func(n *Normaliser) {
		n.cascade = recovery.NewCascade(settings)
	}
}

// New creates a new PDF normaliser.
func New(opts ...Option) *Normaliser {
	n := &Normaliser{
		cascade: recovery.NewCascade(domain.DefaultExtractionSettings().Recovery),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{domain.MIMETypePDF}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50
}

// Normalise recovers raw text from the PDF bytes. When every strategy comes
// back blank the error wraps domain.ErrNoTextExtractable.
func (n *Normaliser) Normalise(ctx context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	result, err := n.cascade.Run(ctx, raw.Content)
	if err != nil {
		return nil, fmt.Errorf("pdf %s: %w", raw.URI, err)
	}

	return &driven.NormaliseResult{
		Text:     result.Text,
		Strategy: result.Strategy,
		Attempts: result.Attempts,
	}, nil
}
