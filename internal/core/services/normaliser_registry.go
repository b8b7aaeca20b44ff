package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/docsift/internal/core/domain"
	"github.com/custodia-labs/docsift/internal/core/ports/driven"
	"github.com/custodia-labs/docsift/internal/normalisers/fallback"
	"github.com/custodia-labs/docsift/internal/normalisers/pdf"
	"github.com/custodia-labs/docsift/internal/normalisers/plaintext"
)

// Ensure NormaliserRegistry implements the interface.
var _ driven.NormaliserRegistry = (*NormaliserRegistry)(nil)

// NormaliserRegistry dispatches documents to normalisers by MIME type.
type NormaliserRegistry struct {
	mu     sync.RWMutex
	byType map[string][]driven.Normaliser
}

// NewNormaliserRegistry creates a registry holding the given normalisers.
func NewNormaliserRegistry(normalisers ...driven.Normaliser) *NormaliserRegistry {
	r := &NormaliserRegistry{
		byType: make(map[string][]driven.Normaliser),
	}
	for _, n := range normalisers {
		r.Register(n)
	}
	return r
}

// NewDefaultNormaliserRegistry registers the built-in PDF, plain text and
// fallback normalisers.
func NewDefaultNormaliserRegistry(settings domain.RecoverySettings) *NormaliserRegistry {
	return NewNormaliserRegistry(
		pdf.New(pdf.WithRecoverySettings(settings)),
		plaintext.New(),
		fallback.New(),
	)
}

// Register adds a normaliser under each of its MIME types, keeping every
// list ordered by descending priority. Equal priorities keep registration order.
func (r *NormaliserRegistry) Register(n driven.Normaliser) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range n.SupportedMIMETypes() {
		key := mediaType(t)
		list := append(r.byType[key], n)
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Priority() > list[j].Priority()
		})
		r.byType[key] = list
	}
}

// Select returns the highest-priority normaliser for the MIME type, falling
// back to a catch-all registration.
func (r *NormaliserRegistry) Select(mimeType string) (driven.Normaliser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if list := r.byType[mediaType(mimeType)]; len(list) > 0 {
		return list[0], nil
	}
	if list := r.byType[fallback.AnyMIMEType]; len(list) > 0 {
		return list[0], nil
	}
	return nil, fmt.Errorf("no normaliser for %q: %w", mimeType, domain.ErrUnsupportedType)
}

// Normalise recovers text using the best matching normaliser.
func (r *NormaliserRegistry) Normalise(ctx context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	n, err := r.Select(raw.MIMEType)
	if err != nil {
		return nil, err
	}
	return n.Normalise(ctx, raw)
}

// SupportedMIMETypes returns all registered MIME types, sorted.
func (r *NormaliserRegistry) SupportedMIMETypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.byType))
	for t := range r.byType {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
