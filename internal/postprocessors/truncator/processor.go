// Package truncator bounds text length, preferring to cut at a sentence or
// line boundary near the budget.
package truncator

import (
	"context"
	"unicode/utf8"
)

// DefaultMaxLength is the default budget in characters.
const DefaultMaxLength = 10_000

// boundaryWindow is the share of the budget a boundary must reach to be used.
const boundaryWindow = 0.8

// Truncate returns text unchanged when it has at most maxLength characters.
// Otherwise it takes the first maxLength characters and cuts just after the
// last '.', '!', '?' or newline in that slice, provided the boundary sits at
// or beyond 80% of the budget; failing that it hard-cuts at maxLength.
// Lengths count runes. The result never exceeds maxLength characters.
func Truncate(text string, maxLength int) string {
	if utf8.RuneCountInString(text) <= maxLength {
		return text
	}
	if maxLength <= 0 {
		return ""
	}

	cut := len(text)
	boundaryPos, boundaryEnd := -1, 0
	pos := 0
	for i, r := range text {
		if pos == maxLength {
			cut = i
			break
		}
		if isBoundary(r) {
			boundaryPos = pos
			boundaryEnd = i + 1
		}
		pos++
	}

	if boundaryPos >= 0 && float64(boundaryPos) >= boundaryWindow*float64(maxLength) {
		return text[:boundaryEnd]
	}
	return text[:cut]
}

func isBoundary(r rune) bool {
	return r == '.' || r == '!' || r == '?' || r == '\n'
}

// Processor wraps Truncate as a pipeline stage.
type Processor struct {
	maxLength int
}

// Option configures the truncator processor.
type Option func(*Processor)

// WithMaxLength sets the budget in characters.
func WithMaxLength(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.maxLength = n
		}
	}
}

// New creates a truncator processor with the given options.
func New(opts ...Option) *Processor {
	p := &Processor{maxLength: DefaultMaxLength}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return "truncator"
}

// MaxLength returns the configured budget.
func (p *Processor) MaxLength() int {
	return p.maxLength
}

// Process bounds the text. It never fails.
func (p *Processor) Process(_ context.Context, text string) (string, error) {
	return Truncate(text, p.maxLength), nil
}
