// Package readability drops lines dominated by non-text characters.
package readability

import (
	"context"
	"strings"
	"unicode"
)

// DefaultThreshold is the special-character ratio at which a line is dropped.
const DefaultThreshold = 0.5

// FilterReadableLines keeps lines whose special-character ratio is below
// DefaultThreshold.
func FilterReadableLines(text string) string {
	return Filter(text, DefaultThreshold)
}

// Filter keeps every non-blank line whose special-character ratio is below
// threshold and rejoins the survivors with newlines. Filtering never adds lines.
func Filter(text string, threshold float64) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if SpecialCharRatio(trimmed) < threshold {
			kept = append(kept, line)
		}
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// SpecialCharRatio returns the share of runes in line that are not letters,
// digits, whitespace or ordinary punctuation (.,!?;:()-).
func SpecialCharRatio(line string) float64 {
	total, special := 0, 0
	for _, r := range line {
		total++
		if !isOrdinary(r) {
			special++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(special) / float64(total)
}

func isOrdinary(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case unicode.IsSpace(r):
		return true
	}
	return strings.ContainsRune(".,!?;:()-", r)
}

// Processor wraps Filter as a pipeline stage.
type Processor struct {
	threshold float64
}

// Option configures the readability processor.
type Option func(*Processor)

// WithThreshold sets the special-character ratio at which lines are dropped.
func WithThreshold(threshold float64) Option {
	return func(p *Processor) {
		if threshold > 0 && threshold <= 1 {
			p.threshold = threshold
		}
	}
}

// New creates a readability processor with the given options.
func New(opts ...Option) *Processor {
	p := &Processor{threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return "readability"
}

// Threshold returns the configured threshold.
func (p *Processor) Threshold() float64 {
	return p.threshold
}

// Process filters unreadable lines. It never fails.
func (p *Processor) Process(_ context.Context, text string) (string, error) {
	return Filter(text, p.threshold), nil
}
