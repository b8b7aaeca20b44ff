package recovery

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/docsift/internal/core/domain"
	"github.com/custodia-labs/docsift/internal/logger"
)

// strategy pairs a strategy tag with the function that runs it.
type strategy struct {
	kind domain.Strategy
	run  func([]byte) string
}

// Result is the outcome of a successful cascade run.
type Result struct {
	// Strategy is the strategy whose text was selected.
	Strategy domain.Strategy

	// Text is the selected text.
	Text string

	// Attempts lists every strategy tried, in order, including the winner.
	Attempts []domain.RecoveryAttempt
}

// ExhaustedError reports that every strategy yielded blank text.
// It unwraps to domain.ErrNoTextExtractable.
type ExhaustedError struct {
	Attempts []domain.RecoveryAttempt
}

func (e *ExhaustedError) Error() string {
	names := make([]string, len(e.Attempts))
	for i, a := range e.Attempts {
		names[i] = a.Strategy.String()
	}
	return fmt.Sprintf("%s: tried %s", domain.ErrNoTextExtractable, strings.Join(names, ", "))
}

func (e *ExhaustedError) Unwrap() error {
	return domain.ErrNoTextExtractable
}

// Cascade runs the binary recovery strategies in order and stops at the first
// one that yields non-blank text. It holds only its window settings and is
// safe for concurrent use.
type Cascade struct {
	strategies []strategy
}

// NewCascade creates a cascade using the given byte windows.
func NewCascade(settings domain.RecoverySettings) *Cascade {
	return &Cascade{
		strategies: []strategy{
			{
				kind: domain.StrategyByteRun,
				run: func(b []byte) string {
					return RecoverByteRuns(b, settings.ByteRunHead, settings.ByteRunTail)
				},
			},
			{
				kind: domain.StrategyEncoding,
				run: func(b []byte) string {
					name, text := probeEncodings(b, settings.EncodingWindow)
					if name != "" {
						logger.Debug("encoding probe matched %s", name)
					}
					return text
				},
			},
			{
				kind: domain.StrategyStructure,
				run: func(b []byte) string {
					pass, text := scanStructure(b, settings.StructureWindow)
					if pass != "" {
						logger.Debug("structure scan matched %s pass", pass)
					}
					return text
				},
			},
		},
	}
}

// Run tries each strategy against buf. It returns an *ExhaustedError when all
// of them come back blank, and the context error if ctx is cancelled between
// strategies.
func (c *Cascade) Run(ctx context.Context, buf []byte) (*Result, error) {
	attempts := make([]domain.RecoveryAttempt, 0, len(c.strategies))

	for _, s := range c.strategies {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		attempt := domain.RecoveryAttempt{Strategy: s.kind, Text: s.run(buf)}
		attempts = append(attempts, attempt)
		logger.Debug("strategy %s recovered %d bytes", s.kind, len(attempt.Text))

		if attempt.Succeeded() {
			return &Result{
				Strategy: s.kind,
				Text:     attempt.Text,
				Attempts: attempts,
			}, nil
		}
	}

	return nil, &ExhaustedError{Attempts: attempts}
}
